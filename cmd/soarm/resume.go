package main

import (
	"fmt"
	"os"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/dataset"
	"github.com/woolim/soarm/pkg/runner"
	"github.com/woolim/soarm/pkg/runs"
)

type ResumeCommand struct {
	Filter  string `long:"filter" description:"Only offer runs whose name starts with this prefix"`
	Dataset string `long:"dataset" description:"Continue on a different dataset folder"`
	Name    string `long:"name" description:"New run name when switching datasets"`
}

func (c *ResumeCommand) Execute(args []string) error {
	cfg := config.FromEnv()
	p := newPrompter()

	resolver := &runs.Resolver{Root: cfg.OutputRoot, Prompt: p}
	sel, err := resolver.Resolve(c.Filter)
	if err != nil {
		fail(err)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Resuming %s from step %s", sel.Run, sel.Checkpoint)))

	dsName, modelName := c.Dataset, c.Name
	if dsName == "" {
		switchDS, err := p.Confirm("Continue on a different dataset?")
		if err != nil {
			fail(err)
		}
		if switchDS {
			names, err := dataset.Candidates(cfg.DataDir)
			if err != nil {
				fail(err)
			}
			idx, err := p.SelectIndex("Dataset to continue on", names)
			if err != nil {
				fail(err)
			}
			dsName = names[idx]

			if modelName == "" {
				modelName, err = p.Input("New run name (empty keeps the original output dir)", "")
				if err != nil {
					fail(err)
				}
			}
		}
	}

	resumeArgs := []string{
		runner.Arg("config_path", sel.ConfigPath),
		runner.Arg("resume", true),
	}

	if dsName != "" {
		overrides, ok := runs.DatasetOverride(cfg.DataDir, cfg.HFUser, dsName, modelName)
		if !ok {
			fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf(
				"warning: %s/%s is not a dataset (missing %s); keeping the run's original dataset",
				cfg.DataDir, dsName, dataset.MetaInfoFile)))
		}
		resumeArgs = append(resumeArgs, overrides.Args()...)
	}

	return delegate(&runner.Delegate{Name: runner.ToolTrain, Args: resumeArgs, Extra: args})
}
