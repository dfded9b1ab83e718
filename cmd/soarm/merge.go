package main

import (
	"fmt"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/dataset"
	"github.com/woolim/soarm/pkg/runner"
)

type MergeCommand struct {
	Output string `long:"output" description:"Output repo id (default <user>/merged)"`
}

func (c *MergeCommand) Execute(args []string) error {
	cfg := config.FromEnv()
	p := newPrompter()

	names, err := dataset.Candidates(cfg.DataDir)
	if err != nil {
		fail(err)
	}

	idxs, err := p.MultiSelect("Datasets to merge (pick at least 2)", names)
	if err != nil {
		fail(err)
	}
	folders := make([]string, 0, len(idxs))
	for _, i := range idxs {
		folders = append(folders, names[i])
	}

	out := c.Output
	if out == "" {
		def := cfg.HFUser + "/merged"
		out, err = p.Input("Output repo id", def)
		if err != nil {
			fail(err)
		}
		if out == "" {
			out = def
		}
	}

	mergeArgs, err := dataset.MergeArgs(cfg.DataDir, folders, out)
	if err != nil {
		fail(err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Merging %d datasets into %s", len(folders), out)))
	return delegate(&runner.Delegate{Name: runner.ToolMergeDatasets, Args: mergeArgs, Extra: args})
}
