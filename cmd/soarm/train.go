package main

import (
	"fmt"
	"path/filepath"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/dataset"
	"github.com/woolim/soarm/pkg/runner"
)

type TrainCommand struct {
	Dataset string `long:"dataset" description:"Dataset folder name (prompted when omitted)"`
	Name    string `long:"name" description:"Run name (default <dataset>_<policy type>)"`
}

func (c *TrainCommand) Execute(args []string) error {
	cfg := config.FromEnv()

	dsName := c.Dataset
	if dsName == "" {
		names, err := dataset.Candidates(cfg.DataDir)
		if err != nil {
			fail(err)
		}
		idx, err := newPrompter().SelectIndex("Dataset to train on", names)
		if err != nil {
			fail(err)
		}
		dsName = names[idx]
	}

	ref := dataset.Local(cfg.DataDir, cfg.HFUser, dsName)
	if !ref.Valid() {
		fail(fmt.Errorf("%s is not a dataset (missing %s); record it first", ref.Root, dataset.MetaInfoFile))
	}

	name := c.Name
	if name == "" {
		name = dsName + "_" + cfg.PolicyType
	}

	trainArgs := []string{
		runner.Arg("dataset.repo_id", ref.RepoID),
		runner.Arg("dataset.root", ref.Root),
		runner.Arg("policy.type", cfg.PolicyType),
		runner.Arg("policy.device", cfg.Device),
		runner.Arg("policy.push_to_hub", false),
		runner.Arg("output_dir", filepath.Join(cfg.OutputRoot, name)),
		runner.Arg("job_name", name),
		runner.Arg("save_freq", cfg.SaveFreq),
		runner.Arg("wandb.enable", false),
	}

	fmt.Println(headerStyle.Render("Training " + name))
	return delegate(&runner.Delegate{Name: runner.ToolTrain, Args: trainArgs, Extra: args})
}
