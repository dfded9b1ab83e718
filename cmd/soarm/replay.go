package main

import (
	"fmt"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/dataset"
	"github.com/woolim/soarm/pkg/runner"
)

type ReplayCommand struct {
	Dataset string `long:"dataset" description:"Dataset folder name (prompted when omitted)"`
	Episode int    `long:"episode" default:"0" description:"Episode index to replay"`
}

func (c *ReplayCommand) Execute(args []string) error {
	cfg := config.FromEnv()

	dsName := c.Dataset
	if dsName == "" {
		names, err := dataset.Candidates(cfg.DataDir)
		if err != nil {
			fail(err)
		}
		idx, err := newPrompter().SelectIndex("Dataset to replay from", names)
		if err != nil {
			fail(err)
		}
		dsName = names[idx]
	}

	ref := dataset.Local(cfg.DataDir, cfg.HFUser, dsName)
	if !ref.Valid() {
		fail(fmt.Errorf("%s is not a dataset (missing %s)", ref.Root, dataset.MetaInfoFile))
	}

	replayArgs := append(robotArgs(cfg, false),
		runner.Arg("dataset.repo_id", ref.RepoID),
		runner.Arg("dataset.root", ref.Root),
		runner.Arg("dataset.episode", c.Episode),
	)

	return delegate(&runner.Delegate{Name: runner.ToolReplay, Args: replayArgs, Extra: args})
}
