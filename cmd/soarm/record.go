package main

import (
	"fmt"
	"os"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/dataset"
	"github.com/woolim/soarm/pkg/runner"
)

type RecordCommand struct {
	Dataset  string `long:"dataset" required:"yes" description:"Dataset folder name under the data dir"`
	Task     string `long:"task" description:"Task description stored with each episode (prompted when unset)"`
	Episodes int    `long:"episodes" description:"Episode count (default NUM_EPISODES)"`
	Resume   bool   `long:"resume" description:"Append episodes to an existing dataset"`
	Vision   string `long:"vision" description:"Vision pipeline config file (YAML or JSON)"`
}

func (c *RecordCommand) Execute(args []string) error {
	cfg := config.FromEnv()
	if c.Vision != "" {
		cfg.VisionConfigPath = c.Vision
	}
	if c.Episodes > 0 {
		cfg.NumEpisodes = c.Episodes
	}
	if c.Task != "" {
		cfg.Task = c.Task
	}

	ref := dataset.Local(cfg.DataDir, cfg.HFUser, c.Dataset)
	if c.Resume && !ref.Valid() {
		fail(fmt.Errorf("cannot resume: %s is not a dataset (missing %s)", ref.Root, dataset.MetaInfoFile))
	}
	if !c.Resume && ref.Valid() {
		fail(fmt.Errorf("%s already exists; pass --resume to append episodes", ref.Root))
	}

	if cfg.Task == "" {
		task, err := newPrompter().Input("Task description", "Pick up the cube and place it in the box")
		if err != nil {
			fail(err)
		}
		if task == "" {
			fail(fmt.Errorf("a task description is required (--task or TASK)"))
		}
		cfg.Task = task
	}

	recArgs := append(robotArgs(cfg, true), teleopArgs(cfg)...)
	recArgs = append(recArgs,
		runner.Arg("dataset.repo_id", ref.RepoID),
		runner.Arg("dataset.root", ref.Root),
		runner.Arg("dataset.single_task", cfg.Task),
		runner.Arg("dataset.fps", cfg.FPS),
		runner.Arg("dataset.episode_time_s", cfg.EpisodeTime),
		runner.Arg("dataset.reset_time_s", cfg.ResetTime),
		runner.Arg("dataset.num_episodes", cfg.NumEpisodes),
		runner.Arg("dataset.push_to_hub", false),
		runner.Arg("display_data", cfg.DisplayData),
	)
	if c.Resume {
		recArgs = append(recArgs, runner.Arg("resume", true))
	}
	recArgs = append(recArgs, visionArgs(cfg)...)

	fmt.Println(headerStyle.Render("Recording " + ref.RepoID))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d episodes, %ds each, %ds reset", cfg.NumEpisodes, cfg.EpisodeTime, cfg.ResetTime)))

	if err := delegate(&runner.Delegate{Name: runner.ToolRecord, Args: recArgs, Extra: args}); err != nil {
		return err
	}

	if !opts.Show {
		fmt.Fprintln(os.Stdout, successStyle.Render("Dataset saved to "+ref.Root))
	}
	return nil
}
