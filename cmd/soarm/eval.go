package main

import (
	"fmt"
	"path/filepath"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/dataset"
	"github.com/woolim/soarm/pkg/runner"
	"github.com/woolim/soarm/pkg/runs"
)

type EvalCommand struct {
	Policy   string `long:"policy" description:"Pretrained model path (picked from checkpoints when omitted)"`
	Filter   string `long:"filter" description:"Only offer runs whose name starts with this prefix"`
	Episodes int    `long:"episodes" default:"3" description:"Number of eval episodes"`
	Task     string `long:"task" description:"Task description for the eval episodes"`
}

func (c *EvalCommand) Execute(args []string) error {
	cfg := config.FromEnv()
	p := newPrompter()

	policyPath := c.Policy
	var evalName string
	if policyPath == "" {
		resolver := &runs.Resolver{Root: cfg.OutputRoot, Prompt: p}
		sel, err := resolver.Resolve(c.Filter)
		if err != nil {
			fail(err)
		}
		policyPath = runs.PretrainedPath(cfg.OutputRoot, sel.Run, sel.Checkpoint)
		evalName = sel.Run
	} else {
		evalName = dataset.SanitizeName(filepath.Base(policyPath))
		if evalName == "pretrained_model" {
			// <run>/checkpoints/<step>/pretrained_model: name after the run
			evalName = filepath.Base(filepath.Dir(filepath.Dir(filepath.Dir(policyPath))))
		}
	}

	task := c.Task
	if task == "" {
		task = cfg.Task
	}
	if task == "" {
		var err error
		task, err = p.Input("Task description", "Pick up the cube and place it in the box")
		if err != nil {
			fail(err)
		}
	}

	// Eval sessions go through lerobot-record with a policy attached;
	// the episodes land in their own eval dataset.
	evalRepo := cfg.HFUser + "/eval_" + evalName
	evalArgs := append(robotArgs(cfg, true), teleopArgs(cfg)...)
	evalArgs = append(evalArgs,
		runner.Arg("dataset.repo_id", evalRepo),
		runner.Arg("dataset.root", filepath.Join(cfg.DataDir, "eval_"+evalName)),
		runner.Arg("dataset.single_task", task),
		runner.Arg("dataset.fps", cfg.FPS),
		runner.Arg("dataset.episode_time_s", cfg.EpisodeTime),
		runner.Arg("dataset.reset_time_s", cfg.ResetTime),
		runner.Arg("dataset.num_episodes", c.Episodes),
		runner.Arg("dataset.push_to_hub", false),
		runner.Arg("display_data", cfg.DisplayData),
		runner.Arg("policy.path", policyPath),
		runner.Arg("policy.device", cfg.Device),
	)

	fmt.Println(headerStyle.Render("Evaluating " + policyPath))
	return delegate(&runner.Delegate{Name: runner.ToolRecord, Args: evalArgs, Extra: args})
}
