package main

import (
	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/runner"
)

type CalibrateCommand struct {
	Arm string `long:"arm" choice:"follower" choice:"leader" choice:"both" default:"both" description:"Which arm to calibrate"`
}

func (c *CalibrateCommand) Execute(args []string) error {
	cfg := config.FromEnv()

	if c.Arm == "follower" || c.Arm == "both" {
		d := &runner.Delegate{
			Name:  runner.ToolCalibrate,
			Args:  robotArgs(cfg, false),
			Extra: args,
		}
		if err := delegate(d); err != nil {
			return err
		}
	}

	if c.Arm == "leader" || c.Arm == "both" {
		d := &runner.Delegate{
			Name:  runner.ToolCalibrate,
			Args:  teleopArgs(cfg),
			Extra: args,
		}
		if err := delegate(d); err != nil {
			return err
		}
	}

	return nil
}

type SetupMotorsCommand struct {
	Arm string `long:"arm" choice:"follower" choice:"leader" default:"follower" description:"Which arm's servos to set up"`
}

func (c *SetupMotorsCommand) Execute(args []string) error {
	cfg := config.FromEnv()

	var motorArgs []string
	if c.Arm == "leader" {
		motorArgs = teleopArgs(cfg)
	} else {
		motorArgs = robotArgs(cfg, false)
	}

	return delegate(&runner.Delegate{
		Name:  runner.ToolSetupMotors,
		Args:  motorArgs,
		Extra: args,
	})
}

type CamerasCommand struct{}

func (c *CamerasCommand) Execute(args []string) error {
	return delegate(&runner.Delegate{
		Name:  runner.ToolFindCameras,
		Extra: args,
	})
}
