package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/woolim/soarm/pkg/camera"
	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/prompt"
	"github.com/woolim/soarm/pkg/runner"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// newPrompter picks huh forms on a terminal, numbered stdin menus
// otherwise.
func newPrompter() prompt.Prompter {
	if opts.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return prompt.NewReader(os.Stdin, os.Stdout)
	}
	return prompt.New()
}

// fail prints a one-line diagnostic and terminates. Every error in
// this CLI is terminal at the point of detection.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// delegate shows the composed command and hands control to the
// external tool. The child's exit status becomes ours.
func delegate(d *runner.Delegate) error {
	fmt.Println(dimStyle.Render("→ " + d.String()))
	if opts.Show {
		return nil
	}
	if err := d.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(runner.ExitCode(err))
	}
	return nil
}

func robotArgs(cfg config.Settings, withCameras bool) []string {
	args := []string{
		runner.Arg("robot.type", cfg.RobotType),
		runner.Arg("robot.port", cfg.RobotPort),
		runner.Arg("robot.id", cfg.RobotID),
	}
	if withCameras {
		cams, err := camera.FormatMap(cfg.Cameras)
		if err != nil {
			fail(err)
		}
		args = append(args, runner.Arg("robot.cameras", cams))
	}
	return args
}

func teleopArgs(cfg config.Settings) []string {
	return []string{
		runner.Arg("teleop.type", cfg.TeleopType),
		runner.Arg("teleop.port", cfg.TeleopPort),
		runner.Arg("teleop.id", cfg.TeleopID),
	}
}
