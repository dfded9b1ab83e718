// Package runner composes and executes the delegated lerobot-*
// commands. Nothing is interpreted on the way back: stdio is wired
// straight through and the child's exit status is propagated.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// External tool names this wrapper delegates to.
const (
	ToolCalibrate     = "lerobot-calibrate"
	ToolTeleoperate   = "lerobot-teleoperate"
	ToolRecord        = "lerobot-record"
	ToolTrain         = "lerobot-train"
	ToolReplay        = "lerobot-replay"
	ToolMergeDatasets = "lerobot-merge-datasets"
	ToolSetupMotors   = "lerobot-setup-motors"
	ToolFindCameras   = "lerobot-find-cameras"
)

// Delegate is one fully composed external invocation. Extra holds
// caller passthrough arguments; they go last so they win over anything
// the wrapper set.
type Delegate struct {
	Name  string
	Args  []string
	Extra []string
}

// Arg formats a single --name=value argument. Values go through
// fmt.Sprint so ints and bools compose the same way strings do.
func Arg(name string, value any) string {
	return fmt.Sprintf("--%s=%v", name, value)
}

// Argv returns the complete argument vector, passthrough included.
func (d *Delegate) Argv() []string {
	argv := make([]string, 0, 1+len(d.Args)+len(d.Extra))
	argv = append(argv, d.Name)
	argv = append(argv, d.Args...)
	argv = append(argv, d.Extra...)
	return argv
}

// String renders the invocation for display, quoting arguments that
// contain whitespace or JSON.
func (d *Delegate) String() string {
	parts := make([]string, 0, len(d.Args)+len(d.Extra)+1)
	for _, a := range d.Argv() {
		if strings.ContainsAny(a, " \t{") {
			parts = append(parts, "'"+a+"'")
		} else {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}

// Run executes the delegate with stdio passed through. The returned
// error wraps the child's failure; no cleanup is needed on our side
// because nothing was mutated before delegation.
func (d *Delegate) Run(ctx context.Context) error {
	if _, err := exec.LookPath(d.Name); err != nil {
		return fmt.Errorf("%s not found in PATH (pip install lerobot): %w", d.Name, err)
	}

	argv := d.Argv()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", d.Name, err)
	}
	return nil
}

// ExitCode extracts the child's exit code from a Run error, or 1 when
// the failure happened before the child could report one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
