// Package runs discovers resumable training runs and checkpoints under
// the LeRobot output tree.
//
// The trainer lays out its output as
//
//	<root>/<run>/checkpoints/<step>/pretrained_model/train_config.json
//
// where <step> is a (usually zero-padded) step count. Everything here
// is read-only: the directories are created by lerobot-train, this
// package only selects among them.
package runs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrConfigurationMissing is returned when an expected directory or
// marker file does not exist, e.g. before any training has happened.
var ErrConfigurationMissing = errors.New("configuration missing")

const (
	checkpointsDir = "checkpoints"
	pretrainedDir  = "pretrained_model"

	// MarkerFile signals that a checkpoint directory holds a resumable
	// training state.
	MarkerFile = "train_config.json"
)

// List returns the names of run directories under root that contain a
// checkpoints subdirectory.
//
// When prefix is non-empty, runs are first filtered by name prefix.
// If that filter matches nothing the full set is returned instead;
// the shell scripts this replaces behaved that way for runs predating
// the naming convention, so the fallback is kept as-is.
func List(root, prefix string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: no training output at %s (run 'soarm train' first)", ErrConfigurationMissing, root)
	}

	var all []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if info, err := os.Stat(filepath.Join(root, e.Name(), checkpointsDir)); err != nil || !info.IsDir() {
			continue
		}
		all = append(all, e.Name())
	}

	if prefix != "" {
		var filtered []string
		for _, name := range all {
			if strings.HasPrefix(name, prefix) {
				filtered = append(filtered, name)
			}
		}
		if len(filtered) > 0 {
			all = filtered
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no runs with checkpoints under %s (run 'soarm train' first)", ErrConfigurationMissing, root)
	}
	return all, nil
}

// Checkpoints returns the resumable checkpoint names of a run, sorted
// ascending by step count. A checkpoint counts as resumable when it
// contains pretrained_model/train_config.json.
func Checkpoints(runDir string) ([]string, error) {
	dir := filepath.Join(runDir, checkpointsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: no checkpoints directory at %s", ErrConfigurationMissing, dir)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		marker := filepath.Join(dir, e.Name(), pretrainedDir, MarkerFile)
		if _, err := os.Stat(marker); err != nil {
			continue
		}
		names = append(names, e.Name())
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no resumable checkpoints under %s", ErrConfigurationMissing, dir)
	}

	// Checkpoint names are step counts with varying zero padding, so
	// lexicographic order would put "500" after "10000". Sort on the
	// parsed number.
	sort.SliceStable(names, func(i, j int) bool {
		return stepNumber(names[i]) < stepNumber(names[j])
	})
	return names, nil
}

// ConfigPath returns the trainer config file path for a checkpoint.
// Validity was already established during enumeration; no re-check.
func ConfigPath(root, run, checkpoint string) string {
	return filepath.Join(root, run, checkpointsDir, checkpoint, pretrainedDir, MarkerFile)
}

// PretrainedPath returns the pretrained_model directory of a
// checkpoint, usable as --policy.path for inference.
func PretrainedPath(root, run, checkpoint string) string {
	return filepath.Join(root, run, checkpointsDir, checkpoint, pretrainedDir)
}

func stepNumber(name string) int {
	n, err := strconv.Atoi(name)
	if err != nil {
		// Non-numeric names (e.g. a "last" symlink target) sort first.
		return -1
	}
	return n
}
