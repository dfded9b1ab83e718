// Package dataset discovers and validates local LeRobot datasets.
//
// A dataset lives in its own folder under the data dir and is valid
// when it carries the metadata info file the framework writes
// (meta/info.json). Datasets are created by lerobot-record and merged
// by the external merge tool; this package never writes them.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoDatasets is returned when the data dir holds no valid dataset.
var ErrNoDatasets = errors.New("no datasets found")

// MetaInfoFile marks a folder as a LeRobot dataset.
const MetaInfoFile = "meta/info.json"

// Ref points at one dataset: the repo id the framework knows it by and
// its local root.
type Ref struct {
	RepoID string
	Root   string
}

// Valid reports whether the local root carries the metadata info file.
func (r Ref) Valid() bool {
	info, err := os.Stat(filepath.Join(r.Root, filepath.FromSlash(MetaInfoFile)))
	return err == nil && !info.IsDir()
}

// Local builds the Ref for a dataset folder name under dataDir, using
// the <user>/<name> repo id convention.
func Local(dataDir, user, name string) Ref {
	return Ref{
		RepoID: user + "/" + name,
		Root:   filepath.Join(dataDir, name),
	}
}

// SanitizeName turns a repo id into a folder name by replacing the
// path separator ("woolim/merged" -> "woolim_merged").
func SanitizeName(repoID string) string {
	return strings.ReplaceAll(repoID, "/", "_")
}

// Candidates lists the dataset folder names under dataDir that contain
// the metadata info file.
func Candidates(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: data dir %s does not exist (run 'soarm record' first)", ErrNoDatasets, dataDir)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if (Ref{Root: filepath.Join(dataDir, e.Name())}).Valid() {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: nothing under %s contains %s", ErrNoDatasets, dataDir, MetaInfoFile)
	}
	return names, nil
}

// MergeArgs composes the argument list for the external dataset merge
// tool: at least two existing folders under dataDir, merged into
// outRepoID at <dataDir>/<sanitized repo id>.
func MergeArgs(dataDir string, folders []string, outRepoID string) ([]string, error) {
	if len(folders) < 2 {
		return nil, fmt.Errorf("need at least 2 datasets to merge, got %d", len(folders))
	}
	for _, f := range folders {
		if !(Ref{Root: filepath.Join(dataDir, f)}).Valid() {
			return nil, fmt.Errorf("%w: %s is not a dataset (missing %s)", ErrNoDatasets, filepath.Join(dataDir, f), MetaInfoFile)
		}
	}

	args := []string{
		"--data-dir=" + dataDir,
		"--output-repo-id=" + outRepoID,
		"--output-dir=" + filepath.Join(dataDir, SanitizeName(outRepoID)),
	}
	for _, f := range folders {
		args = append(args, "--folders="+f)
	}
	return args, nil
}
