package runs

import (
	"path"

	"github.com/woolim/soarm/pkg/dataset"
)

// Override is one flag/value pair appended to the resumed training
// command.
type Override struct {
	Flag  string
	Value string
}

// Overrides is the ordered, append-only set of flags composed at
// selection time. Once handed to the command composition it is never
// mutated.
type Overrides []Override

// Args renders the set as --flag=value arguments, in order.
func (o Overrides) Args() []string {
	args := make([]string, 0, len(o))
	for _, ov := range o {
		args = append(args, "--"+ov.Flag+"="+ov.Value)
	}
	return args
}

// DatasetOverride composes the override set for continuing a run on a
// different dataset, optionally under a new model name.
//
// The candidate is <dataDir>/<datasetName> with repo id
// <user>/<datasetName>. When it is not a valid dataset no override is
// produced (ok is false) and the run's original dataset stays in
// effect; the caller surfaces a warning. The step counter is reset
// because a step count carried over from unrelated data is
// meaningless.
//
// Pure function of its inputs and the filesystem: composing twice with
// the same inputs yields identical sets.
func DatasetOverride(dataDir, user, datasetName, modelName string) (o Overrides, ok bool) {
	ref := dataset.Local(dataDir, user, datasetName)
	if !ref.Valid() {
		return nil, false
	}

	o = Overrides{
		{Flag: "dataset.repo_id", Value: ref.RepoID},
		{Flag: "dataset.root", Value: ref.Root},
		{Flag: "reset_steps", Value: "true"},
	}
	if modelName != "" {
		o = append(o,
			Override{Flag: "output_dir", Value: path.Join("outputs", "train", modelName)},
			Override{Flag: "job_name", Value: modelName},
		)
	}
	return o, true
}
