package runs

import (
	"path/filepath"

	"github.com/woolim/soarm/pkg/prompt"
)

// Selection is the outcome of a resolver session: the chosen run and
// checkpoint, and the trainer config path to resume from.
type Selection struct {
	Run        string
	Checkpoint string
	ConfigPath string
}

// Resolver walks the user through picking a run and a checkpoint.
// Prompting goes through the injected Prompter so the flow is testable
// without a terminal.
type Resolver struct {
	Root   string
	Prompt prompt.Prompter
}

// Resolve enumerates runs under the root (filtered by prefix, see
// List), asks for one, enumerates its checkpoints, asks again, and
// returns the resolved selection. Every failure is terminal; there are
// no retry loops.
func (r *Resolver) Resolve(prefix string) (Selection, error) {
	names, err := List(r.Root, prefix)
	if err != nil {
		return Selection{}, err
	}

	runIdx, err := r.Prompt.SelectIndex("Training run", names)
	if err != nil {
		return Selection{}, err
	}
	run := names[runIdx]

	checkpoints, err := Checkpoints(filepath.Join(r.Root, run))
	if err != nil {
		return Selection{}, err
	}

	ckptIdx, err := r.Prompt.SelectIndex("Checkpoint (step)", checkpoints)
	if err != nil {
		return Selection{}, err
	}
	checkpoint := checkpoints[ckptIdx]

	return Selection{
		Run:        run,
		Checkpoint: checkpoint,
		ConfigPath: ConfigPath(r.Root, run, checkpoint),
	}, nil
}
