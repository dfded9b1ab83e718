package runs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woolim/soarm/pkg/prompt"
)

func TestResolver_PicksRunAndCheckpoint(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "pick_place_act", "005000", "010000")

	r := &Resolver{Root: root, Prompt: prompt.NewScript(0, 1)}
	sel, err := r.Resolve("")
	require.NoError(t, err)

	assert.Equal(t, "pick_place_act", sel.Run)
	assert.Equal(t, "010000", sel.Checkpoint)
	assert.Equal(t,
		filepath.Join(root, "pick_place_act", "checkpoints", "010000", "pretrained_model", "train_config.json"),
		sel.ConfigPath)
}

func TestResolver_EmptyRoot(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Prompt: prompt.NewScript()}
	_, err := r.Resolve("")
	assert.True(t, errors.Is(err, ErrConfigurationMissing))
}

func TestResolver_InvalidScriptedSelection(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "pick_place_act", "005000")

	r := &Resolver{Root: root, Prompt: prompt.NewScript(7)}
	_, err := r.Resolve("")
	assert.True(t, errors.Is(err, prompt.ErrInvalidSelection))
}
