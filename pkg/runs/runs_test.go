package runs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRun builds <root>/<name>/checkpoints/<step>/pretrained_model/
// train_config.json for each step, mirroring the trainer's layout.
func writeRun(t *testing.T, root, name string, steps ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, name, "checkpoints"), 0o755))
	for _, step := range steps {
		dir := filepath.Join(root, name, "checkpoints", step, "pretrained_model")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, MarkerFile), []byte("{}"), 0o644))
	}
}

func TestList_MissingRoot(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationMissing))
}

func TestList_NoRunsWithCheckpoints(t *testing.T) {
	root := t.TempDir()
	// Directories without a checkpoints subdir don't count as runs.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "scratch"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	_, err := List(root, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationMissing))
}

func TestList_FindsRuns(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "pick_place_act", "005000")
	writeRun(t, root, "sort_cubes_act", "005000")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "no_checkpoints_here"), 0o755))

	names, err := List(root, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pick_place_act", "sort_cubes_act"}, names)
}

func TestList_PrefixFilter(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "pick_place_act", "005000")
	writeRun(t, root, "sort_cubes_act", "005000")

	names, err := List(root, "pick")
	require.NoError(t, err)
	assert.Equal(t, []string{"pick_place_act"}, names)
}

func TestList_PrefixFallback(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "pick_place_act", "005000")

	// A prefix matching nothing falls back to the full scan.
	names, err := List(root, "zzz")
	require.NoError(t, err)
	assert.Equal(t, []string{"pick_place_act"}, names)
}

func TestCheckpoints_NumericSort(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run", "010000", "005000", "002000")

	names, err := Checkpoints(filepath.Join(root, "run"))
	require.NoError(t, err)
	assert.Equal(t, []string{"002000", "005000", "010000"}, names)
}

func TestCheckpoints_NumericSortUnpadded(t *testing.T) {
	root := t.TempDir()
	// Lexicographic order would yield 10000, 2000, 500.
	writeRun(t, root, "run", "500", "10000", "2000")

	names, err := Checkpoints(filepath.Join(root, "run"))
	require.NoError(t, err)
	assert.Equal(t, []string{"500", "2000", "10000"}, names)
}

func TestCheckpoints_SkipsWithoutMarker(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run", "005000")
	// A checkpoint dir without the marker file is not resumable.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "run", "checkpoints", "010000", "pretrained_model"), 0o755))

	names, err := Checkpoints(filepath.Join(root, "run"))
	require.NoError(t, err)
	assert.Equal(t, []string{"005000"}, names)
}

func TestCheckpoints_NoneResumable(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run")

	_, err := Checkpoints(filepath.Join(root, "run"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationMissing))
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath("outputs/train", "pick_place_act", "010000")
	want := filepath.Join("outputs", "train", "pick_place_act", "checkpoints", "010000", "pretrained_model", "train_config.json")
	assert.Equal(t, want, got)
}

func TestPretrainedPath(t *testing.T) {
	got := PretrainedPath("outputs/train", "pick_place_act", "010000")
	want := filepath.Join("outputs", "train", "pick_place_act", "checkpoints", "010000", "pretrained_model")
	assert.Equal(t, want, got)
}
