package vision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownExtensionFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vision.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vision.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not: [valid"), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesKeepDefaultsElsewhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vision.yaml")
	body := "gripper_use_ibr: false\ntop_gamma: 1.5\nsegmentation_model_path: models/yolo.pt\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.GripperUseIBR)
	assert.Equal(t, 1.5, cfg.TopGamma)
	assert.Equal(t, "models/yolo.pt", cfg.SegmentationModelPath)

	// Everything not in the file keeps its default.
	assert.Equal(t, 0.35, cfg.SegmentationConfidence)
	assert.Equal(t, "gripper", cfg.GripperCameraKey)
	assert.Equal(t, 2, cfg.SegmentationFrameSkip)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vision.json")
	body := `{"top_use_ibr": true, "device": "cuda"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.TopUseIBR)
	assert.Equal(t, "cuda", cfg.Device)
	assert.True(t, cfg.GripperUseIBR)
}

func TestRoleFor(t *testing.T) {
	cfg := Default()

	role, ok := cfg.RoleFor("gripper")
	assert.True(t, ok)
	assert.Equal(t, RoleGripper, role)

	role, ok = cfg.RoleFor("top")
	assert.True(t, ok)
	assert.Equal(t, RoleTop, role)

	_, ok = cfg.RoleFor("side")
	assert.False(t, ok)
}

func TestUseIBR(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.UseIBR("gripper"))
	assert.False(t, cfg.UseIBR("top"))
	assert.False(t, cfg.UseIBR("side"))

	// Remapped camera keys move the roles with them.
	cfg.GripperCameraKey = "wrist"
	assert.True(t, cfg.UseIBR("wrist"))
	assert.False(t, cfg.UseIBR("gripper"))
}
