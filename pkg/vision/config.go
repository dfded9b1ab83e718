// Package vision holds the dual-camera vision pipeline configuration:
// the gripper camera runs through IBR (item-background removal) while
// the top camera stays raw. The pipeline itself runs inside the
// external framework; teleoperate and record only forward the config
// file path, and this package mirrors the file so the wrapper can
// validate it and resolve camera roles.
package vision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Role says how a camera feed is treated by the pipeline.
type Role string

const (
	RoleGripper Role = "gripper"
	RoleTop     Role = "top"
)

// Config mirrors the framework's vision config file. All segmentation
// and display parameters live here and nowhere else.
type Config struct {
	GripperUseIBR bool `yaml:"gripper_use_ibr" json:"gripper_use_ibr"`
	TopUseIBR     bool `yaml:"top_use_ibr" json:"top_use_ibr"`

	SegmentationModelPath    string  `yaml:"segmentation_model_path" json:"segmentation_model_path"`
	SegmentationConfidence   float64 `yaml:"segmentation_confidence" json:"segmentation_confidence"`
	SegmentationIOUThreshold float64 `yaml:"segmentation_iou_threshold" json:"segmentation_iou_threshold"`
	SegmentationFrameSkip    int     `yaml:"segmentation_frame_skip" json:"segmentation_frame_skip"`

	Device             string `yaml:"device" json:"device"`
	RerunShowProcessed bool   `yaml:"rerun_show_processed" json:"rerun_show_processed"`

	GripperCameraKey string `yaml:"gripper_camera_key" json:"gripper_camera_key"`
	TopCameraKey     string `yaml:"top_camera_key" json:"top_camera_key"`

	// CLAHE brightness stabilization for the top view, so it looks the
	// same in any lighting. Manual brightness/contrast/gamma apply
	// before CLAHE.
	TopBrightnessStabilize bool    `yaml:"top_brightness_stabilize" json:"top_brightness_stabilize"`
	TopBrightnessClipLimit float64 `yaml:"top_brightness_clip_limit" json:"top_brightness_clip_limit"`
	TopBrightnessTileSize  int     `yaml:"top_brightness_tile_size" json:"top_brightness_tile_size"`
	TopBrightness          float64 `yaml:"top_brightness" json:"top_brightness"`
	TopContrast            float64 `yaml:"top_contrast" json:"top_contrast"`
	TopGamma               float64 `yaml:"top_gamma" json:"top_gamma"`

	// Same knobs for the gripper view, applied after IBR when enabled.
	GripperBrightnessStabilize bool    `yaml:"gripper_brightness_stabilize" json:"gripper_brightness_stabilize"`
	GripperBrightnessClipLimit float64 `yaml:"gripper_brightness_clip_limit" json:"gripper_brightness_clip_limit"`
	GripperBrightnessTileSize  int     `yaml:"gripper_brightness_tile_size" json:"gripper_brightness_tile_size"`
	GripperBrightness          float64 `yaml:"gripper_brightness" json:"gripper_brightness"`
	GripperContrast            float64 `yaml:"gripper_contrast" json:"gripper_contrast"`
	GripperGamma               float64 `yaml:"gripper_gamma" json:"gripper_gamma"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		GripperUseIBR:              true,
		TopUseIBR:                  false,
		SegmentationConfidence:     0.35,
		SegmentationIOUThreshold:   0.5,
		SegmentationFrameSkip:      2,
		Device:                     "auto",
		RerunShowProcessed:         true,
		GripperCameraKey:           "gripper",
		TopCameraKey:               "top",
		TopBrightnessClipLimit:     2.0,
		TopBrightnessTileSize:      8,
		TopBrightness:              1.0,
		TopContrast:                1.0,
		TopGamma:                   1.0,
		GripperBrightnessClipLimit: 2.0,
		GripperBrightnessTileSize:  8,
		GripperBrightness:          1.0,
		GripperContrast:            1.0,
		GripperGamma:               1.0,
	}
}

// RoleFor maps a camera key to its pipeline role. Unmapped keys (any
// extra camera) get no role.
func (c Config) RoleFor(cameraKey string) (Role, bool) {
	switch cameraKey {
	case c.GripperCameraKey:
		return RoleGripper, true
	case c.TopCameraKey:
		return RoleTop, true
	}
	return "", false
}

// UseIBR reports whether the pipeline applies IBR to a camera key.
func (c Config) UseIBR(cameraKey string) bool {
	switch cameraKey {
	case c.GripperCameraKey:
		return c.GripperUseIBR
	case c.TopCameraKey:
		return c.TopUseIBR
	}
	return false
}

// Load reads a vision config from a YAML or JSON file. It never hard
// fails: on any problem (missing file, unknown extension, parse error)
// it returns the defaults together with an error describing why, so
// the caller can warn and continue. An empty path means "use
// defaults" and returns no error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return Default(), fmt.Errorf("unknown vision config extension %q, using defaults", ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read vision config: %w, using defaults", err)
	}

	// JSON is a YAML subset, so one decoder covers both extensions.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parse vision config %s: %w, using defaults", path, err)
	}
	return cfg, nil
}
