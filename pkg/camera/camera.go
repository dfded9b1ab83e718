// Package camera builds the camera configuration JSON the lerobot-*
// tools take via --robot.cameras. The tools open the devices
// themselves; this package only describes them.
package camera

import (
	"encoding/json"
	"fmt"
)

// Camera backend types understood by the framework.
const (
	TypeOpenCV    = "opencv"
	TypeRealSense = "intelrealsense"
)

// Spec describes one camera the way the framework expects it.
// IndexOrPath is either a numeric device index or a device path such
// as /dev/video0.
type Spec struct {
	Type        string `json:"type"`
	IndexOrPath any    `json:"index_or_path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FPS         int    `json:"fps"`
}

// OpenCV builds an opencv camera spec for a numeric device index.
func OpenCV(index, width, height, fps int) Spec {
	return Spec{Type: TypeOpenCV, IndexOrPath: index, Width: width, Height: height, FPS: fps}
}

// OpenCVPath builds an opencv camera spec for a device path.
func OpenCVPath(path string, width, height, fps int) Spec {
	return Spec{Type: TypeOpenCV, IndexOrPath: path, Width: width, Height: height, FPS: fps}
}

// FormatMap renders a name->spec mapping as the single-line JSON value
// for --robot.cameras. Keys come out sorted, so the same mapping
// always renders to the same string.
func FormatMap(cams map[string]Spec) (string, error) {
	if len(cams) == 0 {
		return "", fmt.Errorf("no cameras configured")
	}
	data, err := json.Marshal(cams)
	if err != nil {
		return "", fmt.Errorf("marshal camera config: %w", err)
	}
	return string(data), nil
}
