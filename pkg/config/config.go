// Package config holds every tunable of the soarm CLI in one explicit
// struct. Values are resolved once at process start: built-in defaults,
// then the saved port file written by 'soarm detect', then environment
// variables. Commands receive the result by value; nothing reads the
// environment after startup.
package config

import (
	"os"
	"strconv"

	"github.com/woolim/soarm/pkg/camera"
)

// Environment variables recognized by FromEnv.
const (
	EnvRobotPort    = "ROBOT_PORT"
	EnvRobotID      = "ROBOT_ID"
	EnvTeleopPort   = "TELEOP_PORT"
	EnvTeleopID     = "TELEOP_ID"
	EnvHFUser       = "HF_USER"
	EnvDataDir      = "DATA_DIR"
	EnvOutputRoot   = "OUTPUT_ROOT"
	EnvPolicyType   = "POLICY_TYPE"
	EnvPolicyDevice = "POLICY_DEVICE"
	EnvFPS          = "FPS"
	EnvEpisodeTime  = "EPISODE_TIME_S"
	EnvResetTime    = "RESET_TIME_S"
	EnvNumEpisodes  = "NUM_EPISODES"
	EnvSaveFreq     = "SAVE_FREQ"
	EnvVisionConfig = "VISION_CONFIG"
	EnvTask         = "TASK"
	EnvGripperCam   = "GRIPPER_CAMERA"
	EnvTopCam       = "TOP_CAMERA"
	EnvCamWidth     = "CAMERA_WIDTH"
	EnvCamHeight    = "CAMERA_HEIGHT"
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	RobotType string // follower device type for --robot.type
	RobotPort string
	RobotID   string

	TeleopType string // leader device type for --teleop.type
	TeleopPort string
	TeleopID   string

	HFUser     string // repo id prefix: datasets are <HFUser>/<name>
	Task       string // task description stored with recorded episodes
	DataDir    string // parent of local dataset folders
	OutputRoot string // parent of training run folders

	PolicyType string
	Device     string

	FPS         int
	EpisodeTime int // seconds per episode
	ResetTime   int // seconds between episodes
	NumEpisodes int
	SaveFreq    int // trainer checkpoint interval, steps

	VisionConfigPath string
	DisplayData      bool

	Cameras map[string]camera.Spec
}

// Defaults returns the built-in settings for a stock SO-ARM101 dual
// camera rig.
func Defaults() Settings {
	return Settings{
		RobotType:   "so101_follower",
		RobotPort:   "/dev/ttyACM0",
		RobotID:     "follower_arm",
		TeleopType:  "so101_leader",
		TeleopPort:  "/dev/ttyACM1",
		TeleopID:    "leader_arm",
		HFUser:      "woolim",
		DataDir:     "data",
		OutputRoot:  "outputs/train",
		PolicyType:  "act",
		Device:      "cuda",
		FPS:         30,
		EpisodeTime: 60,
		ResetTime:   10,
		NumEpisodes: 10,
		SaveFreq:    5000,
		DisplayData: true,
		Cameras: map[string]camera.Spec{
			"gripper": camera.OpenCV(0, 640, 480, 30),
			"top":     camera.OpenCV(2, 640, 480, 30),
		},
	}
}

// FromEnv resolves the effective settings: defaults, overlaid with the
// saved port file when present, overlaid with environment variables.
func FromEnv() Settings {
	s := Defaults()

	if p, err := LoadPorts(); err == nil {
		s.applyPorts(p)
	}

	s.RobotPort = envStr(EnvRobotPort, s.RobotPort)
	s.RobotID = envStr(EnvRobotID, s.RobotID)
	s.TeleopPort = envStr(EnvTeleopPort, s.TeleopPort)
	s.TeleopID = envStr(EnvTeleopID, s.TeleopID)
	s.HFUser = envStr(EnvHFUser, s.HFUser)
	s.DataDir = envStr(EnvDataDir, s.DataDir)
	s.OutputRoot = envStr(EnvOutputRoot, s.OutputRoot)
	s.PolicyType = envStr(EnvPolicyType, s.PolicyType)
	s.Device = envStr(EnvPolicyDevice, s.Device)
	s.FPS = envInt(EnvFPS, s.FPS)
	s.EpisodeTime = envInt(EnvEpisodeTime, s.EpisodeTime)
	s.ResetTime = envInt(EnvResetTime, s.ResetTime)
	s.NumEpisodes = envInt(EnvNumEpisodes, s.NumEpisodes)
	s.SaveFreq = envInt(EnvSaveFreq, s.SaveFreq)
	s.VisionConfigPath = envStr(EnvVisionConfig, s.VisionConfigPath)
	s.Task = envStr(EnvTask, s.Task)

	width := envInt(EnvCamWidth, 640)
	height := envInt(EnvCamHeight, 480)
	if cam, ok := os.LookupEnv(EnvGripperCam); ok {
		s.Cameras["gripper"] = cameraFromEnv(cam, width, height, s.FPS)
	}
	if cam, ok := os.LookupEnv(EnvTopCam); ok {
		s.Cameras["top"] = cameraFromEnv(cam, width, height, s.FPS)
	}

	return s
}

func (s *Settings) applyPorts(p *Ports) {
	if p.Follower.Port != "" {
		s.RobotPort = p.Follower.Port
	}
	if p.Follower.ID != "" {
		s.RobotID = p.Follower.ID
	}
	if p.Leader.Port != "" {
		s.TeleopPort = p.Leader.Port
	}
	if p.Leader.ID != "" {
		s.TeleopID = p.Leader.ID
	}
}

// cameraFromEnv accepts either a numeric device index or a device
// path.
func cameraFromEnv(value string, width, height, fps int) camera.Spec {
	if idx, err := strconv.Atoi(value); err == nil {
		return camera.OpenCV(idx, width, height, fps)
	}
	return camera.OpenCVPath(value, width, height, fps)
}

func envStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
