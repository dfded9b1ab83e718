package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	s := FromEnv()
	assert.Equal(t, "so101_follower", s.RobotType)
	assert.Equal(t, "so101_leader", s.TeleopType)
	assert.Equal(t, 30, s.FPS)
	assert.Equal(t, "outputs/train", s.OutputRoot)
	assert.Contains(t, s.Cameras, "gripper")
	assert.Contains(t, s.Cameras, "top")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvRobotPort, "/dev/ttyUSB7")
	t.Setenv(EnvFPS, "60")
	t.Setenv(EnvHFUser, "alice")
	t.Setenv(EnvTask, "Stack the blocks")

	s := FromEnv()
	assert.Equal(t, "/dev/ttyUSB7", s.RobotPort)
	assert.Equal(t, 60, s.FPS)
	assert.Equal(t, "alice", s.HFUser)
	assert.Equal(t, "Stack the blocks", s.Task)
}

func TestFromEnv_BadIntFallsBack(t *testing.T) {
	t.Setenv(EnvFPS, "thirty")
	s := FromEnv()
	assert.Equal(t, 30, s.FPS)
}

func TestFromEnv_CameraByIndexOrPath(t *testing.T) {
	t.Setenv(EnvGripperCam, "4")
	t.Setenv(EnvTopCam, "/dev/video9")

	s := FromEnv()
	assert.Equal(t, 4, s.Cameras["gripper"].IndexOrPath)
	assert.Equal(t, "/dev/video9", s.Cameras["top"].IndexOrPath)
}

func TestPorts_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soarm.json")
	p := &Ports{
		Leader:   ArmPorts{Port: "/dev/ttyACM1", ID: "leader_arm"},
		Follower: ArmPorts{Port: "/dev/ttyACM0", ID: "follower_arm"},
	}
	require.NoError(t, p.SaveTo(path))

	loaded, err := LoadPortsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoadPortsFrom_Missing(t *testing.T) {
	_, err := LoadPortsFrom(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
