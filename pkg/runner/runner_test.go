package runner

import (
	"strings"
	"testing"
)

func TestArg(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"dataset.fps", 30, "--dataset.fps=30"},
		{"resume", true, "--resume=true"},
		{"dataset.push_to_hub", false, "--dataset.push_to_hub=false"},
		{"robot.port", "/dev/ttyACM0", "--robot.port=/dev/ttyACM0"},
	}
	for _, tt := range tests {
		if got := Arg(tt.name, tt.value); got != tt.want {
			t.Errorf("Arg(%q, %v) = %q, want %q", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestDelegate_Argv(t *testing.T) {
	d := &Delegate{
		Name:  ToolTrain,
		Args:  []string{"--resume=true", "--config_path=x"},
		Extra: []string{"--wandb.enable=true"},
	}

	argv := d.Argv()
	want := []string{"lerobot-train", "--resume=true", "--config_path=x", "--wandb.enable=true"}
	if len(argv) != len(want) {
		t.Fatalf("Argv = %v, want %v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Errorf("Argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestDelegate_StringQuotesJSON(t *testing.T) {
	d := &Delegate{
		Name: ToolRecord,
		Args: []string{`--robot.cameras={"gripper":{}}`, "--dataset.fps=30"},
	}

	s := d.String()
	if !strings.Contains(s, `'--robot.cameras={"gripper":{}}'`) {
		t.Errorf("JSON argument not quoted: %s", s)
	}
	if strings.Contains(s, "'--dataset.fps=30'") {
		t.Errorf("plain argument needlessly quoted: %s", s)
	}
}

func TestExitCode_Nil(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", got)
	}
}
