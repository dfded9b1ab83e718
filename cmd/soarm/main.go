package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Show  bool `long:"show" description:"Print the composed command without running it"`
	Plain bool `long:"plain" description:"Use plain numbered menus instead of interactive forms"`

	Detect      DetectCommand      `command:"detect" description:"Scan serial ports for SO-ARM101 arms and save the leader/follower assignment"`
	Monitor     MonitorCommand     `command:"monitor" description:"Live joint position view for a connected arm"`
	SetupMotors SetupMotorsCommand `command:"setup-motors" description:"Assign servo IDs via lerobot-setup-motors"`
	Cameras     CamerasCommand     `command:"cameras" description:"List available cameras via lerobot-find-cameras"`
	Calibrate   CalibrateCommand   `command:"calibrate" description:"Calibrate the arms via lerobot-calibrate"`
	Teleoperate TeleoperateCommand `command:"teleoperate" alias:"teleop" description:"Start leader-follower teleoperation"`
	Record      RecordCommand      `command:"record" description:"Record a dataset by teleoperation"`
	Train       TrainCommand       `command:"train" description:"Train a policy on a recorded dataset"`
	Resume      ResumeCommand      `command:"resume" description:"Resume training from a saved checkpoint"`
	Replay      ReplayCommand      `command:"replay" description:"Replay a recorded episode on the follower arm"`
	Eval        EvalCommand        `command:"eval" alias:"demo" description:"Run a trained policy on the robot"`
	Merge       MergeCommand       `command:"merge" description:"Merge local datasets into one"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "soarm - LeRobot workflow wrapper for SO-ARM101 arms. " +
		"Arguments after -- are forwarded verbatim to the delegated lerobot tool."

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}
