// Package soarm wraps the LeRobot command-line tools for an SO-ARM101
// leader/follower setup.
//
// The soarm CLI assembles the argument soup the lerobot-* tools expect
// (camera JSON, dataset paths, checkpoint config paths), prompts for
// choices where needed, and then delegates the actual work to the
// external executables. Motor control, camera capture, dataset
// serialization, training and inference all happen in LeRobot; this
// module only discovers and selects.
//
// # Installation
//
//	go install github.com/woolim/soarm/cmd/soarm@latest
//
// # Usage
//
// Detect and label your arms once:
//
//	soarm detect
//
// Then calibrate, teleoperate, record a dataset and train:
//
//	soarm calibrate
//	soarm teleoperate
//	soarm record --dataset pick_place --task "Pick up the cube"
//	soarm train --dataset pick_place --name pick_place_act
//
// Resume an interrupted run from a saved checkpoint:
//
//	soarm resume
//
// Arguments after "--" are forwarded verbatim to the delegated tool, so
// any flag the wrapper does not set can still be overridden:
//
//	soarm train --dataset pick_place -- --wandb.enable=true
//
// # Packages
//
//   - cmd/soarm: the CLI
//   - pkg/runs: training run and checkpoint discovery for resumption
//   - pkg/dataset: local LeRobot dataset discovery and validation
//   - pkg/camera: camera configuration JSON for --robot.cameras
//   - pkg/vision: vision pipeline config (dual-camera gripper/top setup)
//   - pkg/prompt: interactive selection, injectable for tests
//   - pkg/runner: composition and execution of the delegated commands
//   - pkg/robot: serial port scanning for SO-ARM101 arms
//   - pkg/config: settings with env-var defaults and the saved port file
package soarm
