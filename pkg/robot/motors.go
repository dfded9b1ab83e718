// Package robot provides SO-ARM101 arm discovery over the serial bus.
// Calibration and control are delegated to the lerobot-* tools; this
// package only finds arms, labels them, and reads positions for the
// monitor view.
package robot

// MotorName identifies a joint of the arm.
type MotorName string

// Joints of the SO-ARM101, in servo ID order (IDs 1-6).
const (
	ShoulderPan  MotorName = "shoulder_pan"
	ShoulderLift MotorName = "shoulder_lift"
	ElbowFlex    MotorName = "elbow_flex"
	WristFlex    MotorName = "wrist_flex"
	WristRoll    MotorName = "wrist_roll"
	Gripper      MotorName = "gripper"
)

// NumMotors is the servo count of a complete arm.
const NumMotors = 6

// RawPositionMax is the upper bound of a raw servo position reading.
const RawPositionMax = 4096

// AllMotors returns the joints in servo ID order.
func AllMotors() []MotorName {
	return []MotorName{
		ShoulderPan,
		ShoulderLift,
		ElbowFlex,
		WristFlex,
		WristRoll,
		Gripper,
	}
}

// ServoID returns the bus ID of a joint, or 0 for an unknown name.
func ServoID(name MotorName) int {
	for i, m := range AllMotors() {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MotorForID returns the joint name for a bus ID.
func MotorForID(id int) (MotorName, bool) {
	motors := AllMotors()
	if id < 1 || id > len(motors) {
		return "", false
	}
	return motors[id-1], true
}
