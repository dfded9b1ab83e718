package robot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hipsterbrown/feetech-servo/feetech"
	"go.bug.st/serial"
)

const (
	busBaudRate = 1_000_000
	busTimeout  = 100 * time.Millisecond
	scanTimeout = 2 * time.Second
)

// Arm is a detected SO-ARM101: an open bus plus the servos found on
// it. Close it when done.
type Arm struct {
	Port   string
	bus    *feetech.Bus
	servos map[int]*feetech.Servo
}

// ScanPorts probes every serial port for an SO-ARM101 (six servos with
// IDs 1-6) and returns the arms found, with their buses open.
func ScanPorts(ctx context.Context) ([]*Arm, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}

	var arms []*Arm
	for _, port := range ports {
		// Bluetooth pseudo-ports on macOS hang the probe.
		if strings.Contains(port, "Bluetooth") {
			continue
		}
		if arm, err := Open(ctx, port); err == nil {
			arms = append(arms, arm)
		}
	}
	return arms, nil
}

// Open connects to a port and verifies a complete SO-ARM101 is on it.
func Open(ctx context.Context, port string) (*Arm, error) {
	scanCtx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	bus, err := feetech.NewBus(feetech.BusConfig{
		Port:     port,
		BaudRate: busBaudRate,
		Protocol: feetech.ProtocolSTS,
		Timeout:  busTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open bus %s: %w", port, err)
	}

	found, err := bus.Scan(scanCtx, 1, NumMotors)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("scan %s: %w", port, err)
	}

	servos := make(map[int]*feetech.Servo, len(found))
	for _, f := range found {
		servos[f.ID] = feetech.NewServo(bus, f.ID, f.Model)
	}

	for id := 1; id <= NumMotors; id++ {
		if _, ok := servos[id]; !ok {
			bus.Close()
			return nil, fmt.Errorf("%s: not an SO-ARM101 (missing servo %d)", port, id)
		}
	}

	return &Arm{Port: port, bus: bus, servos: servos}, nil
}

// Close releases the bus.
func (a *Arm) Close() error {
	return a.bus.Close()
}

// Positions reads the raw position of every joint. Joints that fail to
// answer are skipped.
func (a *Arm) Positions(ctx context.Context) map[MotorName]int {
	positions := make(map[MotorName]int, NumMotors)
	for id, servo := range a.servos {
		name, ok := MotorForID(id)
		if !ok {
			continue
		}
		pos, err := servo.Position(ctx)
		if err != nil {
			continue
		}
		positions[name] = pos
	}
	return positions
}

// Disable drops torque on all servos so the arm can be moved by hand.
func (a *Arm) Disable(ctx context.Context) {
	for _, servo := range a.servos {
		servo.Disable(ctx)
	}
}

// Wiggle gently moves the shoulder pan joint and returns it to where
// it was, so the user can tell which physical arm this port belongs
// to.
func (a *Arm) Wiggle(ctx context.Context) error {
	servo, ok := a.servos[ServoID(ShoulderPan)]
	if !ok {
		return fmt.Errorf("no shoulder pan servo on %s", a.Port)
	}

	origin, err := servo.Position(ctx)
	if err != nil {
		return fmt.Errorf("read position: %w", err)
	}
	if err := servo.Enable(ctx); err != nil {
		return fmt.Errorf("enable servo: %w", err)
	}
	defer servo.Disable(ctx)

	const (
		amount = 30
		moveMs = 500
	)
	for _, target := range []int{origin + amount, origin - amount, origin} {
		servo.SetPositionWithTime(ctx, target, moveMs)
		time.Sleep((moveMs + 100) * time.Millisecond)
	}
	return nil
}
