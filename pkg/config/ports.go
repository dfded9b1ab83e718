package config

import (
	"encoding/json"
	"os"
)

// DefaultPortsFile is written by 'soarm detect' and read back as the
// port defaults for every other command.
const DefaultPortsFile = "soarm.json"

// ArmPorts identifies one arm to the framework.
type ArmPorts struct {
	Port string `json:"port"`
	ID   string `json:"id"`
}

// Ports holds the detected leader/follower assignment.
type Ports struct {
	Leader   ArmPorts `json:"leader"`
	Follower ArmPorts `json:"follower"`
}

// LoadPorts loads the saved port file.
func LoadPorts() (*Ports, error) {
	return LoadPortsFrom(DefaultPortsFile)
}

// LoadPortsFrom loads a port file from a specific path.
func LoadPortsFrom(path string) (*Ports, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Ports
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the port file to the default location.
func (p *Ports) Save() error {
	return p.SaveTo(DefaultPortsFile)
}

// SaveTo writes the port file to a specific path.
func (p *Ports) SaveTo(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PortsExist reports whether the default port file is present.
func PortsExist() bool {
	_, err := os.Stat(DefaultPortsFile)
	return err == nil
}
