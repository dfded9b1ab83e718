package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/robot"
)

type MonitorCommand struct {
	Port   string `long:"port" description:"Serial port (default: the configured follower port)"`
	Leader bool   `long:"leader" description:"Monitor the leader arm instead of the follower"`
}

const (
	monitorHeaderHeight = 2
	monitorLegendHeight = 2
	monitorBorderSize   = 2
)

// One distinct color per joint.
var jointColors = map[robot.MotorName]string{
	robot.ShoulderPan:  "196", // red
	robot.ShoulderLift: "208", // orange
	robot.ElbowFlex:    "226", // yellow
	robot.WristFlex:    "46",  // green
	robot.WristRoll:    "51",  // cyan
	robot.Gripper:      "201", // magenta
}

var monitorChartStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))

func (c *MonitorCommand) Execute(args []string) error {
	cfg := config.FromEnv()

	port := c.Port
	if port == "" {
		if c.Leader {
			port = cfg.TeleopPort
		} else {
			port = cfg.RobotPort
		}
	}

	ctx := context.Background()
	arm, err := robot.Open(ctx, port)
	if err != nil {
		fail(fmt.Errorf("no arm on %s (run 'soarm detect' first): %w", port, err))
	}
	defer arm.Close()

	// Read-only view: torque off so the arm can be moved by hand.
	arm.Disable(ctx)

	prog := tea.NewProgram(newMonitorModel(arm), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fail(fmt.Errorf("monitor: %w", err))
	}
	return nil
}

type monitorTickMsg time.Time

type monitorModel struct {
	arm      *robot.Arm
	chart    *streamlinechart.Model
	width    int
	height   int
	current  map[robot.MotorName]int
	quitting bool
}

func newMonitorModel(arm *robot.Arm) monitorModel {
	chart := streamlinechart.New(80, 20,
		streamlinechart.WithYRange(0, robot.RawPositionMax),
	)
	for _, name := range robot.AllMotors() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(jointColors[name]))
		chart.SetDataSetStyles(string(name), runes.ThinLineStyle, style)
	}
	return monitorModel{
		arm:     arm,
		chart:   &chart,
		current: make(map[robot.MotorName]int),
	}
}

func monitorTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return monitorTickMsg(t)
	})
}

func (m monitorModel) Init() tea.Cmd {
	return monitorTick()
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			m.quitting = true
			return m, tea.Quit
		}

	case monitorTickMsg:
		positions := m.arm.Positions(context.Background())
		for name, pos := range positions {
			m.current[name] = pos
			m.chart.PushDataSet(string(name), float64(pos))
		}
		m.chart.DrawAll()
		return m, monitorTick()
	}

	return m, nil
}

func (m *monitorModel) resizeChart() {
	w := m.width - monitorBorderSize - 2
	if w < 40 {
		w = 40
	}
	h := m.height - monitorHeaderHeight - monitorLegendHeight - monitorBorderSize - 1
	if h < 10 {
		h = 10
	}
	m.chart.Resize(w, h)
}

func (m monitorModel) View() string {
	if m.quitting {
		return "Monitor stopped.\n"
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Joint Monitor"))
	sb.WriteString(dimStyle.Render("  " + m.arm.Port))
	sb.WriteString("\n\n")
	sb.WriteString(monitorChartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	var legend []string
	for _, name := range robot.AllMotors() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(jointColors[name])).Bold(true)
		legend = append(legend, fmt.Sprintf("%s %s %d", style.Render("━━"), name, m.current[name]))
	}
	sb.WriteString(strings.Join(legend, "  "))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Move the arm by hand. Press q to quit."))
	sb.WriteString("\n")

	return sb.String()
}
