package main

import (
	"context"
	"fmt"
	"os"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/robot"
)

type DetectCommand struct{}

func (c *DetectCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("SO-ARM101 Detection"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━━━━━━━"))
	fmt.Println()

	ctx := context.Background()
	p := newPrompter()

	fmt.Println("Scanning serial ports...")
	arms, err := robot.ScanPorts(ctx)
	if err != nil {
		fail(err)
	}
	if len(arms) == 0 {
		fmt.Println("No SO-ARM101 arms found.")
		fmt.Println("Make sure both arms are connected and powered on.")
		os.Exit(1)
	}
	fmt.Printf("Found %d arm(s). Let's identify them...\n", len(arms))

	var leaderPort, followerPort string
	for _, arm := range arms {
		fmt.Printf("\n  Wiggling arm on %s...\n", arm.Port)
		if err := arm.Wiggle(ctx); err != nil {
			fmt.Fprintln(os.Stderr, warnStyle.Render("  "+err.Error()))
			arm.Close()
			continue
		}

		var options []string
		if leaderPort == "" {
			options = append(options, "Leader (the one you move by hand)")
		}
		if followerPort == "" {
			options = append(options, "Follower (the one that follows)")
		}
		options = append(options, "Skip this arm")

		idx, err := p.SelectIndex(fmt.Sprintf("Which arm is on %s? (it just wiggled)", arm.Port), options)
		if err != nil {
			arm.Close()
			fail(err)
		}
		switch options[idx] {
		case "Leader (the one you move by hand)":
			leaderPort = arm.Port
		case "Follower (the one that follows)":
			followerPort = arm.Port
		}
		arm.Close()

		if leaderPort != "" && followerPort != "" {
			break
		}
	}

	fmt.Println()
	if leaderPort == "" || followerPort == "" {
		if leaderPort == "" {
			fmt.Println("Leader arm not identified.")
		}
		if followerPort == "" {
			fmt.Println("Follower arm not identified.")
		}
		fmt.Println("Both arms are required. Connect them and run 'soarm detect' again.")
		os.Exit(1)
	}

	cfg := config.Defaults()
	ports := config.Ports{
		Leader:   config.ArmPorts{Port: leaderPort, ID: cfg.TeleopID},
		Follower: config.ArmPorts{Port: followerPort, ID: cfg.RobotID},
	}
	if err := ports.Save(); err != nil {
		fail(fmt.Errorf("save port file: %w", err))
	}

	fmt.Println(successStyle.Render("Arms identified:"))
	fmt.Printf("  Leader:   %s\n", leaderPort)
	fmt.Printf("  Follower: %s\n", followerPort)
	fmt.Println()
	fmt.Printf("Saved to %s\n", config.DefaultPortsFile)
	fmt.Println("Next: " + headerStyle.Render("soarm calibrate"))

	return nil
}
