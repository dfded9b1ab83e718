package main

import (
	"fmt"
	"os"

	"github.com/woolim/soarm/pkg/config"
	"github.com/woolim/soarm/pkg/runner"
	"github.com/woolim/soarm/pkg/vision"
)

type TeleoperateCommand struct {
	NoCameras bool   `long:"no-cameras" description:"Teleoperate without camera streams"`
	Vision    string `long:"vision" description:"Vision pipeline config file (YAML or JSON)"`
}

func (c *TeleoperateCommand) Execute(args []string) error {
	cfg := config.FromEnv()
	if c.Vision != "" {
		cfg.VisionConfigPath = c.Vision
	}

	teleArgs := append(robotArgs(cfg, !c.NoCameras), teleopArgs(cfg)...)
	teleArgs = append(teleArgs, runner.Arg("display_data", cfg.DisplayData))
	teleArgs = append(teleArgs, visionArgs(cfg)...)

	return delegate(&runner.Delegate{
		Name:  runner.ToolTeleoperate,
		Args:  teleArgs,
		Extra: args,
	})
}

// visionArgs validates the vision config before forwarding its path.
// A broken file is only worth a warning: the pipeline falls back to
// defaults the same way.
func visionArgs(cfg config.Settings) []string {
	if cfg.VisionConfigPath == "" {
		return nil
	}

	vc, err := vision.Load(cfg.VisionConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+err.Error()))
	} else {
		for name := range cfg.Cameras {
			if vc.UseIBR(name) {
				fmt.Println(dimStyle.Render(fmt.Sprintf("vision: IBR enabled for %q", name)))
			}
		}
	}

	return []string{runner.Arg("vision_config_path", cfg.VisionConfigPath)}
}
