package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heartjump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [heartjump|launcher]",
	Short: "Print a default config file",
	Long: `Print the built-in default YAML for the game tuning or the launcher.

Copy it to ~/.heartjump/configs/<name>.yaml, or pass it with --config or
--launcher-config, to override the defaults.

Examples:
  heartjump config > ~/.heartjump/configs/heartjump.yaml
  heartjump config launcher`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"heartjump", "launcher"},
	RunE:      runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	name := "heartjump"
	if len(args) == 1 {
		name = args[0]
	}

	data := config.GetDefaultYAML(name)
	if data == nil {
		return fmt.Errorf("unknown config %q (expected heartjump or launcher)", name)
	}
	_, err := os.Stdout.Write(data)
	return err
}
