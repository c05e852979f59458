// lifemap — terminal life-system board.
//
// A mouse-driven node-graph editor for mapping focus sessions onto a
// personal mind map, plus small subcommands for scripting against the
// board and the session log.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "lifemap",
	Short:        "Terminal life-system board editor",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/lifemap/config.toml)")
	rootCmd.AddCommand(editCmd, exportCmd, sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
