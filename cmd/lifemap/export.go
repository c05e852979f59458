package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifemap/internal/config"
	"lifemap/internal/persist"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the board document as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		doc, err := persist.Load(cfg.Paths.Board)
		if err != nil {
			return fmt.Errorf("load board: %w", err)
		}
		data, err := doc.Export()
		if err != nil {
			return err
		}
		if exportOut == "" || exportOut == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		return os.WriteFile(exportOut, data, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}
