package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lifemap/internal/config"
	"lifemap/internal/persist"
	"lifemap/internal/session"
	"lifemap/pkg/board"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect and record focus sessions",
}

var (
	addMinutes int
	addTag     string
)

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		store, err := session.Open(cmd.Context(), cfg.Paths.SessionDB)
		if err != nil {
			return err
		}
		defer store.Close()

		sessions, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			color.New(color.Faint).Println("no sessions recorded")
			return nil
		}

		doc, err := persist.Load(cfg.Paths.Board)
		if err != nil {
			return fmt.Errorf("load board: %w", err)
		}
		entities := make([]board.Entity, len(sessions))
		for i, s := range sessions {
			entities[i] = s.Entity()
		}
		unplaced := make(map[string]bool)
		for _, e := range doc.Unmapped(entities) {
			unplaced[e.ID] = true
		}

		idStyle := color.New(color.FgCyan)
		tagStyle := color.New(color.FgYellow)
		dimStyle := color.New(color.Faint)
		for _, s := range sessions {
			mark := color.GreenString("●")
			if unplaced[s.ID] {
				mark = dimStyle.Sprint("○")
			}
			line := fmt.Sprintf("%s %s  %s  %3dm",
				mark, idStyle.Sprintf("%-5s", s.ID),
				s.StartedAt.Format("2006-01-02 15:04"), s.Minutes)
			if s.Tag != "" {
				line += "  " + tagStyle.Sprint("#"+s.Tag)
			}
			fmt.Printf("%s  %s\n", line, s.Title)
		}
		return nil
	},
}

var sessionsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Record a focus session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		store, err := session.Open(cmd.Context(), cfg.Paths.SessionDB)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Add(cmd.Context(), session.Session{
			Title:   args[0],
			Minutes: addMinutes,
			Tag:     addTag,
		})
		if err != nil {
			return err
		}
		fmt.Printf("recorded %s\n", color.CyanString(id))
		return nil
	},
}

func init() {
	sessionsAddCmd.Flags().IntVarP(&addMinutes, "minutes", "m", 25, "session length in minutes")
	sessionsAddCmd.Flags().StringVarP(&addTag, "tag", "t", "", "optional tag")
	sessionsCmd.AddCommand(sessionsListCmd, sessionsAddCmd)
}
