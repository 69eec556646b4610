package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/parade/internal/tui"
	"github.com/spf13/cobra"
)

var (
	previewSeed  uint64
	previewDelta int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Walk the parade in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(-1, 0)
		if err != nil {
			return err
		}

		model := tui.NewPreview(spec, pickSeed(previewSeed, spec), tui.WithCountDelta(previewDelta))
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Uint64VarP(&previewSeed, "seed", "s", 0, "seed (0 uses the prefab seed or a random one)")
	previewCmd.Flags().IntVar(&previewDelta, "more", 0, "walkers to add to every group (negative removes)")
	rootCmd.AddCommand(previewCmd)
}
