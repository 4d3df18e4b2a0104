package cmd

import (
	"fmt"

	"github.com/theirongolddev/amort/internal/config"
	"github.com/theirongolddev/amort/internal/tui"
	"github.com/theirongolddev/amort/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	if !flagNoColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	l, extra, extras, err := buildInputs(cmd)
	if err != nil {
		return err
	}

	app := tui.NewApp(l, extra, extras)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
