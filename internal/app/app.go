package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/happie-menu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	DarkMode   bool
}

// Options converts the configuration into UI model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Width:      c.Width,
		Height:     c.Height,
		ShowFooter: c.ShowFooter,
		DarkMode:   c.DarkMode,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(cfg.Options())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}
