package tui

import (
	"os"

	"ccconfig/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Run starts the TUI on the store behind manager. The caller checks that a
// terminal is attached.
func Run(manager *config.Manager, log zerolog.Logger, opts ...Option) error {
	// Surface a broken store before switching to the alternate screen
	if _, err := manager.Load(); err != nil {
		return err
	}

	changes, watcher, err := WatchStore(manager.Path())
	if err != nil {
		log.Warn().Err(err).Msg("live reload disabled")
	} else {
		defer watcher.Close()
		opts = append(opts, WithChanges(changes))
	}

	m := NewModel(manager, opts...)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if os.Getenv("TERM") != "" {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, programOpts...)
	_, err = p.Run()
	return err
}
