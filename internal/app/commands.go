// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/announcer/internal/stderr"
)

const catalogueTimeout = 30 * time.Second

// loadCatalogueCmd fetches the catalogue once.
func (m Model) loadCatalogueCmd() tea.Cmd {
	load := m.load
	source := m.cfg.Catalogue
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogueTimeout)
		defer cancel()
		clips, err := load(ctx, source)
		return catalogueLoadedMsg{clips: clips, err: err}
	}
}

// waitForStderr forwards the next captured stderr line.
func waitForStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return stderrMsg(line)
	}
}

// notifyFinished returns a playlist finish callback. A failed notice is
// only logged.
func notifyFinished(n FinishNotifier, log zerolog.Logger) func(int) {
	return func(played int) {
		if err := n.Finished(played); err != nil {
			log.Warn().Err(err).Msg("notification failed")
		}
	}
}
