// Package shutdown turns process signals into an orderly quit.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"quizreminder/internal/logger"
)

// Stoppable is anything with a single idempotent quit action.
type Stoppable interface {
	Quit()
}

// Manager listens for SIGINT/SIGTERM and forwards them to the registered
// component, so closing the app from a terminal behaves like the tray's
// Quit item.
type Manager struct {
	target Stoppable
	log    logger.Logger
	once   sync.Once
}

func NewManager(target Stoppable, log logger.Logger) *Manager {
	return &Manager{target: target, log: log}
}

func (m *Manager) Listen() {
	m.once.Do(func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

		go func() {
			sig := <-sigChan
			m.log.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.target.Quit()
		}()
	})
}
