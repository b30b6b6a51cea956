package app

import (
	"sync"

	"fyne.io/fyne/v2"

	"quizreminder/internal/logger"
	"quizreminder/internal/timer"
)

// Lifecycle owns the quit path: cancel any pending countdown, then leave the
// fyne event loop. The OS releases everything else.
type Lifecycle struct {
	fyneApp   fyne.App
	countdown *timer.Countdown
	log       logger.Logger

	once sync.Once
}

func NewLifecycle(fyneApp fyne.App, countdown *timer.Countdown, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:   fyneApp,
		countdown: countdown,
		log:       log,
	}
}

func (l *Lifecycle) Quit() {
	l.once.Do(func() {
		l.log.Info("Lifecycle", "shutdown requested", nil)

		if l.countdown.Stop() {
			l.log.Debug("Lifecycle", "pending countdown cancelled", nil)
		}

		l.fyneApp.Quit()
	})
}
