package gui

import (
	"fyne.io/fyne/v2"

	"quizreminder/internal/logger"
	"quizreminder/internal/settings"
)

// Manager owns the application's windows: the settings window (created once,
// hidden instead of closed) and the quiz popup (created per expiry).
type Manager struct {
	app   fyne.App
	store *settings.Store
	log   logger.Logger

	settingsWindow *settingsWindow

	startHandler func()
}

func NewManager(app fyne.App, store *settings.Store, log logger.Logger) *Manager {
	m := &Manager{
		app:   app,
		store: store,
		log:   log,
	}
	m.settingsWindow = newSettingsWindow(m)

	log.Debug("GUIManager", "initialized", nil)
	return m
}

// SetStartHandler registers the callback invoked when the user confirms the
// settings form. Settings are persisted before the handler runs.
func (m *Manager) SetStartHandler(handler func()) {
	m.startHandler = handler
}

// ShowSettings refreshes the form from the store and brings the settings
// window to the front.
func (m *Manager) ShowSettings() {
	m.settingsWindow.show(m.store.Load())
}

// Present implements controllers.QuizPresenter: it opens the quiz popup for
// one question/answer round. dismissed runs exactly once when the popup
// closes.
func (m *Manager) Present(question, correctAnswer string, dismissed func()) {
	popup := newQuizPopup(m, question, correctAnswer, dismissed)
	popup.show()
}
