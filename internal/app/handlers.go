package app

import (
	"quizreminder/internal/controllers"
	"quizreminder/internal/gui"
)

// Handlers routes menu and window actions to the controller. Kept separate
// from Application so the tray menu depends on actions, not on wiring.
type Handlers struct {
	controller *controllers.QuizController
	guiManager *gui.Manager
	lifecycle  *Lifecycle
}

func NewHandlers(controller *controllers.QuizController, gm *gui.Manager, lc *Lifecycle) *Handlers {
	return &Handlers{
		controller: controller,
		guiManager: gm,
		lifecycle:  lc,
	}
}

func (h *Handlers) HandleOpenSettings() {
	h.guiManager.ShowSettings()
}

func (h *Handlers) HandleStart() {
	h.controller.Start()
}

func (h *Handlers) HandleStop() {
	h.controller.Stop()
}

func (h *Handlers) HandleQuit() {
	h.lifecycle.Quit()
}
