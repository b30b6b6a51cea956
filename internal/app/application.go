package app

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"quizreminder/internal/controllers"
	"quizreminder/internal/gui"
	"quizreminder/internal/logger"
	"quizreminder/internal/notify"
	"quizreminder/internal/settings"
	"quizreminder/internal/shutdown"
	"quizreminder/internal/timer"
)

const (
	AppName    = "QuizReminder"
	AppID      = "com.quizreminder.app"
	AppVersion = "1.0.0"
)

// Application is the composition root. It owns the single settings store and
// countdown instance and wires them to the tray menu and windows.
type Application struct {
	fyneApp fyne.App
	log     logger.Logger

	store      *settings.Store
	countdown  *timer.Countdown
	controller *controllers.QuizController
	guiManager *gui.Manager
	tray       *trayMenu
	lifecycle  *Lifecycle
}

func New() (*Application, error) {
	log := logger.NewConsoleLogger(logLevelFromEnv())

	settingsPath, err := settings.DefaultPath()
	if err != nil {
		return nil, err
	}
	store := settings.NewStore(settingsPath, log)

	fyneApp := app.NewWithID(AppID)

	guiManager := gui.NewManager(fyneApp, store, log)
	countdown := timer.NewCountdown()
	notifier := notify.New()

	// Expiry is delivered on a timer goroutine; fyne.Do marshals the whole
	// fired path (notification + popup) onto the UI thread.
	controller := controllers.NewQuizController(
		store, countdown, notifier, guiManager, log,
		func(f func()) { fyne.Do(f) },
	)

	lifecycle := NewLifecycle(fyneApp, countdown, log)
	shutdown.NewManager(lifecycle, log).Listen()

	application := &Application{
		fyneApp:    fyneApp,
		log:        log,
		store:      store,
		countdown:  countdown,
		controller: controller,
		guiManager: guiManager,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       AppVersion,
		"settings_path": settingsPath,
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.controller, a.guiManager, a.lifecycle)

	a.guiManager.SetStartHandler(handlers.HandleStart)
	a.tray = newTrayMenu(a.fyneApp, handlers, a.log)

	a.controller.SetStateListener(func(state controllers.State) {
		if a.tray != nil {
			a.tray.applyState(state)
		}
	})
}

// Run shows the settings window and enters the fyne event loop. It returns
// when the user quits from the tray menu.
func (a *Application) Run() error {
	a.log.Info("Application", "starting UI", nil)

	a.guiManager.ShowSettings()
	a.fyneApp.Run()

	a.log.Info("Application", "event loop exited", nil)
	return nil
}

func logLevelFromEnv() zerolog.Level {
	if os.Getenv("QUIZREMINDER_DEBUG") == "true" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
