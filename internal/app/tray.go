package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"quizreminder/internal/controllers"
	"quizreminder/internal/logger"
)

// trayMenu renders the menu-bar entry: Settings, Start, Stop, Quit. Stop is
// only enabled while a countdown is running.
type trayMenu struct {
	menu     *fyne.Menu
	stopItem *fyne.MenuItem
	log      logger.Logger
}

func newTrayMenu(fyneApp fyne.App, handlers *Handlers, log logger.Logger) *trayMenu {
	desk, ok := fyneApp.(desktop.App)
	if !ok {
		// Mobile and test drivers have no tray; the settings window is the
		// only entry point there.
		log.Warning("TrayMenu", "driver has no system tray support", nil)
		return nil
	}

	settingsItem := fyne.NewMenuItem("Settings", handlers.HandleOpenSettings)
	startItem := fyne.NewMenuItem("Start", handlers.HandleStart)
	stopItem := fyne.NewMenuItem("Stop", handlers.HandleStop)
	stopItem.Disabled = true

	quitItem := fyne.NewMenuItem("Quit", handlers.HandleQuit)
	quitItem.IsQuit = true

	menu := fyne.NewMenu(AppName,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		startItem,
		stopItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
	desk.SetSystemTrayMenu(menu)

	log.Debug("TrayMenu", "system tray menu installed", nil)
	return &trayMenu{menu: menu, stopItem: stopItem, log: log}
}

// applyState keeps menu item availability in sync with the controller.
func (t *trayMenu) applyState(state controllers.State) {
	t.stopItem.Disabled = state != controllers.StateRunning
	t.menu.Refresh()
}
