package gui

import (
	"errors"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"quizreminder/internal/settings"
)

// settingsWindow is the quiz configuration form. Built once and hidden on
// close so field state and window position survive reopening.
type settingsWindow struct {
	manager *Manager
	window  fyne.Window

	questionEntry *widget.Entry
	answerEntry   *widget.Entry
	durationEntry *widget.Entry
}

func newSettingsWindow(m *Manager) *settingsWindow {
	sw := &settingsWindow{manager: m}

	sw.questionEntry = widget.NewMultiLineEntry()
	sw.questionEntry.SetPlaceHolder("Quiz question")
	sw.questionEntry.Wrapping = fyne.TextWrapWord

	sw.answerEntry = widget.NewEntry()
	sw.answerEntry.SetPlaceHolder("Correct answer")

	sw.durationEntry = widget.NewEntry()
	sw.durationEntry.Validator = validateDuration

	form := widget.NewForm(
		widget.NewFormItem("Question", sw.questionEntry),
		widget.NewFormItem("Answer", sw.answerEntry),
		widget.NewFormItem("Timer (s)", sw.durationEntry),
	)

	startButton := widget.NewButton("Start", sw.onStart)
	startButton.Importance = widget.HighImportance
	resetButton := widget.NewButton("Reset", sw.onReset)

	content := container.NewVBox(
		form,
		container.NewGridWithColumns(2, startButton, resetButton),
	)

	window := m.app.NewWindow("Quiz Reminder Settings")
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 300))
	window.CenterOnScreen()
	window.SetCloseIntercept(window.Hide)

	sw.window = window
	return sw
}

func (sw *settingsWindow) show(cfg settings.Settings) {
	sw.questionEntry.SetText(cfg.Question)
	sw.answerEntry.SetText(cfg.Answer)
	sw.durationEntry.SetText(strconv.Itoa(cfg.Duration))

	sw.window.Show()
	sw.window.RequestFocus()
}

// onStart persists the form, then hands off to the start handler and hides
// the window. A failed save is a warning, not a blocker.
func (sw *settingsWindow) onStart() {
	cfg := sw.current()

	if err := sw.manager.store.Save(cfg); err != nil {
		sw.manager.log.Error("SettingsWindow", err, map[string]interface{}{
			"path": sw.manager.store.Path(),
		})
		dialog.ShowError(fmt.Errorf("settings could not be saved: %w", err), sw.window)
	}

	if sw.manager.startHandler != nil {
		sw.manager.startHandler()
	}
	sw.window.Hide()
}

func (sw *settingsWindow) onReset() {
	cfg := settings.Default()
	sw.questionEntry.SetText(cfg.Question)
	sw.answerEntry.SetText(cfg.Answer)
	sw.durationEntry.SetText(strconv.Itoa(cfg.Duration))
}

func (sw *settingsWindow) current() settings.Settings {
	duration, err := strconv.Atoi(sw.durationEntry.Text)
	if err != nil {
		duration = settings.DefaultDurationSeconds
	}

	return settings.Settings{
		Question: sw.questionEntry.Text,
		Answer:   sw.answerEntry.Text,
		Duration: duration,
	}.Normalize()
}

func validateDuration(text string) error {
	n, err := strconv.Atoi(text)
	if err != nil {
		return errors.New("timer must be a number of seconds")
	}
	if n < settings.MinDurationSeconds || n > settings.MaxDurationSeconds {
		return fmt.Errorf("timer must be between %d and %d seconds",
			settings.MinDurationSeconds, settings.MaxDurationSeconds)
	}
	return nil
}
