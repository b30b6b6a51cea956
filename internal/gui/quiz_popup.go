package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// quizPopup is the window opened on timer expiry. It runs one round: ask the
// question, take exactly one submission, then swap to the result view showing
// the submitted and correct answers side by side.
type quizPopup struct {
	manager       *Manager
	window        fyne.Window
	question      string
	correctAnswer string

	answerEntry  *widget.Entry
	submitButton *widget.Button

	dismissOnce sync.Once
	dismissed   func()
}

func newQuizPopup(m *Manager, question, correctAnswer string, dismissed func()) *quizPopup {
	qp := &quizPopup{
		manager:       m,
		question:      question,
		correctAnswer: correctAnswer,
		dismissed:     dismissed,
	}

	questionLabel := widget.NewLabel(question)
	questionLabel.Wrapping = fyne.TextWrapWord

	qp.answerEntry = widget.NewEntry()
	qp.answerEntry.SetPlaceHolder("Your answer")
	qp.answerEntry.OnSubmitted = func(string) { qp.onSubmit() }

	qp.submitButton = widget.NewButton("Submit", qp.onSubmit)
	qp.submitButton.Importance = widget.HighImportance

	window := m.app.NewWindow("Quiz")
	window.SetContent(container.NewVBox(questionLabel, qp.answerEntry, qp.submitButton))
	window.Resize(fyne.NewSize(360, 180))
	window.CenterOnScreen()
	window.SetOnClosed(qp.dismiss)

	qp.window = window
	return qp
}

func (qp *quizPopup) show() {
	qp.window.Show()
	qp.window.RequestFocus()
	qp.window.Canvas().Focus(qp.answerEntry)
}

// onSubmit accepts the single allowed submission and swaps in the result
// view. The disabled button guards against a second click racing the content
// swap.
func (qp *quizPopup) onSubmit() {
	if qp.submitButton.Disabled() {
		return
	}
	qp.submitButton.Disable()

	submitted := qp.answerEntry.Text
	qp.manager.log.Info("QuizPopup", "answer submitted", map[string]interface{}{
		"correct": submitted == qp.correctAnswer,
	})

	qp.window.SetTitle("Result")
	qp.window.SetContent(qp.resultView(submitted))
}

func (qp *quizPopup) resultView(submitted string) fyne.CanvasObject {
	yourLabel := widget.NewLabel("Your answer: " + submitted)
	yourLabel.Wrapping = fyne.TextWrapWord
	correctLabel := widget.NewLabel("Correct answer: " + qp.correctAnswer)
	correctLabel.Wrapping = fyne.TextWrapWord

	againButton := widget.NewButton("Configure Again", func() {
		qp.window.Close()
		qp.manager.ShowSettings()
	})

	return container.NewVBox(yourLabel, correctLabel, againButton)
}

func (qp *quizPopup) dismiss() {
	qp.dismissOnce.Do(func() {
		if qp.dismissed != nil {
			qp.dismissed()
		}
	})
}
