// Package controllers holds the quiz state machine that ties settings,
// countdown, notifications, and the popup together.
package controllers

import (
	"fmt"
	"sync"
	"time"

	"quizreminder/internal/logger"
	"quizreminder/internal/notify"
	"quizreminder/internal/settings"
	"quizreminder/internal/timer"
)

// State is the countdown lifecycle as seen from the menu bar.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFired
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFired:
		return "fired"
	default:
		return "unknown"
	}
}

// QuizPresenter shows the quiz popup for a question and its correct answer.
// dismissed runs when the popup is closed, however the user got there.
type QuizPresenter interface {
	Present(question, correctAnswer string, dismissed func())
}

// QuizController owns the timer state machine. All transitions happen on the
// dispatch callback, which the app wires to fyne.Do so expiry lands on the
// UI thread; tests pass a synchronous dispatcher.
type QuizController struct {
	store     *settings.Store
	countdown *timer.Countdown
	notifier  notify.Notifier
	presenter QuizPresenter
	log       logger.Logger
	dispatch  func(func())

	mu      sync.Mutex
	state   State
	onState func(State)
}

func NewQuizController(
	store *settings.Store,
	countdown *timer.Countdown,
	notifier notify.Notifier,
	presenter QuizPresenter,
	log logger.Logger,
	dispatch func(func()),
) *QuizController {
	return &QuizController{
		store:     store,
		countdown: countdown,
		notifier:  notifier,
		presenter: presenter,
		log:       log,
		dispatch:  dispatch,
		state:     StateIdle,
	}
}

// SetStateListener registers the callback invoked after every transition.
// The app layer uses it to keep the tray menu labels in sync.
func (qc *QuizController) SetStateListener(listener func(State)) {
	qc.mu.Lock()
	qc.onState = listener
	qc.mu.Unlock()
}

func (qc *QuizController) State() State {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	return qc.state
}

// Start arms the countdown from the persisted settings. Valid from any
// state: Idle and Fired begin a fresh run, Running rearms with the latest
// duration (last call wins).
func (qc *QuizController) Start() {
	cfg := qc.store.Load()
	duration := time.Duration(cfg.Duration) * time.Second

	qc.setState(StateRunning)
	qc.countdown.Start(duration, func() {
		qc.dispatch(func() {
			qc.handleExpiry(cfg)
		})
	})

	qc.log.Info("QuizController", "countdown started", map[string]interface{}{
		"duration_s": cfg.Duration,
	})
	qc.bestEffortNotify(fmt.Sprintf("Timer started (%ds)", cfg.Duration))
}

// Stop cancels a running countdown. Only meaningful while Running.
func (qc *QuizController) Stop() {
	if qc.State() != StateRunning {
		return
	}
	if !qc.countdown.Stop() {
		return
	}

	qc.setState(StateIdle)
	qc.log.Info("QuizController", "countdown stopped", nil)
	qc.bestEffortNotify("Timer stopped")
}

func (qc *QuizController) handleExpiry(cfg settings.Settings) {
	if qc.State() != StateRunning {
		// Stop won the race against a stale expiry.
		return
	}

	qc.setState(StateFired)
	qc.log.Info("QuizController", "countdown expired", nil)
	qc.bestEffortNotify("Time is up!")

	qc.presenter.Present(cfg.Question, cfg.Answer, func() {
		if qc.State() == StateFired {
			qc.setState(StateIdle)
		}
	})
}

func (qc *QuizController) setState(next State) {
	qc.mu.Lock()
	prev := qc.state
	qc.state = next
	listener := qc.onState
	qc.mu.Unlock()

	if prev != next {
		qc.log.Debug("QuizController", "state transition", map[string]interface{}{
			"from": prev.String(),
			"to":   next.String(),
		})
	}
	if listener != nil {
		listener(next)
	}
}

func (qc *QuizController) bestEffortNotify(body string) {
	if err := qc.notifier.Notify("QuizReminder", body); err != nil {
		qc.log.Warning("QuizController", "notification failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
