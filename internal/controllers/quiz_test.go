package controllers

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizreminder/internal/logger"
	"quizreminder/internal/settings"
	"quizreminder/internal/timer"
)

type fakeNotifier struct {
	mu     sync.Mutex
	bodies []string
	err    error
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, body)
	return f.err
}

func (f *fakeNotifier) count(body string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.bodies {
		if b == body {
			n++
		}
	}
	return n
}

type fakePresenter struct {
	mu        sync.Mutex
	questions []string
	answers   []string
	dismissed func()
	presented chan struct{}
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{presented: make(chan struct{}, 4)}
}

func (f *fakePresenter) Present(question, correctAnswer string, dismissed func()) {
	f.mu.Lock()
	f.questions = append(f.questions, question)
	f.answers = append(f.answers, correctAnswer)
	f.dismissed = dismissed
	f.mu.Unlock()
	f.presented <- struct{}{}
}

func (f *fakePresenter) waitPresented(t *testing.T) {
	t.Helper()
	select {
	case <-f.presented:
	case <-time.After(2 * time.Second):
		t.Fatal("popup was never presented")
	}
}

func (f *fakePresenter) dismiss() {
	f.mu.Lock()
	done := f.dismissed
	f.mu.Unlock()
	done()
}

type fixture struct {
	controller *QuizController
	store      *settings.Store
	notifier   *fakeNotifier
	presenter  *fakePresenter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"), logger.Nop{})
	notifier := &fakeNotifier{}
	presenter := newFakePresenter()
	controller := NewQuizController(
		store,
		timer.NewCountdown(),
		notifier,
		presenter,
		logger.Nop{},
		func(f func()) { f() },
	)
	return &fixture{controller: controller, store: store, notifier: notifier, presenter: presenter}
}

func TestInitialStateIsIdle(t *testing.T) {
	fx := newFixture(t)
	assert.Equal(t, StateIdle, fx.controller.State())
}

func TestStartTransitionsToRunning(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.store.Save(settings.Settings{Duration: 3600}))

	fx.controller.Start()

	assert.Equal(t, StateRunning, fx.controller.State())
	assert.Equal(t, 1, fx.notifier.count("Timer started (3600s)"))
}

func TestStopReturnsToIdleAndSuppressesExpiry(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.store.Save(settings.Settings{Duration: 1}))

	fx.controller.Start()
	fx.controller.Stop()

	assert.Equal(t, StateIdle, fx.controller.State())

	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, 0, fx.notifier.count("Time is up!"))
	assert.Empty(t, fx.presenter.questions)
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	fx := newFixture(t)

	fx.controller.Stop()

	assert.Equal(t, StateIdle, fx.controller.State())
	assert.Equal(t, 0, fx.notifier.count("Timer stopped"))
}

func TestExpiryNotifiesAndPresentsQuiz(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.store.Save(settings.Settings{Question: "2+2", Answer: "4", Duration: 1}))

	fx.controller.Start()
	fx.presenter.waitPresented(t)

	assert.Equal(t, StateFired, fx.controller.State())
	assert.Equal(t, 1, fx.notifier.count("Time is up!"))
	assert.Equal(t, []string{"2+2"}, fx.presenter.questions)
	assert.Equal(t, []string{"4"}, fx.presenter.answers)

	fx.presenter.dismiss()
	assert.Equal(t, StateIdle, fx.controller.State())
}

func TestDoubleStartYieldsSingleExpiry(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.store.Save(settings.Settings{Question: "q", Answer: "a", Duration: 1}))

	fx.controller.Start()
	fx.controller.Start()

	fx.presenter.waitPresented(t)
	time.Sleep(1200 * time.Millisecond)

	assert.Equal(t, 1, fx.notifier.count("Time is up!"))
	assert.Len(t, fx.presenter.questions, 1)
}

func TestStartAfterFiredBeginsNewRun(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.store.Save(settings.Settings{Question: "q", Answer: "a", Duration: 1}))

	fx.controller.Start()
	fx.presenter.waitPresented(t)
	require.Equal(t, StateFired, fx.controller.State())

	fx.controller.Start()
	assert.Equal(t, StateRunning, fx.controller.State())

	fx.presenter.waitPresented(t)
	assert.Equal(t, 2, fx.notifier.count("Time is up!"))
}

func TestNotificationFailureDoesNotBlockPopup(t *testing.T) {
	fx := newFixture(t)
	fx.notifier.err = errors.New("notifications disabled")
	require.NoError(t, fx.store.Save(settings.Settings{Question: "q", Answer: "a", Duration: 1}))

	fx.controller.Start()
	fx.presenter.waitPresented(t)

	assert.Equal(t, []string{"q"}, fx.presenter.questions)
}

func TestStateListenerTracksTransitions(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.store.Save(settings.Settings{Duration: 3600}))

	var mu sync.Mutex
	var seen []State
	fx.controller.SetStateListener(func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	fx.controller.Start()
	fx.controller.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateRunning, StateIdle}, seen)
}
