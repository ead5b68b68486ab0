// Package app owns the whole in-memory application state: the flashcard
// repository, the navigation selectors and the live quiz session. Every user
// intent and every timer callback goes through App, one at a time.
package app

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cardd/internal/emotion"
	"cardd/internal/flashcard"
	"cardd/internal/navigation"
	"cardd/internal/quiz"
	"cardd/pkg/realtime"
)

// EventScreen is published whenever anything visible changes.
const EventScreen = "screen"

// Options configures an App. Zero values fall back to package defaults.
type Options struct {
	SessionSize   int
	FeedbackDelay time.Duration
	Scheduler     realtime.Scheduler
	Rand          *rand.Rand
	Logger        logrus.FieldLogger
}

// App is the application state shared by every connected view.
type App struct {
	mu      sync.Mutex
	repo    *flashcard.Repository
	nav     *navigation.Controller
	session *quiz.Session
	hub     *realtime.Broadcaster
	opts    Options
	log     logrus.FieldLogger
}

// New creates an App on the Home screen.
func New(repo *flashcard.Repository, opts Options) *App {
	if opts.SessionSize <= 0 {
		opts.SessionSize = quiz.DefaultSize
	}
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = quiz.DefaultFeedbackDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = realtime.WallClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &App{
		repo: repo,
		nav:  navigation.NewController(),
		hub:  realtime.NewBroadcaster(),
		opts: opts,
		log:  opts.Logger.WithField("component", "app"),
	}
}

// Broadcaster returns the hub that carries EventScreen to SSE subscribers.
func (a *App) Broadcaster() *realtime.Broadcaster {
	return a.hub
}

// Repository returns the flashcard repository.
func (a *App) Repository() *flashcard.Repository {
	return a.repo
}

// Open switches from Home to another screen. Entering Learning draws a fresh
// session from the current pool.
func (a *App) Open(s navigation.Screen) error {
	a.mu.Lock()
	if err := a.nav.Open(s); err != nil {
		a.mu.Unlock()
		return err
	}
	if s == navigation.Learning {
		if err := a.startSessionLocked(); err != nil {
			a.nav.Home()
			a.mu.Unlock()
			return err
		}
	}
	a.mu.Unlock()

	a.log.WithField("screen", s).Debug("opened screen")
	a.publish()
	return nil
}

// Back leaves the active screen, discarding any running session.
func (a *App) Back() {
	a.mu.Lock()
	from := a.nav.State()
	a.nav.Back()
	if a.nav.State().Screen != navigation.Learning {
		a.endSessionLocked()
	}
	a.mu.Unlock()

	a.log.WithField("from", from.Screen).Debug("back")
	a.publish()
}

// Answer submits an option for the current card.
func (a *App) Answer(option string) (quiz.Feedback, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return 0, fmt.Errorf("answer: %w", navigation.ErrInvalidTransition)
	}
	card := a.session.Snapshot().Card
	fb, err := a.session.Answer(option)
	if err != nil {
		return 0, fmt.Errorf("answer: %w", err)
	}
	fields := logrus.Fields{
		"card_id":  card.ID,
		"option":   option,
		"feedback": fb.String(),
	}
	if !card.HasOption(option) {
		a.log.WithFields(fields).Warn("answer is not one of the card's options")
		return fb, nil
	}
	a.log.WithFields(fields).Debug("answered")
	return fb, nil
}

// Dismiss closes the congratulation banner early.
func (a *App) Dismiss() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return fmt.Errorf("dismiss: %w", navigation.ErrInvalidTransition)
	}
	if err := a.session.Dismiss(); err != nil {
		return fmt.Errorf("dismiss: %w", err)
	}
	return nil
}

// AddFlashcard stores a custom card and returns to Home. When the repository
// rejects the draft the user stays on the Custom screen.
func (a *App) AddFlashcard(d flashcard.Draft) (flashcard.Flashcard, error) {
	a.mu.Lock()
	if a.nav.State().Screen != navigation.Custom {
		a.mu.Unlock()
		return flashcard.Flashcard{}, fmt.Errorf("add flashcard: %w", navigation.ErrInvalidTransition)
	}
	card, err := a.repo.Add(d)
	if err != nil {
		a.mu.Unlock()
		return flashcard.Flashcard{}, err
	}
	a.nav.Home()
	a.mu.Unlock()

	a.log.WithFields(logrus.Fields{
		"card_id": card.ID,
		"image":   !card.Image.IsZero(),
	}).Info("custom flashcard added")
	a.publish()
	return card, nil
}

// SelectEmotion opens the detail view for one emotion.
func (a *App) SelectEmotion(key string) error {
	if _, err := emotion.Lookup(key); err != nil {
		return err
	}
	a.mu.Lock()
	err := a.nav.SelectEmotion(key)
	a.mu.Unlock()
	if err != nil {
		return err
	}
	a.publish()
	return nil
}

func (a *App) startSessionLocked() error {
	a.endSessionLocked()
	var sess *quiz.Session
	var err error
	sess, err = quiz.New(a.repo.Pool(), quiz.Options{
		Size:      a.opts.SessionSize,
		Delay:     a.opts.FeedbackDelay,
		Scheduler: a.opts.Scheduler,
		Rand:      a.opts.Rand,
		OnChange: func(e quiz.Event) {
			a.log.WithField("event", e).Debug("session changed")
			a.publish()
		},
		OnFinish: func() {
			a.finishSession(sess)
		},
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	a.session = sess
	return nil
}

func (a *App) endSessionLocked() {
	if a.session == nil {
		return
	}
	a.session.Close()
	a.session = nil
}

// finishSession runs from the session's completion timer. A session that was
// already replaced or discarded is ignored.
func (a *App) finishSession(sess *quiz.Session) {
	a.mu.Lock()
	if a.session != sess {
		a.mu.Unlock()
		return
	}
	a.endSessionLocked()
	a.nav.Home()
	a.mu.Unlock()

	a.log.Info("learning session finished")
	a.publish()
}

func (a *App) publish() {
	a.hub.Publish(EventScreen)
}
