// Package quiz runs one pass through a randomly chosen handful of flashcards.
//
// A Session moves between three feedback states. Selecting the correct option
// shows a congratulation banner; a wrong option reveals the correct answer.
// Either way a timer advances to the next card. After the last card the
// session completes, shows a completion banner for one more delay and then
// reports that it has finished.
package quiz

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"cardd/internal/flashcard"
	"cardd/pkg/realtime"
)

const (
	DefaultSize          = 6
	DefaultFeedbackDelay = 2 * time.Second
)

var (
	ErrEmptyPool        = errors.New("quiz pool is empty")
	ErrNotAwaiting      = errors.New("session is not awaiting an answer")
	ErrNotShowingBanner = errors.New("no congratulation banner to dismiss")
	ErrClosed           = errors.New("session closed")
)

// Feedback is what the learning screen is showing for the current card.
type Feedback int

const (
	AwaitingAnswer Feedback = iota
	ShowingCorrectBanner
	ShowingCorrectAnswerReveal
)

func (f Feedback) String() string {
	switch f {
	case AwaitingAnswer:
		return "awaiting_answer"
	case ShowingCorrectBanner:
		return "showing_correct_banner"
	case ShowingCorrectAnswerReveal:
		return "showing_correct_answer_reveal"
	}
	return "unknown"
}

// Event names a transition reported through Options.OnChange.
type Event string

const (
	EventAnswered  Event = "answered"
	EventAdvanced  Event = "advanced"
	EventCompleted Event = "completed"
	EventFinished  Event = "finished"
)

// Options configures a Session. Zero values fall back to the defaults and the
// wall clock.
type Options struct {
	Size      int
	Delay     time.Duration
	Scheduler realtime.Scheduler
	Rand      *rand.Rand

	// OnChange runs after every transition, outside the session lock.
	OnChange func(Event)
	// OnFinish runs once, after the completion banner has been shown.
	OnFinish func()
}

// Session holds the state for a single pass through the deck.
type Session struct {
	mu        sync.Mutex
	cards     []flashcard.Flashcard
	size      int
	delay     time.Duration
	sched     realtime.Scheduler
	index     int
	feedback  Feedback
	completed bool
	finished  bool
	closed    bool
	pending   realtime.Timer
	gen       uint64
	onChange  func(Event)
	onFinish  func()
}

// New shuffles pool and keeps the first Size cards. A pool smaller than Size
// is kept whole and cards repeat, since the card shown is index mod len.
func New(pool []flashcard.Flashcard, opts Options) (*Session, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultFeedbackDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = realtime.WallClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		cards:    Pick(pool, opts.Size, opts.Rand),
		size:     opts.Size,
		delay:    opts.Delay,
		sched:    opts.Scheduler,
		feedback: AwaitingAnswer,
		onChange: opts.OnChange,
		onFinish: opts.OnFinish,
	}, nil
}

// Pick returns a uniformly random permutation of pool truncated to n cards.
// pool itself is left untouched.
func Pick(pool []flashcard.Flashcard, n int, rng *rand.Rand) []flashcard.Flashcard {
	shuffled := make([]flashcard.Flashcard, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// Answer records the player's choice for the current card.
func (s *Session) Answer(option string) (Feedback, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrClosed
	}
	if s.completed || s.feedback != AwaitingAnswer {
		s.mu.Unlock()
		return 0, ErrNotAwaiting
	}
	if s.currentLocked().IsCorrect(option) {
		s.feedback = ShowingCorrectBanner
	} else {
		s.feedback = ShowingCorrectAnswerReveal
	}
	s.scheduleLocked()
	fb := s.feedback
	s.mu.Unlock()

	s.emit(EventAnswered)
	return fb, nil
}

// Dismiss leaves the congratulation banner before its timer fires.
// The correct-answer reveal can only be left by its timer.
func (s *Session) Dismiss() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.completed || s.feedback != ShowingCorrectBanner {
		s.mu.Unlock()
		return ErrNotShowingBanner
	}
	s.cancelLocked()
	events := s.advanceLocked()
	s.mu.Unlock()

	s.emit(events...)
	return nil
}

// Close cancels any pending timer. Callbacks that were already in flight see
// the session closed and do nothing. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelLocked()
}

// Snapshot captures the state needed for rendering.
type Snapshot struct {
	Index     int
	Size      int
	Card      flashcard.Flashcard
	Feedback  Feedback
	Reveal    string
	Completed bool
	Finished  bool
}

// Snapshot returns a consistent view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Index:     s.index,
		Size:      s.size,
		Feedback:  s.feedback,
		Completed: s.completed,
		Finished:  s.finished,
	}
	if !s.completed {
		snap.Card = s.currentLocked()
		if s.feedback == ShowingCorrectAnswerReveal {
			snap.Reveal = snap.Card.Correct
		}
	}
	return snap
}

func (s *Session) currentLocked() flashcard.Flashcard {
	return s.cards[s.index%len(s.cards)]
}

func (s *Session) advanceLocked() []Event {
	s.index++
	s.feedback = AwaitingAnswer
	if s.index >= s.size {
		s.completed = true
		s.scheduleLocked()
		return []Event{EventAdvanced, EventCompleted}
	}
	return []Event{EventAdvanced}
}

func (s *Session) scheduleLocked() {
	s.cancelLocked()
	gen := s.gen
	s.pending = s.sched.AfterFunc(s.delay, func() {
		s.fire(gen)
	})
}

// cancelLocked stops the pending timer and bumps the generation so a callback
// that already escaped Stop is ignored.
func (s *Session) cancelLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.gen++
}

func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	var events []Event
	finish := false
	switch {
	case s.completed && !s.finished:
		s.finished = true
		finish = true
		events = []Event{EventFinished}
	case !s.completed && s.feedback != AwaitingAnswer:
		events = s.advanceLocked()
	}
	s.mu.Unlock()

	s.emit(events...)
	if finish && s.onFinish != nil {
		s.onFinish()
	}
}

func (s *Session) emit(events ...Event) {
	if s.onChange == nil {
		return
	}
	for _, e := range events {
		s.onChange(e)
	}
}
