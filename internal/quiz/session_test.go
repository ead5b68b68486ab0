package quiz

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardd/internal/flashcard"
	"cardd/pkg/realtime"
	"cardd/pkg/realtime/realtimetest"
)

func makePool(n int) []flashcard.Flashcard {
	pool := make([]flashcard.Flashcard, n)
	for i := range pool {
		pool[i] = flashcard.Flashcard{
			ID:      fmt.Sprintf("card-%d", i),
			Prompt:  fmt.Sprintf("prompt %d", i),
			Options: [3]string{"right", "wrong", "other"},
			Correct: "right",
		}
	}
	return pool
}

type recorder struct {
	events   []Event
	finished int
}

func (r *recorder) options(sched realtime.Scheduler, seed int64) Options {
	return Options{
		Scheduler: sched,
		Rand:      rand.New(rand.NewSource(seed)),
		OnChange:  func(e Event) { r.events = append(r.events, e) },
		OnFinish:  func() { r.finished++ },
	}
}

func (r *recorder) count(e Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

func TestNew_EmptyPool(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNew_InitialState(t *testing.T) {
	s, err := New(makePool(12), Options{Scheduler: realtimetest.NewClock()})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, DefaultSize, snap.Size)
	assert.Equal(t, AwaitingAnswer, snap.Feedback)
	assert.False(t, snap.Completed)
	assert.Len(t, s.cards, DefaultSize)
}

func TestPick_DistinctWhenPoolLargeEnough(t *testing.T) {
	pool := makePool(12)
	for seed := int64(0); seed < 50; seed++ {
		picked := Pick(pool, DefaultSize, rand.New(rand.NewSource(seed)))
		require.Len(t, picked, DefaultSize)
		seen := map[string]bool{}
		for _, c := range picked {
			assert.False(t, seen[c.ID], "seed %d repeated %s", seed, c.ID)
			seen[c.ID] = true
		}
	}
	assert.Equal(t, "card-0", pool[0].ID, "Pick must not reorder the caller's pool")
}

func TestPick_OrderVaries(t *testing.T) {
	pool := makePool(12)
	first := Pick(pool, DefaultSize, rand.New(rand.NewSource(1)))
	varied := false
	for seed := int64(2); seed < 20 && !varied; seed++ {
		other := Pick(pool, DefaultSize, rand.New(rand.NewSource(seed)))
		for i := range first {
			if first[i].ID != other[i].ID {
				varied = true
				break
			}
		}
	}
	assert.True(t, varied, "different seeds should produce different orders")
}

func TestSession_SmallPoolWrapsAround(t *testing.T) {
	sched := realtimetest.NewClock()
	s, err := New(makePool(4), Options{Scheduler: sched, Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)
	cards := s.cards
	require.Len(t, cards, 4)

	var shown []string
	for i := 0; i < DefaultSize; i++ {
		snap := s.Snapshot()
		require.False(t, snap.Completed)
		assert.Equal(t, cards[i%4].ID, snap.Card.ID, "card at index %d", i)
		shown = append(shown, snap.Card.ID)
		_, err := s.Answer("wrong")
		require.NoError(t, err)
		sched.Advance(DefaultFeedbackDelay)
	}
	assert.Len(t, shown, DefaultSize)
	assert.Equal(t, shown[0], shown[4])
	assert.Equal(t, shown[1], shown[5])
	assert.True(t, s.Snapshot().Completed)
}

func TestSession_CorrectAnswerShowsBanner(t *testing.T) {
	sched := realtimetest.NewClock()
	s, _ := New(makePool(6), Options{Scheduler: sched})

	fb, err := s.Answer("right")
	require.NoError(t, err)
	assert.Equal(t, ShowingCorrectBanner, fb)
	snap := s.Snapshot()
	assert.Equal(t, ShowingCorrectBanner, snap.Feedback)
	assert.Empty(t, snap.Reveal)
	assert.Equal(t, 1, sched.Pending())
}

func TestSession_WrongAnswerRevealsCorrect(t *testing.T) {
	sched := realtimetest.NewClock()
	s, _ := New(makePool(6), Options{Scheduler: sched})

	fb, err := s.Answer("wrong")
	require.NoError(t, err)
	assert.Equal(t, ShowingCorrectAnswerReveal, fb)
	snap := s.Snapshot()
	assert.Equal(t, ShowingCorrectAnswerReveal, snap.Feedback)
	assert.Equal(t, "right", snap.Reveal)
	assert.Equal(t, snap.Card.Correct, snap.Reveal)
}

func TestSession_AnswerOnlyWhileAwaiting(t *testing.T) {
	s, _ := New(makePool(6), Options{Scheduler: realtimetest.NewClock()})
	_, err := s.Answer("wrong")
	require.NoError(t, err)

	_, err = s.Answer("right")
	assert.ErrorIs(t, err, ErrNotAwaiting)
	assert.Equal(t, ShowingCorrectAnswerReveal, s.Snapshot().Feedback)
}

func TestSession_TimerAdvances(t *testing.T) {
	sched := realtimetest.NewClock()
	s, _ := New(makePool(6), Options{Scheduler: sched})
	_, _ = s.Answer("right")

	sched.Advance(DefaultFeedbackDelay - time.Millisecond)
	assert.Equal(t, 0, s.Snapshot().Index)

	sched.Advance(time.Millisecond)
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, AwaitingAnswer, snap.Feedback)
}

func TestSession_DismissBanner(t *testing.T) {
	sched := realtimetest.NewClock()
	s, _ := New(makePool(6), Options{Scheduler: sched})
	_, _ = s.Answer("right")

	require.NoError(t, s.Dismiss())
	assert.Equal(t, 1, s.Snapshot().Index)
	assert.Equal(t, 0, sched.Pending(), "dismiss cancels the banner timer")

	// The canceled timer must not advance a second time.
	sched.Advance(time.Minute)
	assert.Equal(t, 1, s.Snapshot().Index)
}

func TestSession_DismissRejectedDuringReveal(t *testing.T) {
	s, _ := New(makePool(6), Options{Scheduler: realtimetest.NewClock()})
	assert.ErrorIs(t, s.Dismiss(), ErrNotShowingBanner)

	_, _ = s.Answer("wrong")
	assert.ErrorIs(t, s.Dismiss(), ErrNotShowingBanner)
	assert.Equal(t, 0, s.Snapshot().Index)
}

func TestSession_AllCorrectScenario(t *testing.T) {
	sched := realtimetest.NewClock()
	rec := &recorder{}
	s, err := New(flashcard.Builtins()[:6], rec.options(sched, 3))
	require.NoError(t, err)

	banners := 0
	for i := 0; i < DefaultSize; i++ {
		snap := s.Snapshot()
		fb, err := s.Answer(snap.Card.Correct)
		require.NoError(t, err)
		if fb == ShowingCorrectBanner {
			banners++
		}
		sched.Advance(DefaultFeedbackDelay)
	}
	assert.Equal(t, DefaultSize, banners)

	snap := s.Snapshot()
	assert.True(t, snap.Completed)
	assert.False(t, snap.Finished)
	assert.Equal(t, 0, rec.finished, "completion banner shows before the caller is notified")

	sched.Advance(DefaultFeedbackDelay)
	assert.True(t, s.Snapshot().Finished)
	assert.Equal(t, 1, rec.finished)
	assert.Equal(t, 1, rec.count(EventCompleted))
	assert.Equal(t, 1, rec.count(EventFinished))

	sched.Advance(time.Minute)
	assert.Equal(t, 1, rec.finished)
}

func TestSession_CompletesOnceRegardlessOfPath(t *testing.T) {
	for _, last := range []string{"right", "wrong"} {
		t.Run(last, func(t *testing.T) {
			sched := realtimetest.NewClock()
			rec := &recorder{}
			s, _ := New(makePool(8), rec.options(sched, 11))
			for i := 0; i < DefaultSize-1; i++ {
				_, _ = s.Answer("right")
				require.NoError(t, s.Dismiss())
			}
			_, err := s.Answer(last)
			require.NoError(t, err)
			assert.False(t, s.Snapshot().Completed)

			sched.Advance(DefaultFeedbackDelay)
			assert.True(t, s.Snapshot().Completed)
			assert.Equal(t, 1, rec.count(EventCompleted))

			_, err = s.Answer("right")
			assert.ErrorIs(t, err, ErrNotAwaiting)
			assert.ErrorIs(t, s.Dismiss(), ErrNotShowingBanner)
		})
	}
}

func TestSession_CloseCancelsTimers(t *testing.T) {
	sched := realtimetest.NewClock()
	rec := &recorder{}
	s, _ := New(makePool(6), rec.options(sched, 5))
	_, _ = s.Answer("wrong")
	before := len(rec.events)

	s.Close()
	s.Close()
	assert.Equal(t, 0, sched.Pending())
	sched.Advance(time.Minute)
	assert.Equal(t, 0, s.Snapshot().Index)
	assert.Len(t, rec.events, before)

	_, err := s.Answer("right")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Dismiss(), ErrClosed)
}

// A callback that escaped Stop must not mutate a closed session.
func TestSession_LateCallbackIgnored(t *testing.T) {
	var captured func()
	sched := schedulerFunc(func(d time.Duration, f func()) realtime.Timer {
		captured = f
		return noopTimer{}
	})
	s, _ := New(makePool(6), Options{Scheduler: sched})
	_, _ = s.Answer("right")
	require.NotNil(t, captured)

	s.Close()
	captured()
	assert.Equal(t, 0, s.Snapshot().Index)
}

func TestSession_CustomSizeAndDelay(t *testing.T) {
	sched := realtimetest.NewClock()
	s, _ := New(makePool(6), Options{Scheduler: sched, Size: 2, Delay: time.Second})
	_, _ = s.Answer("wrong")
	sched.Advance(time.Second)
	_, _ = s.Answer("wrong")
	sched.Advance(time.Second)
	assert.True(t, s.Snapshot().Completed)
}

func TestFeedback_String(t *testing.T) {
	assert.Equal(t, "awaiting_answer", AwaitingAnswer.String())
	assert.Equal(t, "showing_correct_banner", ShowingCorrectBanner.String())
	assert.Equal(t, "showing_correct_answer_reveal", ShowingCorrectAnswerReveal.String())
	assert.Equal(t, "unknown", Feedback(42).String())
}

type schedulerFunc func(d time.Duration, f func()) realtime.Timer

func (fn schedulerFunc) AfterFunc(d time.Duration, f func()) realtime.Timer { return fn(d, f) }

type noopTimer struct{}

func (noopTimer) Stop() bool { return false }
