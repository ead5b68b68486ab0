package app

import (
	"cardd/internal/emotion"
	"cardd/internal/flashcard"
	"cardd/internal/navigation"
	"cardd/internal/quiz"
)

// Snapshot is a consistent, render-ready copy of the application state.
// Session is set only on the Learning screen, Custom only on All-Flashcards
// and Emotion only on the Express detail view.
type Snapshot struct {
	Nav      navigation.State
	Session  *quiz.Snapshot
	Custom   []flashcard.Flashcard
	Emotions []emotion.Emotion
	Emotion  *emotion.Emotion
	Policy   flashcard.Policy
}

// Snapshot returns the state needed for rendering the active screen.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := Snapshot{
		Nav:    a.nav.State(),
		Policy: a.repo.Policy(),
	}
	switch snap.Nav.Screen {
	case navigation.Learning:
		if a.session != nil {
			s := a.session.Snapshot()
			snap.Session = &s
		}
	case navigation.AllFlashcards:
		snap.Custom = a.repo.Custom()
	case navigation.Express:
		if snap.Nav.ViewingEmotion() {
			if e, err := emotion.Lookup(snap.Nav.Emotion); err == nil {
				snap.Emotion = &e
			}
		} else {
			snap.Emotions = emotion.All()
		}
	}
	return snap
}
