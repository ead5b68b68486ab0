// Package navigation tracks which top-level screen is active and, for the
// Express flow, whether the emotion list or one emotion's detail is shown.
package navigation

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for intents the active screen cannot handle.
var ErrInvalidTransition = errors.New("invalid navigation")

// Screen is a top-level screen.
type Screen string

const (
	Home          Screen = "home"
	Learning      Screen = "learning"
	Custom        Screen = "custom"
	Express       Screen = "express"
	AllFlashcards Screen = "all"
)

// ParseScreen maps a route segment to a Screen.
func ParseScreen(s string) (Screen, error) {
	switch Screen(s) {
	case Home, Learning, Custom, Express, AllFlashcards:
		return Screen(s), nil
	}
	return "", fmt.Errorf("%w: unknown screen %q", ErrInvalidTransition, s)
}

// State is a copy of the navigation selectors. Emotion is the key being viewed
// in the Express flow; empty means the selection list is shown.
type State struct {
	Screen  Screen
	Emotion string
}

// ViewingEmotion reports whether the Express detail view is active.
func (s State) ViewingEmotion() bool {
	return s.Screen == Express && s.Emotion != ""
}

// Controller holds the navigation state. It is not safe for concurrent use;
// the owning application serializes access.
type Controller struct {
	state State
}

// NewController starts on Home.
func NewController() *Controller {
	return &Controller{state: State{Screen: Home}}
}

// State returns the current selectors.
func (c *Controller) State() State {
	return c.state
}

// Open moves from Home to another top-level screen.
func (c *Controller) Open(s Screen) error {
	if _, err := ParseScreen(string(s)); err != nil {
		return err
	}
	if c.state.Screen != Home {
		return fmt.Errorf("%w: open %s from %s", ErrInvalidTransition, s, c.state.Screen)
	}
	c.state = State{Screen: s}
	return nil
}

// Back leaves the active screen. The Express detail view returns to the
// emotion list; every other screen returns to Home.
func (c *Controller) Back() {
	if c.state.ViewingEmotion() {
		c.state.Emotion = ""
		return
	}
	c.state = State{Screen: Home}
}

// Home resets to the Home screen regardless of where the user is.
func (c *Controller) Home() {
	c.state = State{Screen: Home}
}

// SelectEmotion shows one emotion's detail. Only valid on the emotion list.
func (c *Controller) SelectEmotion(key string) error {
	if c.state.Screen != Express || c.state.Emotion != "" || key == "" {
		return fmt.Errorf("%w: select emotion %q on %s", ErrInvalidTransition, key, c.state.Screen)
	}
	c.state.Emotion = key
	return nil
}
