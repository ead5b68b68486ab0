// Package emotion is the fixed catalog shown by the Express screens.
package emotion

import (
	"errors"
	"fmt"

	"cardd/internal/flashcard"
)

// ErrUnknownEmotion is returned by Lookup for keys outside the catalog.
var ErrUnknownEmotion = errors.New("unknown emotion")

// Emotion is a label with its icon.
type Emotion struct {
	Key   string
	Label string
	Icon  flashcard.ImageRef
}

var catalog = []Emotion{
	{Key: "happy", Label: "快樂", Icon: flashcard.Bundled("ic_happy")},
	{Key: "sad", Label: "悲傷", Icon: flashcard.Bundled("ic_sad")},
	{Key: "angry", Label: "生氣", Icon: flashcard.Bundled("ic_angry")},
	{Key: "surprised", Label: "驚喜", Icon: flashcard.Bundled("ic_surprised")},
}

// All returns the catalog in display order.
func All() []Emotion {
	out := make([]Emotion, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an emotion by key.
func Lookup(key string) (Emotion, error) {
	for _, e := range catalog {
		if e.Key == key {
			return e, nil
		}
	}
	return Emotion{}, fmt.Errorf("%w: %q", ErrUnknownEmotion, key)
}
