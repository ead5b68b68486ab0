// Package flashcard holds the quiz items: the fixed built-in set and the
// append-only list of cards a user authored while the process is running.
package flashcard

// ImageKind tags which variant an ImageRef holds.
type ImageKind int

const (
	ImageNone ImageKind = iota
	ImageBundled
	ImageExternal
)

// ImageRef points at either an embedded asset or a user-supplied image.
type ImageRef struct {
	Kind ImageKind
	Ref  string
}

// Bundled refers to an asset compiled into the binary, such as "question_3".
func Bundled(id string) ImageRef {
	return ImageRef{Kind: ImageBundled, Ref: id}
}

// External refers to an uploaded image by its locator.
func External(locator string) ImageRef {
	if locator == "" {
		return ImageRef{}
	}
	return ImageRef{Kind: ImageExternal, Ref: locator}
}

// IsZero reports whether no image was attached.
func (r ImageRef) IsZero() bool {
	return r.Kind == ImageNone
}

// OptionCount is the number of answer choices every card carries.
const OptionCount = 3

// Flashcard is a single quiz unit.
type Flashcard struct {
	ID      string
	Prompt  string
	Options [OptionCount]string
	Correct string
	Image   ImageRef
	Builtin bool
}

// IsCorrect reports whether option matches the card's correct answer exactly.
func (f Flashcard) IsCorrect(option string) bool {
	return option == f.Correct
}

// HasOption reports whether option is one of the card's choices.
func (f Flashcard) HasOption(option string) bool {
	for _, o := range f.Options {
		if o == option {
			return true
		}
	}
	return false
}
