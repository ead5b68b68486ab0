// Package viewmodel defines the view-layer types. They carry only display
// strings so the views package does not import the domain packages.
package viewmodel

// Screen names which screen a fragment renders.
const (
	ScreenHome          = "home"
	ScreenLearning      = "learning"
	ScreenCustom        = "custom"
	ScreenExpress       = "express"
	ScreenEmotion       = "emotion"
	ScreenAllFlashcards = "all"
)

// Learning feedback states as rendered.
const (
	FeedbackAwaiting = "awaiting"
	FeedbackCorrect  = "correct"
	FeedbackReveal   = "reveal"
	FeedbackComplete = "complete"
)

// Page wraps one screen in the full HTML document.
type Page struct {
	Title  string
	Screen Screen
}

// Screen holds data for exactly one screen; Name selects which field is set.
type Screen struct {
	Name     string
	Learning *LearningScreen
	Custom   *CustomScreen
	Express  *ExpressScreen
	Emotion  *EmotionItem
	All      *AllFlashcardsScreen
}

// LearningScreen holds the current quiz card and its feedback.
type LearningScreen struct {
	Number   int
	Total    int
	Prompt   string
	ImageURL string
	Options  []string
	Feedback string
	Reveal   string
}

// CustomScreen holds the create form, refilled after a rejected submit.
type CustomScreen struct {
	Prompt      string
	Options     [3]string
	Correct     string
	Problems    []string
	Strict      bool
	MaxUploadMB int64
}

// EmotionItem is one entry of the Express list or the detail view.
type EmotionItem struct {
	Key     string
	Label   string
	IconURL string
}

// ExpressScreen lists the emotions.
type ExpressScreen struct {
	Emotions []EmotionItem
}

// CardItem is a flashcard as listed on the All-Flashcards screen.
type CardItem struct {
	Prompt   string
	ImageURL string
	Options  []string
	Correct  string
}

// AllFlashcardsScreen lists the user-authored cards.
type AllFlashcardsScreen struct {
	Cards []CardItem
}
