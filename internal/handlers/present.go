package handlers

import (
	"cardd/internal/app"
	"cardd/internal/emotion"
	"cardd/internal/flashcard"
	"cardd/internal/navigation"
	"cardd/internal/quiz"
	"cardd/internal/viewmodel"
)

const pageTitle = "字卡"

// imageURL resolves an image reference for the browser. Cards created without
// an image get the placeholder.
func imageURL(ref flashcard.ImageRef) string {
	switch ref.Kind {
	case flashcard.ImageBundled:
		return "/static/assets/" + ref.Ref + ".svg"
	case flashcard.ImageExternal:
		return "/images/" + ref.Ref
	}
	return "/static/assets/placeholder.svg"
}

func buildScreen(snap app.Snapshot, maxUpload int64) viewmodel.Screen {
	switch snap.Nav.Screen {
	case navigation.Learning:
		if snap.Session != nil {
			return viewmodel.Screen{
				Name:     viewmodel.ScreenLearning,
				Learning: toLearning(*snap.Session),
			}
		}
	case navigation.Custom:
		return viewmodel.Screen{
			Name:   viewmodel.ScreenCustom,
			Custom: newCustomScreen(snap.Policy, maxUpload),
		}
	case navigation.Express:
		if snap.Emotion != nil {
			item := toEmotionItem(*snap.Emotion)
			return viewmodel.Screen{Name: viewmodel.ScreenEmotion, Emotion: &item}
		}
		items := make([]viewmodel.EmotionItem, 0, len(snap.Emotions))
		for _, e := range snap.Emotions {
			items = append(items, toEmotionItem(e))
		}
		return viewmodel.Screen{
			Name:    viewmodel.ScreenExpress,
			Express: &viewmodel.ExpressScreen{Emotions: items},
		}
	case navigation.AllFlashcards:
		cards := make([]viewmodel.CardItem, 0, len(snap.Custom))
		for _, c := range snap.Custom {
			cards = append(cards, viewmodel.CardItem{
				Prompt:   c.Prompt,
				ImageURL: imageURL(c.Image),
				Options:  c.Options[:],
				Correct:  c.Correct,
			})
		}
		return viewmodel.Screen{
			Name: viewmodel.ScreenAllFlashcards,
			All:  &viewmodel.AllFlashcardsScreen{Cards: cards},
		}
	}
	return viewmodel.Screen{Name: viewmodel.ScreenHome}
}

func toLearning(s quiz.Snapshot) *viewmodel.LearningScreen {
	if s.Completed {
		return &viewmodel.LearningScreen{Feedback: viewmodel.FeedbackComplete, Number: s.Size, Total: s.Size}
	}
	out := &viewmodel.LearningScreen{
		Number:   s.Index + 1,
		Total:    s.Size,
		Prompt:   s.Card.Prompt,
		ImageURL: imageURL(s.Card.Image),
		Options:  s.Card.Options[:],
		Feedback: viewmodel.FeedbackAwaiting,
	}
	switch s.Feedback {
	case quiz.ShowingCorrectBanner:
		out.Feedback = viewmodel.FeedbackCorrect
	case quiz.ShowingCorrectAnswerReveal:
		out.Feedback = viewmodel.FeedbackReveal
		out.Reveal = s.Reveal
	}
	return out
}

func newCustomScreen(policy flashcard.Policy, maxUpload int64) *viewmodel.CustomScreen {
	return &viewmodel.CustomScreen{
		Strict:      policy == flashcard.PolicyStrict,
		MaxUploadMB: maxUpload >> 20,
	}
}

func toEmotionItem(e emotion.Emotion) viewmodel.EmotionItem {
	return viewmodel.EmotionItem{
		Key:     e.Key,
		Label:   e.Label,
		IconURL: imageURL(e.Icon),
	}
}
