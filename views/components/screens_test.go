package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardd/internal/viewmodel"
)

func renderString(t *testing.T, data viewmodel.Screen) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Screen(data).Render(context.Background(), &buf))
	return buf.String()
}

func TestScreen_FallsBackToHome(t *testing.T) {
	html := renderString(t, viewmodel.Screen{Name: viewmodel.ScreenLearning})
	assert.Contains(t, html, `data-screen="home"`)
	assert.Contains(t, html, "學習字卡")
	assert.Contains(t, html, `action="/open/all"`)
}

func TestLearning_Awaiting(t *testing.T) {
	html := renderString(t, viewmodel.Screen{
		Name: viewmodel.ScreenLearning,
		Learning: &viewmodel.LearningScreen{
			Number:   2,
			Total:    6,
			Prompt:   "這是什麼顏色?",
			ImageURL: "/static/assets/question_1.svg",
			Options:  []string{"紅色", "藍色", "綠色"},
			Feedback: viewmodel.FeedbackAwaiting,
		},
	})
	assert.Contains(t, html, "2 / 6")
	assert.Contains(t, html, `value="藍色"`)
	assert.Contains(t, html, `src="/static/assets/question_1.svg"`)
	assert.NotContains(t, html, "正確答案")
}

func TestLearning_Reveal(t *testing.T) {
	html := renderString(t, viewmodel.Screen{
		Name: viewmodel.ScreenLearning,
		Learning: &viewmodel.LearningScreen{
			Prompt:   "Q",
			Options:  []string{"A", "B", "C"},
			Feedback: viewmodel.FeedbackReveal,
			Reveal:   "B",
		},
	})
	assert.Contains(t, html, "<strong>正確答案: B</strong>")
	assert.NotContains(t, html, `name="option"`)
}

func TestLearning_Banners(t *testing.T) {
	correct := renderString(t, viewmodel.Screen{
		Name:     viewmodel.ScreenLearning,
		Learning: &viewmodel.LearningScreen{Feedback: viewmodel.FeedbackCorrect},
	})
	assert.Contains(t, correct, "恭喜答對!")
	assert.Contains(t, correct, `action="/learning/dismiss"`)

	complete := renderString(t, viewmodel.Screen{
		Name:     viewmodel.ScreenLearning,
		Learning: &viewmodel.LearningScreen{Feedback: viewmodel.FeedbackComplete},
	})
	assert.Contains(t, complete, "恭喜完成所有題目!")
}

func TestCustom_EscapesAndShowsProblems(t *testing.T) {
	html := renderString(t, viewmodel.Screen{
		Name: viewmodel.ScreenCustom,
		Custom: &viewmodel.CustomScreen{
			Prompt:   `<b>"hi"</b>`,
			Problems: []string{"請輸入正確答案"},
			Strict:   true,
		},
	})
	assert.Contains(t, html, "&lt;b&gt;&#34;hi&#34;&lt;/b&gt;")
	assert.Contains(t, html, "<li>請輸入正確答案</li>")
	assert.Contains(t, html, ` required`)
	assert.Contains(t, html, `name="option3"`)
}

func TestAllFlashcards(t *testing.T) {
	html := renderString(t, viewmodel.Screen{
		Name: viewmodel.ScreenAllFlashcards,
		All: &viewmodel.AllFlashcardsScreen{Cards: []viewmodel.CardItem{{
			Prompt:  "測試",
			Options: []string{"A", "B", "C"},
			Correct: "B",
		}}},
	})
	assert.Contains(t, html, "選項: A, B, C")
	assert.Contains(t, html, "<strong>正確答案: B</strong>")
}

func TestExpressAndDetail(t *testing.T) {
	list := renderString(t, viewmodel.Screen{
		Name: viewmodel.ScreenExpress,
		Express: &viewmodel.ExpressScreen{Emotions: []viewmodel.EmotionItem{
			{Key: "happy", Label: "快樂", IconURL: "/static/assets/ic_happy.svg"},
		}},
	})
	assert.Contains(t, list, `action="/express/happy"`)

	detail := renderString(t, viewmodel.Screen{
		Name:    viewmodel.ScreenEmotion,
		Emotion: &viewmodel.EmotionItem{Key: "happy", Label: "快樂", IconURL: "/static/assets/ic_happy.svg"},
	})
	assert.Contains(t, detail, "<h2 class=\"emotion-label\">快樂</h2>")
	assert.Contains(t, detail, `action="/back"`)
}
