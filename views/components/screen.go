// Package components holds the screen fragments pushed to the browser.
package components

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"cardd/internal/viewmodel"
)

// Screen renders whichever screen data.Name selects.
func Screen(data viewmodel.Screen) templ.Component {
	switch data.Name {
	case viewmodel.ScreenLearning:
		if data.Learning != nil {
			return Learning(*data.Learning)
		}
	case viewmodel.ScreenCustom:
		if data.Custom != nil {
			return Custom(*data.Custom)
		}
	case viewmodel.ScreenExpress:
		if data.Express != nil {
			return Express(*data.Express)
		}
	case viewmodel.ScreenEmotion:
		if data.Emotion != nil {
			return EmotionDetail(*data.Emotion)
		}
	case viewmodel.ScreenAllFlashcards:
		if data.All != nil {
			return AllFlashcards(*data.All)
		}
	}
	return Home()
}

var homeButtons = []struct {
	screen string
	label  string
}{
	{viewmodel.ScreenLearning, "學習字卡"},
	{viewmodel.ScreenCustom, "自訂字卡"},
	{viewmodel.ScreenExpress, "表達心情"},
	{viewmodel.ScreenAllFlashcards, "所有字卡"},
}

func progress(data viewmodel.LearningScreen) string {
	return strconv.Itoa(data.Number) + " / " + strconv.Itoa(data.Total)
}

func correctText(answer string) string {
	return "正確答案: " + answer
}

// optionName is the form field of the i-th option, counted from zero.
func optionName(i int) string {
	return "option" + strconv.Itoa(i+1)
}

func optionLabel(i int) string {
	return "選項" + strconv.Itoa(i+1)
}

func uploadHint(mb int64) string {
	return "圖片上限 " + strconv.FormatInt(mb, 10) + " MB"
}

func optionsText(opts []string) string {
	return "選項: " + strings.Join(opts, ", ")
}
