package flashcard

const (
	promptColor  = "這是什麼顏色?"
	promptShape  = "這是什麼形狀?"
	promptAnimal = "這是什麼動物?"
	promptFruit  = "這是什麼水果?"
)

var builtins = []Flashcard{
	{ID: "builtin-1", Prompt: promptColor, Options: [3]string{"紅色", "藍色", "綠色"}, Correct: "藍色", Image: Bundled("question_1")},
	{ID: "builtin-2", Prompt: promptColor, Options: [3]string{"綠色", "黃色", "橘色"}, Correct: "橘色", Image: Bundled("question_2")},
	{ID: "builtin-3", Prompt: promptColor, Options: [3]string{"藍色", "白色", "黑色"}, Correct: "黑色", Image: Bundled("question_3")},
	{ID: "builtin-4", Prompt: promptShape, Options: [3]string{"圓形", "正方形", "三角形"}, Correct: "圓形", Image: Bundled("question_4")},
	{ID: "builtin-5", Prompt: promptShape, Options: [3]string{"圓形", "正方形", "長方形"}, Correct: "正方形", Image: Bundled("question_5")},
	{ID: "builtin-6", Prompt: promptShape, Options: [3]string{"圓形", "正方形", "長方形"}, Correct: "長方形", Image: Bundled("question_6")},
	{ID: "builtin-7", Prompt: promptAnimal, Options: [3]string{"狗", "貓", "鳥"}, Correct: "狗", Image: Bundled("question_7")},
	{ID: "builtin-8", Prompt: promptAnimal, Options: [3]string{"狗", "貓", "鳥"}, Correct: "貓", Image: Bundled("question_8")},
	{ID: "builtin-9", Prompt: promptAnimal, Options: [3]string{"狗", "貓", "鳥"}, Correct: "鳥", Image: Bundled("question_9")},
	{ID: "builtin-10", Prompt: promptFruit, Options: [3]string{"蘋果", "香蕉", "橘子"}, Correct: "蘋果", Image: Bundled("question_10")},
	{ID: "builtin-11", Prompt: promptFruit, Options: [3]string{"蘋果", "香蕉", "橘子"}, Correct: "香蕉", Image: Bundled("question_11")},
	{ID: "builtin-12", Prompt: promptFruit, Options: [3]string{"蘋果", "香蕉", "橘子"}, Correct: "橘子", Image: Bundled("question_12")},
}

func init() {
	for i := range builtins {
		builtins[i].Builtin = true
	}
}

// Builtins returns a copy of the cards shipped with the app.
func Builtins() []Flashcard {
	out := make([]Flashcard, len(builtins))
	copy(out, builtins)
	return out
}
