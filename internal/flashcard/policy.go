package flashcard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Policy decides what happens to malformed drafts.
type Policy string

const (
	// PolicyAccept stores every draft as submitted, blank fields included.
	PolicyAccept Policy = "accept"
	// PolicyStrict rejects drafts with blank fields or a correct answer that
	// is not one of the options.
	PolicyStrict Policy = "strict"
)

// ParsePolicy maps a config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAccept:
		return PolicyAccept, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown flashcard policy %q", s)
}

// ValidationError lists the user-visible reasons a draft was rejected.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid flashcard: " + strings.Join(e.Problems, "; ")
}

type draftInput struct {
	Prompt  string    `validate:"required"`
	Options [3]string `validate:"dive,required"`
	Correct string    `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(draftInput)
		if in.Correct == "" {
			return
		}
		for _, o := range in.Options {
			if o == in.Correct {
				return
			}
		}
		sl.ReportError(in.Correct, "Correct", "Correct", "oneofoptions", "")
	}, draftInput{})
	return v
}

func validateDraft(d Draft) error {
	in := draftInput{
		Prompt:  strings.TrimSpace(d.Prompt),
		Correct: strings.TrimSpace(d.Correct),
	}
	for i, o := range d.Options {
		in.Options[i] = strings.TrimSpace(o)
	}
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, problemMessage(fe))
	}
	return &ValidationError{Problems: problems}
}

func problemMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Prompt":
		return "請輸入問題"
	case strings.HasPrefix(fe.Field(), "Options"):
		return "請填寫所有選項"
	case fe.Field() == "Correct" && fe.Tag() == "oneofoptions":
		return "正確答案必須是其中一個選項"
	case fe.Field() == "Correct":
		return "請輸入正確答案"
	}
	return fe.Error()
}
