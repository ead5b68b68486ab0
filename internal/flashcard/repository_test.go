package flashcard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	cards := Builtins()
	require.Len(t, cards, 12)
	for _, c := range cards {
		assert.True(t, c.Builtin, c.ID)
		assert.True(t, c.HasOption(c.Correct), "builtin %s correct answer not among options", c.ID)
		assert.Equal(t, ImageBundled, c.Image.Kind)
	}

	// Returned slice is a copy.
	cards[0].Prompt = "changed"
	assert.NotEqual(t, "changed", Builtins()[0].Prompt)
}

func TestRepository_AddAppendsCustom(t *testing.T) {
	repo := NewRepository(PolicyAccept)
	card, err := repo.Add(Draft{
		Prompt:  "測試",
		Options: [3]string{"A", "B", "C"},
		Correct: "B",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)
	assert.False(t, card.Builtin)
	assert.True(t, card.Image.IsZero())

	custom := repo.Custom()
	require.Len(t, custom, 1)
	assert.Equal(t, "測試", custom[0].Prompt)
	assert.Equal(t, [3]string{"A", "B", "C"}, custom[0].Options)
	assert.Equal(t, "B", custom[0].Correct)

	pool := repo.Pool()
	require.Len(t, pool, 13)
	assert.Equal(t, card.ID, pool[12].ID)
}

func TestRepository_PoolKeepsInsertionOrder(t *testing.T) {
	repo := NewRepositoryWith(nil, PolicyAccept)
	first, _ := repo.Add(Draft{Prompt: "1"})
	second, _ := repo.Add(Draft{Prompt: "2"})

	pool := repo.Pool()
	require.Len(t, pool, 2)
	assert.Equal(t, first.ID, pool[0].ID)
	assert.Equal(t, second.ID, pool[1].ID)
}

func TestRepository_AcceptPolicyStoresMalformedDraft(t *testing.T) {
	repo := NewRepository(PolicyAccept)
	_, err := repo.Add(Draft{Options: [3]string{"A", "B", "C"}, Correct: "Z"})
	require.NoError(t, err)
	assert.Len(t, repo.Custom(), 1)
}

func TestRepository_StrictPolicyRejects(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  []string
	}{
		{
			name:  "blank prompt",
			draft: Draft{Prompt: "  ", Options: [3]string{"A", "B", "C"}, Correct: "A"},
			want:  []string{"請輸入問題"},
		},
		{
			name:  "missing option",
			draft: Draft{Prompt: "Q", Options: [3]string{"A", "", "C"}, Correct: "A"},
			want:  []string{"請填寫所有選項"},
		},
		{
			name:  "correct not an option",
			draft: Draft{Prompt: "Q", Options: [3]string{"A", "B", "C"}, Correct: "D"},
			want:  []string{"正確答案必須是其中一個選項"},
		},
		{
			name:  "blank correct",
			draft: Draft{Prompt: "Q", Options: [3]string{"A", "B", "C"}},
			want:  []string{"請輸入正確答案"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository(PolicyStrict)
			_, err := repo.Add(tt.draft)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.want, verr.Problems)
			assert.Empty(t, repo.Custom())
		})
	}
}

func TestRepository_StrictPolicyAcceptsWellFormed(t *testing.T) {
	repo := NewRepository(PolicyStrict)
	_, err := repo.Add(Draft{Prompt: "Q", Options: [3]string{"A", "B", "C"}, Correct: "C"})
	require.NoError(t, err)
	assert.Len(t, repo.Custom(), 1)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyAccept, p)

	p, err = ParsePolicy(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	_, err = ParsePolicy("lenient")
	assert.Error(t, err)
}

func TestExternal_EmptyLocatorIsNone(t *testing.T) {
	assert.True(t, External("").IsZero())
	assert.Equal(t, ImageRef{Kind: ImageExternal, Ref: "abc"}, External("abc"))
}
