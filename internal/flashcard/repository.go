package flashcard

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Draft is what the custom-create screen submits.
type Draft struct {
	Prompt  string
	Options [OptionCount]string
	Correct string
	Image   ImageRef
}

// Repository holds the built-in cards and the user-authored ones.
// Custom cards are only ever appended.
type Repository struct {
	mu       sync.RWMutex
	builtins []Flashcard
	custom   []Flashcard
	policy   Policy
}

// NewRepository creates a repository seeded with the built-in set.
func NewRepository(policy Policy) *Repository {
	return NewRepositoryWith(Builtins(), policy)
}

// NewRepositoryWith creates a repository with a caller-supplied built-in set.
func NewRepositoryWith(builtin []Flashcard, policy Policy) *Repository {
	return &Repository{
		builtins: builtin,
		policy:   policy,
	}
}

// Policy returns the creation policy in force.
func (r *Repository) Policy() Policy {
	return r.policy
}

// Add turns a draft into a card and appends it. Under PolicyStrict a
// malformed draft returns a *ValidationError and nothing is stored.
func (r *Repository) Add(d Draft) (Flashcard, error) {
	if r.policy == PolicyStrict {
		if err := validateDraft(d); err != nil {
			return Flashcard{}, fmt.Errorf("add flashcard: %w", err)
		}
	}
	card := Flashcard{
		ID:      uuid.NewString(),
		Prompt:  d.Prompt,
		Options: d.Options,
		Correct: d.Correct,
		Image:   d.Image,
	}
	r.mu.Lock()
	r.custom = append(r.custom, card)
	r.mu.Unlock()
	return card, nil
}

// Pool returns built-ins followed by every custom card, in insertion order.
func (r *Repository) Pool() []Flashcard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Flashcard, 0, len(r.builtins)+len(r.custom))
	out = append(out, r.builtins...)
	out = append(out, r.custom...)
	return out
}

// Custom returns only the user-authored cards.
func (r *Repository) Custom() []Flashcard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Flashcard, len(r.custom))
	copy(out, r.custom)
	return out
}
