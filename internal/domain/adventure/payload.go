package adventure

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinChoices = 6
	MaxChoices = 8
)

var ErrInvalidPayload = errors.New("invalid scene payload")

// Validate checks the shape every backend response must have.
func (p ScenePayload) Validate() error {
	if strings.TrimSpace(p.Story) == "" {
		return fmt.Errorf("%w: empty story", ErrInvalidPayload)
	}
	if n := len(p.Choices); n < MinChoices || n > MaxChoices {
		return fmt.Errorf("%w: %d choices, want %d-%d", ErrInvalidPayload, n, MinChoices, MaxChoices)
	}
	for _, c := range p.Choices {
		if strings.TrimSpace(c.Text) == "" {
			return fmt.Errorf("%w: choice %d has no text", ErrInvalidPayload, c.ID)
		}
	}
	if p.NewItem != nil && p.NewItem.Type != SlotOutfit && p.NewItem.Type != SlotWeapon {
		return fmt.Errorf("%w: new item type %q", ErrInvalidPayload, p.NewItem.Type)
	}
	return nil
}

// SceneFromPayload builds a fresh scene; every choice starts available.
func SceneFromPayload(p ScenePayload) *Scene {
	return &Scene{Story: p.Story, Choices: displayChoices(p.Choices)}
}

func displayChoices(choices []Choice) []DisplayChoice {
	out := make([]DisplayChoice, 0, len(choices))
	for _, c := range choices {
		out = append(out, DisplayChoice{Choice: c})
	}
	return out
}

// WithChoices keeps the story and swaps in a new set of choices.
func (s Scene) WithChoices(choices []Choice) *Scene {
	return &Scene{Story: s.Story, Choices: displayChoices(choices)}
}

// MarkUnavailable flags one choice as temporarily unavailable. The other
// choices are left selectable.
func (s *Scene) MarkUnavailable(choiceID int) bool {
	if s == nil {
		return false
	}
	for i := range s.Choices {
		if s.Choices[i].ID == choiceID {
			s.Choices[i].Status = ChoiceUnavailable
			return true
		}
	}
	return false
}

func (s *Scene) FindChoice(choiceID int) (DisplayChoice, bool) {
	if s == nil {
		return DisplayChoice{}, false
	}
	for _, c := range s.Choices {
		if c.ID == choiceID {
			return c, true
		}
	}
	return DisplayChoice{}, false
}
