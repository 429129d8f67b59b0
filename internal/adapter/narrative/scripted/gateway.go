// Package scripted is a deterministic narrative backend for local play
// without an API key.
package scripted

import (
	"context"
	"fmt"
	"sync"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/google/uuid"
)

const choicesPerScene = 7

type Gateway struct {
	NewID func() string
}

func (g Gateway) newID() string {
	if g.NewID != nil {
		return g.NewID()
	}
	return uuid.NewString()
}

func (g Gateway) StartStory(_ context.Context, setup adventure.CharacterSetup) (ports.NarrativeSession, adventure.ScenePayload, error) {
	if err := setup.Validate(); err != nil {
		return nil, adventure.ScenePayload{}, ports.FormatError("start story", err)
	}
	story := fmt.Sprintf("I am %s, a %s from the %s. The sea opens before me.", setup.Name, setup.Path, setup.Origin)
	return &Session{id: g.newID()}, adventure.ScenePayload{
		Story:              story,
		Choices:            sceneChoices(0),
		StatChanges:        adventure.StatChanges{},
		ReputationAnalysis: "Nobody knows my name yet.",
	}, nil
}

func (g Gateway) ResumeStory(_ context.Context, _ ports.ResumeRequest) (ports.NarrativeSession, error) {
	return &Session{id: g.newID()}, nil
}

func (g Gateway) RegenerateChoices(_ context.Context, req ports.RegenerateRequest) (adventure.ScenePayload, error) {
	return adventure.ScenePayload{
		Story:              req.StoryText,
		Choices:            sceneChoices(100),
		ReputationAnalysis: "The winds shift around me.",
	}, nil
}

// Session counts turns so every turn grants a different reward.
type Session struct {
	id string

	mu   sync.Mutex
	turn int
}

func (s *Session) ID() string { return s.id }

func (s *Session) AdvanceStory(_ context.Context, req ports.AdvanceRequest) (adventure.ScenePayload, error) {
	s.mu.Lock()
	s.turn++
	turn := s.turn
	s.mu.Unlock()

	p := adventure.ScenePayload{
		Story:              fmt.Sprintf("I chose to %s. Turn %d of my voyage unfolds.", req.ChoiceText, turn),
		Choices:            sceneChoices(turn * 10),
		StatChanges:        adventure.StatChanges{adventure.StatStrength: 1, adventure.StatBeli: 1000},
		ReputationAnalysis: fmt.Sprintf("Rumours of me have reached %d islands.", turn),
	}
	switch turn % 4 {
	case 1:
		p.NewTitle = fmt.Sprintf("Voyager %d", turn)
	case 2:
		p.NewItem = &adventure.NewItem{
			Name:        fmt.Sprintf("Sea Blade %d", turn),
			Description: "A blade found in a wreck.",
			Grade:       "Skillful Grade",
			Type:        adventure.SlotWeapon,
		}
	case 3:
		p.NewAbility = &adventure.Ability{
			Name:        fmt.Sprintf("Tempest Kick %d", turn),
			Description: "A kick that cuts the wind.",
			Type:        adventure.AbilityFightingStyle,
		}
	default:
		p.NewCrewMembers = []adventure.CrewMember{{
			Name:         fmt.Sprintf("Deckhand %d", turn),
			Description:  "Eager and loud.",
			Relationship: adventure.RelationshipNakama,
		}}
	}
	if req.Encounter != nil {
		p.IsMajorEncounterOver = true
		p.StatChanges[adventure.StatWillpower] = 2
	}
	return p, nil
}

func sceneChoices(base int) []adventure.Choice {
	out := make([]adventure.Choice, 0, choicesPerScene)
	for i := 1; i <= choicesPerScene; i++ {
		out = append(out, adventure.Choice{
			ID:              i,
			Text:            fmt.Sprintf("Path %d", base+i),
			Effect:          "Affects: Strength",
			PotentialReward: "Reward: something new",
		})
	}
	return out
}
