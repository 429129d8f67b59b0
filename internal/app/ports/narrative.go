package ports

import (
	"context"

	"worldchronicles/internal/domain/adventure"
)

//go:generate go tool mockgen -destination=./mocks/narrative_mock.go -package=mocks . NarrativeGateway,NarrativeSession

type AdvanceRequest struct {
	ChoiceText string
	Stats      adventure.PlayerStats
	Loadout    adventure.PlayerLoadout
	Inventory  adventure.PlayerInventory
	Crew       []adventure.CrewMember
	Encounter  *adventure.MajorEncounter
}

type RegenerateRequest struct {
	StoryText string
	Stats     adventure.PlayerStats
	Loadout   adventure.PlayerLoadout
	Inventory adventure.PlayerInventory
	Crew      []adventure.CrewMember
}

// ResumeRequest seeds a new session with a restored game.
type ResumeRequest struct {
	Story     string
	Stats     adventure.PlayerStats
	Loadout   adventure.PlayerLoadout
	Crew      []adventure.CrewMember
	Encounter *adventure.MajorEncounter
}

// NarrativeGateway produces scenes. Every error it returns wraps one of
// ErrTransport, ErrFormat or ErrQuota.
type NarrativeGateway interface {
	StartStory(ctx context.Context, setup adventure.CharacterSetup) (NarrativeSession, adventure.ScenePayload, error)
	ResumeStory(ctx context.Context, req ResumeRequest) (NarrativeSession, error)
	RegenerateChoices(ctx context.Context, req RegenerateRequest) (adventure.ScenePayload, error)
}

// NarrativeSession is one conversation with the backend. History only grows
// on successful calls.
type NarrativeSession interface {
	ID() string
	AdvanceStory(ctx context.Context, req AdvanceRequest) (adventure.ScenePayload, error)
}
