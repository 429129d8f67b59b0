package adventure

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// SaveKey is the single well-known key a snapshot is stored under.
const SaveKey = "onePieceAdventureSave"

var ErrCorruptSnapshot = errors.New("save file is corrupted or incomplete")

type snapshot struct {
	PlayerStats         PlayerStats     `json:"playerStats"`
	PlayerLoadout       *PlayerLoadout  `json:"playerLoadout"`
	PlayerInventory     PlayerInventory `json:"playerInventory"`
	Crew                []CrewMember    `json:"crew"`
	ReputationAnalysis  string          `json:"reputationAnalysis"`
	Scene               *Scene          `json:"scene"`
	MajorEncounter      *MajorEncounter `json:"majorEncounter"`
	StoryKey            int             `json:"storyKey"`
	View                View            `json:"view"`
	LastAttemptedChoice *Choice         `json:"lastAttemptedChoice"`
}

func EncodeSnapshot(g GameState) ([]byte, error) {
	return json.Marshal(snapshot{
		PlayerStats:         g.Stats,
		PlayerLoadout:       g.Loadout,
		PlayerInventory:     g.Inventory,
		Crew:                g.Crew,
		ReputationAnalysis:  g.ReputationAnalysis,
		Scene:               g.Scene,
		MajorEncounter:      g.MajorEncounter,
		StoryKey:            g.StoryKey,
		View:                g.View,
		LastAttemptedChoice: g.LastAttemptedChoice,
	})
}

// DecodeSnapshot parses a stored snapshot. playerLoadout and playerStats are
// the only required fields; missing collections come back empty and missing
// optional fields take their defaults.
func DecodeSnapshot(raw []byte) (GameState, error) {
	if !gjson.ValidBytes(raw) {
		return GameState{}, fmt.Errorf("%w: invalid json", ErrCorruptSnapshot)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() || !doc.Get("playerLoadout").IsObject() || !doc.Get("playerStats").IsObject() {
		return GameState{}, fmt.Errorf("%w: missing playerLoadout or playerStats", ErrCorruptSnapshot)
	}

	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	inv := s.PlayerInventory
	if inv.Outfits == nil {
		inv.Outfits = []Item{}
	}
	if inv.Weapons == nil {
		inv.Weapons = []Item{}
	}
	if inv.Titles == nil {
		inv.Titles = []string{}
	}
	if inv.Abilities == nil {
		inv.Abilities = []Ability{}
	}
	if s.PlayerLoadout.EquippedAbilities == nil {
		s.PlayerLoadout.EquippedAbilities = []Ability{}
	}
	crew := s.Crew
	if crew == nil {
		crew = []CrewMember{}
	}
	view := s.View
	if view == "" {
		view = ViewGame
	}

	return GameState{
		Stats:               s.PlayerStats,
		Loadout:             s.PlayerLoadout,
		Inventory:           inv,
		Crew:                crew,
		ReputationAnalysis:  s.ReputationAnalysis,
		Scene:               s.Scene,
		MajorEncounter:      s.MajorEncounter,
		StoryKey:            s.StoryKey,
		View:                view,
		LastAttemptedChoice: s.LastAttemptedChoice,
	}, nil
}
