package adventure

// GameState is everything a player's adventure holds. Loadout is nil until
// the adventure begins.
type GameState struct {
	Stats               PlayerStats     `json:"playerStats"`
	Loadout             *PlayerLoadout  `json:"playerLoadout"`
	Inventory           PlayerInventory `json:"playerInventory"`
	Crew                []CrewMember    `json:"crew"`
	ReputationAnalysis  string          `json:"reputationAnalysis"`
	Scene               *Scene          `json:"scene"`
	MajorEncounter      *MajorEncounter `json:"majorEncounter"`
	StoryKey            int             `json:"storyKey"`
	View                View            `json:"view"`
	LastAttemptedChoice *Choice         `json:"lastAttemptedChoice"`
}

// NewGameState returns first-run defaults: the setup screen and no loadout.
func NewGameState() GameState {
	return GameState{
		Stats:     InitialStats(),
		Inventory: EmptyInventory(),
		Crew:      []CrewMember{},
		View:      ViewCustomization,
	}
}

func EmptyInventory() PlayerInventory {
	return PlayerInventory{
		Outfits:   []Item{},
		Weapons:   []Item{},
		Titles:    []string{},
		Abilities: []Ability{},
	}
}

func (g GameState) Started() bool {
	return g.Loadout != nil
}

// Turn extracts the reconcilable part of the state. It must only be called
// once the adventure has started.
func (g GameState) Turn() TurnState {
	return TurnState{
		Stats:     g.Stats,
		Loadout:   *g.Loadout,
		Inventory: g.Inventory,
		Crew:      g.Crew,
		Encounter: g.MajorEncounter,
	}
}

// WithTurn writes a reconciled turn back into the state.
func (g GameState) WithTurn(t TurnState) GameState {
	out := g
	loadout := t.Loadout
	out.Stats = t.Stats
	out.Loadout = &loadout
	out.Inventory = t.Inventory
	out.Crew = t.Crew
	out.MajorEncounter = t.Encounter
	return out
}

// Clone deep-copies the state so callers can hand it out without sharing
// slices with the live game.
func (g GameState) Clone() GameState {
	out := g
	if g.Loadout != nil {
		l := g.Loadout.Clone()
		out.Loadout = &l
	}
	out.Inventory = g.Inventory.Clone()
	out.Crew = cloneSlice(g.Crew)
	if g.Scene != nil {
		s := Scene{Story: g.Scene.Story, Choices: cloneSlice(g.Scene.Choices)}
		out.Scene = &s
	}
	if g.MajorEncounter != nil {
		enc := *g.MajorEncounter
		out.MajorEncounter = &enc
	}
	if g.LastAttemptedChoice != nil {
		c := *g.LastAttemptedChoice
		out.LastAttemptedChoice = &c
	}
	return out
}
