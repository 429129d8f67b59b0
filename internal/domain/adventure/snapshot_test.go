package adventure

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	state := startedState(t, PathPirate)
	state.Crew = []CrewMember{{Name: "Nami", Description: "navigator", Relationship: RelationshipNakama}}
	state.Inventory.Abilities = []Ability{{Name: "Gear Second", Type: AbilityFightingStyle}}
	state.Loadout.EquippedAbilities = []Ability{{Name: "Gear Second", Type: AbilityFightingStyle}}
	state.ReputationAnalysis = "A rising star of the seas."
	state.Scene = &Scene{Story: "The marines close in.", Choices: []DisplayChoice{
		{Choice: Choice{ID: 1, Text: "Fight", Effect: "+Strength"}},
		{Choice: Choice{ID: 2, Text: "Flee"}, Status: ChoiceUnavailable},
	}}
	state.MajorEncounter = &MajorEncounter{Name: "Smoker", Description: "smoke"}
	state.StoryKey = 7
	state.View = ViewStats
	state.LastAttemptedChoice = &Choice{ID: 2, Text: "Flee"}

	raw, err := EncodeSnapshot(state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(state, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_UsesWellKnownFieldNames(t *testing.T) {
	raw, err := EncodeSnapshot(startedState(t, PathMarine))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{`"playerStats"`, `"playerLoadout"`, `"playerInventory"`, `"storyKey"`, `"ConquerorsHaki"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("expected %s in %s", key, raw)
		}
	}
}

func TestDecodeSnapshot_RejectsCorruptInput(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"playerStats":`,
		"array":           `[]`,
		"missing loadout": `{"playerStats":{"Agility":1}}`,
		"missing stats":   `{"playerLoadout":{"name":"Rin"}}`,
		"null loadout":    `{"playerStats":{},"playerLoadout":null}`,
		"wrong type":      `{"playerStats":{"Agility":"fast"},"playerLoadout":{"name":"Rin"}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(raw))
			if !errors.Is(err, ErrCorruptSnapshot) {
				t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
			}
		})
	}
}

func TestDecodeSnapshot_BackfillsMissingCollections(t *testing.T) {
	got, err := DecodeSnapshot([]byte(`{"playerStats":{"Agility":9},"playerLoadout":{"name":"Rin","title":"Rookie Pirate"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Stats.Agility != 9 || got.Loadout.Name != "Rin" {
		t.Fatalf("required fields not restored: %+v %+v", got.Stats, got.Loadout)
	}
	if got.Inventory.Outfits == nil || got.Inventory.Weapons == nil || got.Inventory.Titles == nil || got.Inventory.Abilities == nil {
		t.Fatalf("inventory not backfilled: %+v", got.Inventory)
	}
	if got.Crew == nil || got.Loadout.EquippedAbilities == nil {
		t.Fatalf("crew or equipped abilities not backfilled")
	}
	if got.View != ViewGame {
		t.Fatalf("expected default view %q, got %q", ViewGame, got.View)
	}
	if got.Scene != nil || got.MajorEncounter != nil || got.StoryKey != 0 {
		t.Fatalf("optional fields must default: %+v", got)
	}
}
