package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"
)

const systemInstruction = `You are the Game Master of 'One Piece: World Chronicles', a text RPG.
Write every story segment in first person. Every turn must grant a tangible reward through
newItem, newAbility, newTitle, itemUpdates or abilityUpdates, plus stat changes.
Offer six to eight choices and keep at least one choice free of Beli cost.
Bounty values are in the millions and statChanges.Bounty is the new total, not a delta.
Set majorEncounter for multi-turn boss fights and isMajorEncounterOver when one ends.
Respond with a single JSON object matching the provided schema and nothing else.`

func startPrompt(s adventure.CharacterSetup) string {
	fruit := "I have not eaten a Devil Fruit and am a proficient swimmer."
	if s.HasDevilFruit() {
		fruit = fmt.Sprintf("I have consumed the %s, which %s.", s.DevilFruit.Name, s.DevilFruit.Description)
	}
	var b strings.Builder
	b.WriteString("I am beginning my adventure. Here are my details:\n")
	fmt.Fprintf(&b, "- Name: %s\n- Path: %s\n- Origin: %s\n- Gender: %s\n", s.Name, s.Path, s.Origin, s.Gender)
	fmt.Fprintf(&b, "- Outfit: %s (%s)\n- Weapon: %s (%s)\n", s.Outfit.Name, s.Outfit.Description, s.Weapon.Name, s.Weapon.Description)
	fmt.Fprintf(&b, "- Devil Fruit: %s\n\n", fruit)
	b.WriteString("Begin with an exciting opening scene that fits my path and origin.")
	return b.String()
}

func advancePrompt(r ports.AdvanceRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I have made my choice: %q\n\n", r.ChoiceText)
	writeStatus(&b, r.Stats, r.Loadout, r.Inventory, r.Crew)
	if r.Encounter != nil {
		fmt.Fprintf(&b, "\nThis is a turn in the ongoing battle against %s. Describe this phase blow by blow and only end the fight when it is decisive.\n", r.Encounter.Name)
	} else {
		b.WriteString("\nContinue the story based on this choice.\n")
	}
	b.WriteString("Grant a reward that is not already in my known possessions.")
	return b.String()
}

func regeneratePrompt(r ports.RegenerateRequest) string {
	var b strings.Builder
	b.WriteString("I want a new set of choices for this exact situation.\n\nMy Current Scene Narrative:\n\"\"\"\n")
	b.WriteString(r.StoryText)
	b.WriteString("\n\"\"\"\n\n")
	writeStatus(&b, r.Stats, r.Loadout, r.Inventory, r.Crew)
	b.WriteString("\nReturn only the choices.")
	return b.String()
}

func resumePrompt(r ports.ResumeRequest) string {
	var b strings.Builder
	b.WriteString("I am resuming a saved adventure. This is where I left off:\n\"\"\"\n")
	b.WriteString(r.Story)
	b.WriteString("\n\"\"\"\n\n")
	fmt.Fprintf(&b, "- Stats: %s\n- Loadout: %s\n- Crew: %s\n", toJSON(r.Stats), toJSON(r.Loadout), toJSON(r.Crew))
	if r.Encounter != nil {
		fmt.Fprintf(&b, "- Ongoing battle: %s\n", r.Encounter.Name)
	}
	return b.String()
}

func writeStatus(b *strings.Builder, stats adventure.PlayerStats, loadout adventure.PlayerLoadout, inv adventure.PlayerInventory, crew []adventure.CrewMember) {
	b.WriteString("My Current Status:\n")
	fmt.Fprintf(b, "- Stats: %s\n", toJSON(stats))
	fmt.Fprintf(b, "- Loadout: %s\n", toJSON(loadout))
	fmt.Fprintf(b, "- My Known Possessions (Names Only): %s\n", toJSON(knownPossessions(inv)))
	fmt.Fprintf(b, "- Crew: %s\n", toJSON(crew))
}

func knownPossessions(inv adventure.PlayerInventory) []string {
	names := make([]string, 0, len(inv.Outfits)+len(inv.Weapons)+len(inv.Titles)+len(inv.Abilities))
	for _, it := range inv.Outfits {
		names = append(names, it.Name)
	}
	for _, it := range inv.Weapons {
		names = append(names, it.Name)
	}
	names = append(names, inv.Titles...)
	for _, a := range inv.Abilities {
		names = append(names, a.Name)
	}
	return names
}

func toJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}
