package gemini

func str(desc string) map[string]any {
	return map[string]any{"type": "STRING", "description": desc}
}

func object(props map[string]any, required ...string) map[string]any {
	out := map[string]any{"type": "OBJECT", "properties": props}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func array(desc string, items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "description": desc, "items": items}
}

var choiceSchema = object(map[string]any{
	"id":              map[string]any{"type": "INTEGER"},
	"text":            str("Choice text. Beli costs are spelled out."),
	"effect":          str("Short hint of what the choice affects."),
	"potentialReward": str("The guaranteed reward for this choice."),
}, "id", "text", "effect", "potentialReward")

var choicesProperty = array("Six to eight distinct choices.", choiceSchema)

func statChangesSchema() map[string]any {
	props := map[string]any{}
	for _, k := range []string{
		"Agility", "Strength", "ConquerorsHaki", "HakiControl", "Willpower", "Endurance",
		"Intelligence", "Beli", "Bounty", "DevilFruitMastery", "ObservationHaki", "ArmamentHaki",
	} {
		props[k] = map[string]any{"type": "INTEGER"}
	}
	return object(props)
}

var sceneSchema = object(map[string]any{
	"story":              str("Next story segment in first person, at least two paragraphs."),
	"choices":            choicesProperty,
	"statChanges":        statChangesSchema(),
	"reputationAnalysis": str("One or two sentences about my reputation."),
	"newItem": object(map[string]any{
		"type":        str("Either 'outfit' or 'weapon'."),
		"name":        str("Item name."),
		"description": str("Item description."),
		"grade":       str("Optional weapon grade."),
	}, "type", "name", "description"),
	"newAbility": object(map[string]any{
		"name":        str("Ability name."),
		"description": str("Ability description."),
		"type":        str("'Devil Fruit', 'Haki', 'Fighting Style', 'Swordsmanship' or 'Awakening'."),
	}, "name", "description", "type"),
	"newTitle":   str("Optional new title."),
	"newFaction": str("Optional new allegiance."),
	"majorEncounter": object(map[string]any{
		"name":        str("Antagonist name."),
		"description": str("Short threat description."),
	}, "name", "description"),
	"newCrewMembers": array("New crew members.", object(map[string]any{
		"name":         str(""),
		"description":  str(""),
		"relationship": str(""),
	}, "name", "description", "relationship")),
	"crewUpdates": array("Relationship changes for existing crew.", object(map[string]any{
		"name":         str(""),
		"relationship": str(""),
		"description":  str(""),
	}, "name", "relationship")),
	"itemUpdates": array("Evolutions of owned items.", object(map[string]any{
		"name":        str("Name of the owned item."),
		"description": str("New description."),
		"grade":       str("New grade."),
	}, "name")),
	"abilityUpdates": array("Evolutions of owned abilities.", object(map[string]any{
		"name":        str("Name of the owned ability."),
		"description": str("New description."),
	}, "name")),
	"isMajorEncounterOver": map[string]any{"type": "BOOLEAN"},
}, "story", "choices", "statChanges", "reputationAnalysis")

var choicesSchema = object(map[string]any{
	"choices": choicesProperty,
}, "choices")
