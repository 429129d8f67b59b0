package adventure

import (
	"errors"
	"strings"
)

var ErrInvalidSetup = errors.New("invalid character setup")

type Path string

const (
	PathPirate          Path = "Pirate"
	PathMarine          Path = "Marine"
	PathRevolutionary   Path = "Revolutionary"
	PathCelestialDragon Path = "Celestial Dragon"
	PathSwordsman       Path = "Swordsman"
	PathCipherPol       Path = "Cipher Pol"
)

type OriginSea string

const (
	OriginEastBlue  OriginSea = "East Blue"
	OriginWestBlue  OriginSea = "West Blue"
	OriginNorthBlue OriginSea = "North Blue"
	OriginSouthBlue OriginSea = "South Blue"
	OriginGrandLine OriginSea = "Grand Line"
)

// NoDevilFruit is the catalog entry for a player who picked no fruit.
const NoDevilFruit = "None"

type CharacterSetup struct {
	Name       string    `json:"name"`
	Outfit     Item      `json:"outfit"`
	Weapon     Item      `json:"weapon"`
	Path       Path      `json:"path"`
	Gender     Gender    `json:"gender"`
	Origin     OriginSea `json:"origin"`
	DevilFruit *Item     `json:"devilFruit"`
}

func (c CharacterSetup) HasDevilFruit() bool {
	return c.DevilFruit != nil && c.DevilFruit.Name != "" && c.DevilFruit.Name != NoDevilFruit
}

func (c CharacterSetup) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.Join(ErrInvalidSetup, errors.New("name is required"))
	}
	if strings.TrimSpace(c.Outfit.Name) == "" || strings.TrimSpace(c.Weapon.Name) == "" {
		return errors.Join(ErrInvalidSetup, errors.New("outfit and weapon are required"))
	}
	if _, ok := pathTemplates[c.Path]; !ok {
		return errors.Join(ErrInvalidSetup, errors.New("unknown path "+string(c.Path)))
	}
	switch c.Gender {
	case GenderMale, GenderFemale, GenderNonBinary:
	default:
		return errors.Join(ErrInvalidSetup, errors.New("unknown gender "+string(c.Gender)))
	}
	switch c.Origin {
	case OriginEastBlue, OriginWestBlue, OriginNorthBlue, OriginSouthBlue, OriginGrandLine:
	default:
		return errors.Join(ErrInvalidSetup, errors.New("unknown origin "+string(c.Origin)))
	}
	return nil
}

type pathTemplate struct {
	Title   string
	Faction string
	Stats   PlayerStats
}

var pathTemplates = map[Path]pathTemplate{
	PathPirate: {
		Title:   "Rookie Pirate",
		Faction: FactionUnaffiliated,
		Stats: PlayerStats{
			Agility: 8, Strength: 7, ConquerorsHaki: 6, HakiControl: 5,
			Willpower: 8, Endurance: 7, Intelligence: 4,
			Beli: 50000, Bounty: 0, DevilFruitMastery: 1,
			ObservationHaki: 1, ArmamentHaki: 1,
		},
	},
	PathMarine: {
		Title:   "Marine Recruit",
		Faction: FactionMarines,
		Stats: PlayerStats{
			Agility: 6, Strength: 6, ConquerorsHaki: 7, HakiControl: 6,
			Willpower: 6, Endurance: 8, Intelligence: 6,
			Beli: 100000, Bounty: 0, DevilFruitMastery: 1,
			ObservationHaki: 1, ArmamentHaki: 1,
		},
	},
	PathRevolutionary: {
		Title:   "Freedom Fighter",
		Faction: FactionRevolutionary,
		Stats: PlayerStats{
			Agility: 7, Strength: 5, ConquerorsHaki: 6, HakiControl: 7,
			Willpower: 9, Endurance: 6, Intelligence: 8,
			Beli: 75000, Bounty: 0, DevilFruitMastery: 1,
			ObservationHaki: 1, ArmamentHaki: 1,
		},
	},
	PathCelestialDragon: {
		Title:   "World Noble",
		Faction: FactionWorldGovernment,
		Stats: PlayerStats{
			Agility: 2, Strength: 2, ConquerorsHaki: 8, HakiControl: 2,
			Willpower: 5, Endurance: 3, Intelligence: 4,
			Beli: 10000000, Bounty: 0, DevilFruitMastery: 1,
			ObservationHaki: 1, ArmamentHaki: 1,
		},
	},
	PathSwordsman: {
		Title:   "Wandering Swordsman",
		Faction: FactionUnaffiliated,
		Stats: PlayerStats{
			Agility: 8, Strength: 8, ConquerorsHaki: 5, HakiControl: 6,
			Willpower: 8, Endurance: 7, Intelligence: 3,
			Beli: 40000, Bounty: 0, DevilFruitMastery: 1,
			ObservationHaki: 1, ArmamentHaki: 1,
		},
	},
	PathCipherPol: {
		Title:   "Cipher Pol Agent",
		Faction: FactionWorldGovernment,
		Stats: PlayerStats{
			Agility: 9, Strength: 5, ConquerorsHaki: 1, HakiControl: 8,
			Willpower: 7, Endurance: 6, Intelligence: 9,
			Beli: 200000, Bounty: 0, DevilFruitMastery: 1,
			ObservationHaki: 1, ArmamentHaki: 1,
		},
	},
}

// InitialStats is the stat block of a player who has not started yet.
func InitialStats() PlayerStats {
	return pathTemplates[PathPirate].Stats
}

// Begin seeds loadout, inventory and stats for a new adventure from the
// chosen path's template.
func Begin(setup CharacterSetup) (GameState, error) {
	if err := setup.Validate(); err != nil {
		return GameState{}, err
	}
	tmpl := pathTemplates[setup.Path]

	var fruit *Item
	if setup.HasDevilFruit() {
		df := *setup.DevilFruit
		fruit = &df
	}
	loadout := PlayerLoadout{
		Name:              strings.TrimSpace(setup.Name),
		Outfit:            setup.Outfit,
		Weapon:            setup.Weapon,
		Title:             tmpl.Title,
		EquippedAbilities: []Ability{},
		Gender:            setup.Gender,
		Faction:           tmpl.Faction,
		DevilFruit:        fruit,
	}

	state := NewGameState()
	state.Stats = tmpl.Stats
	state.Loadout = &loadout
	state.Inventory = PlayerInventory{
		Outfits:   []Item{setup.Outfit},
		Weapons:   []Item{setup.Weapon},
		Titles:    []string{tmpl.Title},
		Abilities: []Ability{},
	}
	state.View = ViewGame
	return state, nil
}

type CustomizationOptions struct {
	Outfits     []Item      `json:"outfits"`
	Weapons     []Item      `json:"weapons"`
	DevilFruits []Item      `json:"devilFruits"`
	Paths       []Path      `json:"paths"`
	Origins     []OriginSea `json:"origins"`
	Genders     []Gender    `json:"genders"`
}

// Options returns the static customization catalog. The caller owns the
// returned slices.
func Options() CustomizationOptions {
	return CustomizationOptions{
		Outfits: []Item{
			{Name: "White Shirt and Cape", Description: "A crisp white shirt and a flowing cape, the attire of a confident and formidable leader."},
			{Name: "Pirate Captain's Coat", Description: "A long, imposing coat and a matching captain's hat. A symbol of command on the high seas."},
			{Name: "Marine Coat and Suit", Description: "A pristine white suit with a long Marine coat bearing the emblem of 'Justice'."},
			{Name: "Wano Country Kimono", Description: "An elegant, traditional kimono from an isolated, powerful land."},
			{Name: "Revolutionary's Cloak", Description: "A dark, hooded cloak that conceals one's identity."},
			{Name: "Classic Suit and Coat", Description: "A sharp, tailored suit paired with a long coat."},
		},
		Weapons: []Item{
			{Name: "None", Description: "Rely on your own strength and martial prowess.", Grade: "Ungraded"},
			{Name: "Nodachi", Description: "A greatsword with a long, sweeping blade.", Grade: "Ungraded"},
			{Name: "Flintlock Pistols", Description: "A pair of reliable, single-shot pistols.", Grade: "Ungraded"},
			{Name: "Saber", Description: "A curved blade favored by naval officers and pirates alike.", Grade: "Ungraded"},
			{Name: "Katana", Description: "A classic single-edged sword from Wano.", Grade: "Ungraded"},
			{Name: "Clima-Tact Prototype", Description: "A three-sectioned staff capable of creating small weather phenomena.", Grade: "Ungraded"},
			{Name: "Bisento", Description: "A massive polearm with a heavy, curved blade.", Grade: "Ungraded"},
			{Name: "Clubbed Mace", Description: "A heavy, brutal weapon that delivers crushing blows.", Grade: "Ungraded"},
		},
		DevilFruits: []Item{
			{Name: NoDevilFruit, Description: "You are a strong swimmer who relies on pure skill and training."},
			{Name: "Gravity-Gravity Fruit", Description: "Manipulate gravitational forces."},
			{Name: "Light-Light Fruit", Description: "Create, control, and transform into light."},
			{Name: "Lightning-Lightning Fruit", Description: "Create, control, and transform into lightning."},
			{Name: "Quake-Quake Fruit", Description: "Generate massive vibrations through any medium."},
			{Name: "Cold-Cold Fruit", Description: "Create, control, and transform into ice."},
			{Name: "Flame-Flame Fruit", Description: "Create, control, and transform into fire."},
			{Name: "Ope-Ope Fruit", Description: "Create a 'Room' to spatially rearrange objects."},
			{Name: "Luck-Luck Fruit", Description: "A hyper-developed sense of intuition."},
			{Name: "Dragon-Dragon Fruit, Model: Azure Dragon", Description: "Become an Eastern Dragon with flight and elemental breath."},
		},
		Paths:   []Path{PathPirate, PathMarine, PathRevolutionary, PathCelestialDragon, PathSwordsman, PathCipherPol},
		Origins: []OriginSea{OriginEastBlue, OriginWestBlue, OriginNorthBlue, OriginSouthBlue},
		Genders: []Gender{GenderMale, GenderFemale, GenderNonBinary},
	}
}
