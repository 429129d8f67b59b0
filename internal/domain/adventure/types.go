package adventure

type StatKey string

const (
	StatAgility           StatKey = "Agility"
	StatStrength          StatKey = "Strength"
	StatConquerorsHaki    StatKey = "ConquerorsHaki"
	StatHakiControl       StatKey = "HakiControl"
	StatWillpower         StatKey = "Willpower"
	StatEndurance         StatKey = "Endurance"
	StatIntelligence      StatKey = "Intelligence"
	StatBeli              StatKey = "Beli"
	StatBounty            StatKey = "Bounty"
	StatDevilFruitMastery StatKey = "DevilFruitMastery"
	StatObservationHaki   StatKey = "ObservationHaki"
	StatArmamentHaki      StatKey = "ArmamentHaki"
)

// PlayerStats holds the ten attributes (each within [MinAttribute, MaxAttribute])
// and the two currency-like counters.
type PlayerStats struct {
	Agility           int `json:"Agility"`
	Strength          int `json:"Strength"`
	ConquerorsHaki    int `json:"ConquerorsHaki"`
	HakiControl       int `json:"HakiControl"`
	Willpower         int `json:"Willpower"`
	Endurance         int `json:"Endurance"`
	Intelligence      int `json:"Intelligence"`
	Beli              int `json:"Beli"`
	Bounty            int `json:"Bounty"`
	DevilFruitMastery int `json:"DevilFruitMastery"`
	ObservationHaki   int `json:"ObservationHaki"`
	ArmamentHaki      int `json:"ArmamentHaki"`
}

// StatChanges is the sparse delta map sent by the narrative backend.
// Bounty is a replacement value, every other key is a delta.
type StatChanges map[StatKey]int

type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Grade       string `json:"grade,omitempty"`
}

type AbilityType string

const (
	AbilityDevilFruit    AbilityType = "Devil Fruit"
	AbilityHaki          AbilityType = "Haki"
	AbilityFightingStyle AbilityType = "Fighting Style"
	AbilitySwordsmanship AbilityType = "Swordsmanship"
	AbilityAwakening     AbilityType = "Awakening"
)

type Ability struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Grade       string      `json:"grade,omitempty"`
	Type        AbilityType `json:"type"`
}

type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-binary"
)

type PlayerLoadout struct {
	Name              string    `json:"name"`
	Outfit            Item      `json:"outfit"`
	Weapon            Item      `json:"weapon"`
	Title             string    `json:"title"`
	EquippedAbilities []Ability `json:"equippedAbilities"`
	Gender            Gender    `json:"gender"`
	Faction           string    `json:"faction"`
	DevilFruit        *Item     `json:"devilFruit"`
}

type PlayerInventory struct {
	Outfits   []Item    `json:"outfits"`
	Weapons   []Item    `json:"weapons"`
	Titles    []string  `json:"titles"`
	Abilities []Ability `json:"abilities"`
}

type Relationship string

const (
	RelationshipNakama    Relationship = "Nakama"
	RelationshipAlly      Relationship = "Ally"
	RelationshipRival     Relationship = "Rival"
	RelationshipEnemy     Relationship = "Enemy"
	RelationshipCaptain   Relationship = "Captain"
	RelationshipFirstMate Relationship = "First Mate"
)

type CrewMember struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Relationship Relationship `json:"relationship"`
}

// MajorEncounter is an active boss fight. It is echoed to the backend on every
// turn until a payload ends it.
type MajorEncounter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Choice struct {
	ID              int    `json:"id"`
	Text            string `json:"text"`
	Effect          string `json:"effect,omitempty"`
	PotentialReward string `json:"potentialReward,omitempty"`
}

type ChoiceStatus string

const ChoiceUnavailable ChoiceStatus = "unavailable"

type DisplayChoice struct {
	Choice
	Status ChoiceStatus `json:"status,omitempty"`
}

type Scene struct {
	Story   string          `json:"story"`
	Choices []DisplayChoice `json:"choices"`
}

type ItemSlot string

const (
	SlotOutfit ItemSlot = "outfit"
	SlotWeapon ItemSlot = "weapon"
)

type NewItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Grade       string   `json:"grade,omitempty"`
	Type        ItemSlot `json:"type"`
}

func (n NewItem) Item() Item {
	return Item{Name: n.Name, Description: n.Description, Grade: n.Grade}
}

// ScenePayload is one backend response. All reward fields are optional and
// may appear together.
type ScenePayload struct {
	Story                string          `json:"story"`
	Choices              []Choice        `json:"choices"`
	StatChanges          StatChanges     `json:"statChanges"`
	ReputationAnalysis   string          `json:"reputationAnalysis"`
	NewItem              *NewItem        `json:"newItem,omitempty"`
	NewAbility           *Ability        `json:"newAbility,omitempty"`
	NewTitle             string          `json:"newTitle,omitempty"`
	NewFaction           string          `json:"newFaction,omitempty"`
	MajorEncounter       *MajorEncounter `json:"majorEncounter,omitempty"`
	NewCrewMembers       []CrewMember    `json:"newCrewMembers,omitempty"`
	CrewUpdates          []CrewUpdate    `json:"crewUpdates,omitempty"`
	ItemUpdates          []ItemUpdate    `json:"itemUpdates,omitempty"`
	AbilityUpdates       []AbilityUpdate `json:"abilityUpdates,omitempty"`
	IsMajorEncounterOver bool            `json:"isMajorEncounterOver,omitempty"`
}

type View string

const (
	ViewCustomization View = "customization"
	ViewGame          View = "game"
	ViewStats         View = "stats"
)
