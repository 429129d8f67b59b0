package adventure

import "fmt"

// TurnState is the part of the game a turn payload can change.
type TurnState struct {
	Stats     PlayerStats
	Loadout   PlayerLoadout
	Inventory PlayerInventory
	Crew      []CrewMember
	Encounter *MajorEncounter
}

// Reconciler merges backend payloads into player state. It never fails:
// unmatched updates and duplicate acquisitions are no-ops.
type Reconciler struct {
	// RejectSecondDevilFruit drops a Devil Fruit ability when the player
	// already has one. When false the ability is kept and a warning is
	// attached to the notice.
	RejectSecondDevilFruit bool
}

// Reconcile returns the next state and the reward notice for one turn. The
// input state is never modified, so a caller that discards the result keeps
// its prior state intact.
func (r Reconciler) Reconcile(cur TurnState, p ScenePayload) (TurnState, Notice) {
	next := cur.Clone()
	var messages, warnings []string

	victory := p.IsMajorEncounterOver && cur.Encounter != nil
	switch {
	case victory:
		messages = append(messages, fmt.Sprintf("VICTORY! You defeated %s!", cur.Encounter.Name))
		next.Encounter = nil
	case p.MajorEncounter != nil:
		enc := *p.MajorEncounter
		next.Encounter = &enc
	}

	if p.NewFaction != "" && p.NewFaction != next.Loadout.Faction {
		next.Loadout.Faction = p.NewFaction
		messages = append(messages, "Faction Change: "+p.NewFaction)
	}

	changes := p.StatChanges
	if IsWorldGovernmentAligned(next.Loadout.Faction) {
		changes = withoutBounty(changes)
	}

	if p.NewTitle != "" && !containsString(next.Inventory.Titles, p.NewTitle) {
		next.Inventory.Titles = append(next.Inventory.Titles, p.NewTitle)
		next.Loadout.Title = p.NewTitle
		messages = append(messages, "New Title: "+p.NewTitle)
	}

	if p.NewItem != nil {
		item := p.NewItem.Item()
		switch p.NewItem.Type {
		case SlotWeapon:
			if indexItem(next.Inventory.Weapons, item.Name) < 0 {
				next.Inventory.Weapons = append(next.Inventory.Weapons, item)
				next.Loadout.Weapon = item
				messages = append(messages, "New Item: "+item.Name)
			}
		case SlotOutfit:
			if indexItem(next.Inventory.Outfits, item.Name) < 0 {
				next.Inventory.Outfits = append(next.Inventory.Outfits, item)
				next.Loadout.Outfit = item
				messages = append(messages, "New Item: "+item.Name)
			}
		}
	}

	if p.NewAbility != nil && indexAbility(next.Inventory.Abilities, p.NewAbility.Name) < 0 {
		ability := *p.NewAbility
		conflict := ability.Type == AbilityDevilFruit && next.hasDevilFruit()
		switch {
		case conflict && r.RejectSecondDevilFruit:
			warnings = append(warnings, "Devil Fruit rejected: "+ability.Name)
		default:
			if conflict {
				warnings = append(warnings, "Second Devil Fruit acquired: "+ability.Name)
			}
			next.Inventory.Abilities = append(next.Inventory.Abilities, ability)
			messages = append(messages, "New Ability: "+ability.Name)
		}
	}

	for _, u := range p.ItemUpdates {
		if next.evolveItem(u) {
			messages = append(messages, fmt.Sprintf("Evolved: %s!", u.Name))
		}
	}

	for _, u := range p.AbilityUpdates {
		if next.evolveAbility(u) {
			messages = append(messages, fmt.Sprintf("Evolved: %s!", u.Name))
		}
	}

	next.Crew = append(next.Crew, p.NewCrewMembers...)
	// Each member takes the first update naming it.
	for i := range next.Crew {
		for _, u := range p.CrewUpdates {
			if u.Name == next.Crew[i].Name {
				next.Crew[i] = u.apply(next.Crew[i])
				break
			}
		}
	}

	next.Stats = next.Stats.ApplyStatChanges(changes)

	return next, batchNotice(messages, warnings, victory)
}

// ApplyOpening merges the first payload of a new adventure. Only stats,
// encounter and a new title apply at this point; the bounty safeguard uses
// the starting faction.
func (r Reconciler) ApplyOpening(cur TurnState, p ScenePayload) TurnState {
	next := cur.Clone()
	changes := p.StatChanges
	if IsWorldGovernmentAligned(next.Loadout.Faction) {
		changes = withoutBounty(changes)
	}
	next.Stats = next.Stats.ApplyStatChanges(changes)
	next.Encounter = nil
	if p.MajorEncounter != nil {
		enc := *p.MajorEncounter
		next.Encounter = &enc
	}
	if p.NewTitle != "" && !containsString(next.Inventory.Titles, p.NewTitle) {
		next.Inventory.Titles = append(next.Inventory.Titles, p.NewTitle)
	}
	return next
}

func batchNotice(messages, warnings []string, victory bool) Notice {
	if len(messages) == 0 && len(warnings) == 0 {
		return Notice{}
	}
	if victory {
		return Notice{Title: NoticeVictoryTitle, Items: messages, Warnings: warnings, DisplayMillis: victoryDisplayMillis}
	}
	return Notice{Title: NoticeTreasureTitle, Items: messages, Warnings: warnings, DisplayMillis: treasureDisplayMillis}
}

func (s *TurnState) hasDevilFruit() bool {
	if s.Loadout.DevilFruit != nil && s.Loadout.DevilFruit.Name != "" && s.Loadout.DevilFruit.Name != NoDevilFruit {
		return true
	}
	for _, a := range s.Inventory.Abilities {
		if a.Type == AbilityDevilFruit {
			return true
		}
	}
	return false
}

// evolveItem looks in outfits first, then weapons. The first match wins.
func (s *TurnState) evolveItem(u ItemUpdate) bool {
	if i := indexItem(s.Inventory.Outfits, u.Name); i >= 0 {
		s.Inventory.Outfits[i] = u.apply(s.Inventory.Outfits[i])
		if s.Loadout.Outfit.Name == u.Name {
			s.Loadout.Outfit = u.apply(s.Loadout.Outfit)
		}
		return true
	}
	if i := indexItem(s.Inventory.Weapons, u.Name); i >= 0 {
		s.Inventory.Weapons[i] = u.apply(s.Inventory.Weapons[i])
		if s.Loadout.Weapon.Name == u.Name {
			s.Loadout.Weapon = u.apply(s.Loadout.Weapon)
		}
		return true
	}
	return false
}

func (s *TurnState) evolveAbility(u AbilityUpdate) bool {
	i := indexAbility(s.Inventory.Abilities, u.Name)
	if i < 0 {
		return false
	}
	s.Inventory.Abilities[i] = u.apply(s.Inventory.Abilities[i])
	if j := indexAbility(s.Loadout.EquippedAbilities, u.Name); j >= 0 {
		s.Loadout.EquippedAbilities[j] = u.apply(s.Loadout.EquippedAbilities[j])
	}
	return true
}

// Clone deep-copies every collection so the copy can be mutated freely.
func (s TurnState) Clone() TurnState {
	out := s
	out.Loadout = s.Loadout.Clone()
	out.Inventory = s.Inventory.Clone()
	out.Crew = cloneSlice(s.Crew)
	if s.Encounter != nil {
		enc := *s.Encounter
		out.Encounter = &enc
	}
	return out
}

func (l PlayerLoadout) Clone() PlayerLoadout {
	out := l
	out.EquippedAbilities = cloneSlice(l.EquippedAbilities)
	if l.DevilFruit != nil {
		df := *l.DevilFruit
		out.DevilFruit = &df
	}
	return out
}

func (inv PlayerInventory) Clone() PlayerInventory {
	return PlayerInventory{
		Outfits:   cloneSlice(inv.Outfits),
		Weapons:   cloneSlice(inv.Weapons),
		Titles:    cloneSlice(inv.Titles),
		Abilities: cloneSlice(inv.Abilities),
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func indexItem(items []Item, name string) int {
	for i, it := range items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

func indexAbility(abilities []Ability, name string) int {
	for i, a := range abilities {
		if a.Name == name {
			return i
		}
	}
	return -1
}
