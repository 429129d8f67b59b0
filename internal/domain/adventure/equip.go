package adventure

import "errors"

var ErrNotOwned = errors.New("not owned")

// EquipItem puts an owned outfit or weapon into its loadout slot.
func (g GameState) EquipItem(slot ItemSlot, name string) (GameState, error) {
	if g.Loadout == nil {
		return g, ErrNotOwned
	}
	out := g.Clone()
	switch slot {
	case SlotOutfit:
		i := indexItem(out.Inventory.Outfits, name)
		if i < 0 {
			return g, ErrNotOwned
		}
		out.Loadout.Outfit = out.Inventory.Outfits[i]
	case SlotWeapon:
		i := indexItem(out.Inventory.Weapons, name)
		if i < 0 {
			return g, ErrNotOwned
		}
		out.Loadout.Weapon = out.Inventory.Weapons[i]
	default:
		return g, ErrNotOwned
	}
	return out, nil
}

func (g GameState) EquipTitle(title string) (GameState, error) {
	if g.Loadout == nil || !containsString(g.Inventory.Titles, title) {
		return g, ErrNotOwned
	}
	out := g.Clone()
	out.Loadout.Title = title
	return out, nil
}

// ToggleAbility equips an owned ability, or unequips it when it is already
// equipped.
func (g GameState) ToggleAbility(name string) (GameState, error) {
	if g.Loadout == nil {
		return g, ErrNotOwned
	}
	i := indexAbility(g.Inventory.Abilities, name)
	if i < 0 {
		return g, ErrNotOwned
	}
	out := g.Clone()
	if j := indexAbility(out.Loadout.EquippedAbilities, name); j >= 0 {
		out.Loadout.EquippedAbilities = append(out.Loadout.EquippedAbilities[:j], out.Loadout.EquippedAbilities[j+1:]...)
		return out, nil
	}
	out.Loadout.EquippedAbilities = append(out.Loadout.EquippedAbilities, out.Inventory.Abilities[i])
	return out, nil
}

// EquippedOwned reports whether every equipped item, title and ability is
// present in the inventory.
func (g GameState) EquippedOwned() bool {
	if g.Loadout == nil {
		return true
	}
	l := g.Loadout
	if indexItem(g.Inventory.Outfits, l.Outfit.Name) < 0 || indexItem(g.Inventory.Weapons, l.Weapon.Name) < 0 {
		return false
	}
	if !containsString(g.Inventory.Titles, l.Title) {
		return false
	}
	for _, a := range l.EquippedAbilities {
		if indexAbility(g.Inventory.Abilities, a.Name) < 0 {
			return false
		}
	}
	return true
}
