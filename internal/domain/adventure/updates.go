package adventure

// ItemUpdate evolves an owned outfit or weapon matched by Name. A nil field
// keeps the current value; Name is the match key and is never rewritten.
type ItemUpdate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Grade       *string `json:"grade,omitempty"`
}

func (u ItemUpdate) apply(it Item) Item {
	if u.Description != nil {
		it.Description = *u.Description
	}
	if u.Grade != nil {
		it.Grade = *u.Grade
	}
	return it
}

// AbilityUpdate evolves an owned ability matched by Name.
type AbilityUpdate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (u AbilityUpdate) apply(a Ability) Ability {
	if u.Description != nil {
		a.Description = *u.Description
	}
	return a
}

// CrewUpdate changes a crew member's relationship. An empty Relationship keeps
// the current one.
type CrewUpdate struct {
	Name         string       `json:"name"`
	Relationship Relationship `json:"relationship"`
	Description  *string      `json:"description,omitempty"`
}

func (u CrewUpdate) apply(m CrewMember) CrewMember {
	if u.Relationship != "" {
		m.Relationship = u.Relationship
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	return m
}
