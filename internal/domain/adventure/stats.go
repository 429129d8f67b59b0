package adventure

import "errors"

const (
	MinAttribute = 1
	MaxAttribute = 20
)

var ErrUnknownStat = errors.New("unknown stat")

var AllStatKeys = []StatKey{
	StatAgility, StatStrength, StatConquerorsHaki, StatHakiControl,
	StatWillpower, StatEndurance, StatIntelligence, StatBeli, StatBounty,
	StatDevilFruitMastery, StatObservationHaki, StatArmamentHaki,
}

func (k StatKey) IsCurrency() bool {
	return k == StatBeli || k == StatBounty
}

func (k StatKey) Valid() bool {
	for _, known := range AllStatKeys {
		if k == known {
			return true
		}
	}
	return false
}

func (s *PlayerStats) field(k StatKey) *int {
	switch k {
	case StatAgility:
		return &s.Agility
	case StatStrength:
		return &s.Strength
	case StatConquerorsHaki:
		return &s.ConquerorsHaki
	case StatHakiControl:
		return &s.HakiControl
	case StatWillpower:
		return &s.Willpower
	case StatEndurance:
		return &s.Endurance
	case StatIntelligence:
		return &s.Intelligence
	case StatBeli:
		return &s.Beli
	case StatBounty:
		return &s.Bounty
	case StatDevilFruitMastery:
		return &s.DevilFruitMastery
	case StatObservationHaki:
		return &s.ObservationHaki
	case StatArmamentHaki:
		return &s.ArmamentHaki
	default:
		return nil
	}
}

// Get returns the value of k, or false when k is not a known stat.
func (s PlayerStats) Get(k StatKey) (int, bool) {
	p := s.field(k)
	if p == nil {
		return 0, false
	}
	return *p, true
}

func clampAttribute(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}

// ApplyStatChanges merges a backend delta map. Attributes add and clamp,
// Beli adds without a clamp, Bounty replaces the current value only when the
// new value is positive. Unknown keys are ignored.
func (s PlayerStats) ApplyStatChanges(changes StatChanges) PlayerStats {
	out := s
	for k, v := range changes {
		p := out.field(k)
		if p == nil {
			continue
		}
		switch k {
		case StatBeli:
			*p += v
		case StatBounty:
			if v > 0 {
				*p = v
			}
		default:
			*p = clampAttribute(*p + v)
		}
	}
	return out
}

// Adjust is the manual stat editor: attributes stay within [1,20] and the
// currencies never drop below zero.
func (s PlayerStats) Adjust(k StatKey, change int) (PlayerStats, error) {
	out := s
	p := out.field(k)
	if p == nil {
		return s, ErrUnknownStat
	}
	v := *p + change
	if k.IsCurrency() {
		if v < 0 {
			v = 0
		}
	} else {
		v = clampAttribute(v)
	}
	*p = v
	return out, nil
}
