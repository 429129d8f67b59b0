package adventure

const (
	FactionMarines         = "Marines"
	FactionWorldGovernment = "World Government"
	FactionRevolutionary   = "Revolutionary Army"
	FactionUnaffiliated    = "Unaffiliated"
)

// IsWorldGovernmentAligned reports whether a faction is barred from ever
// accruing a bounty.
func IsWorldGovernmentAligned(faction string) bool {
	return faction == FactionMarines || faction == FactionWorldGovernment
}

// withoutBounty returns changes minus the Bounty key. The input map is not
// modified.
func withoutBounty(changes StatChanges) StatChanges {
	if _, ok := changes[StatBounty]; !ok {
		return changes
	}
	out := make(StatChanges, len(changes))
	for k, v := range changes {
		if k == StatBounty {
			continue
		}
		out[k] = v
	}
	return out
}
