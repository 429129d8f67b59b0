package adventure

import "time"

type JournalKind string

const (
	JournalStarted JournalKind = "adventure_started"
	JournalTurn    JournalKind = "turn_advanced"
	JournalReward  JournalKind = "reward"
	JournalWarning JournalKind = "warning"
	JournalSaved   JournalKind = "game_saved"
	JournalLoaded  JournalKind = "game_loaded"
)

// JournalEntry is one line of a player's adventure log.
type JournalEntry struct {
	ID         string      `json:"id"`
	PlayerID   string      `json:"player_id"`
	Kind       JournalKind `json:"kind"`
	StoryKey   int         `json:"story_key"`
	Message    string      `json:"message"`
	OccurredAt time.Time   `json:"occurred_at"`
}
