package game

import "worldchronicles/internal/domain/adventure"

const (
	OutcomeStarted           = "started"
	OutcomeAdvanced          = "advanced"
	OutcomeQueued            = "queued"
	OutcomeChoiceUnavailable = "choice_unavailable"
	OutcomeRerolled          = "rerolled"
	OutcomeConnectivity      = "connectivity_updated"
)

const (
	noticeSaved       = "Log Pose Saved!"
	noticeLoaded      = "Log Pose Loaded!"
	noticeCorrupt     = "Log Pose corrupted. Starting new adventure."
	noticeOfflineRoll = "Cannot reroll choices while offline."
	noticeQueued      = "Offline. Action queued."
	noticeRerolling   = "The winds of fate shift..."
	noticeShortMillis = 2000
	noticeSaveMillis  = 2500
	noticeAlertMillis = 3000
)

// Status is the externally visible state of one player's game.
type Status struct {
	PlayerID  string              `json:"player_id"`
	Started   bool                `json:"started"`
	State     adventure.GameState `json:"state"`
	Online    bool                `json:"online"`
	InFlight  bool                `json:"in_flight"`
	Pending   *PendingAction      `json:"pending,omitempty"`
	LastError string              `json:"last_error,omitempty"`
}

type TurnResult struct {
	Outcome string           `json:"outcome"`
	Notice  adventure.Notice `json:"notice"`
	Status  Status           `json:"status"`
}

type SaveResult struct {
	Saved  bool             `json:"saved"`
	Notice adventure.Notice `json:"notice"`
}

type LoadResult struct {
	Notice adventure.Notice `json:"notice"`
	Status Status           `json:"status"`
}
