package journal

import "worldchronicles/internal/domain/adventure"

type Request struct {
	PlayerID     string
	Limit        int
	Kind         adventure.JournalKind
	OccurredFrom int64
	OccurredTo   int64
}

type Summary struct {
	Turns          int `json:"turns"`
	Rewards        int `json:"rewards"`
	Warnings       int `json:"warnings"`
	Saves          int `json:"saves"`
	LatestStoryKey int `json:"latest_story_key"`
}

type Response struct {
	Entries []adventure.JournalEntry `json:"entries"`
	Summary Summary                  `json:"summary"`
}
