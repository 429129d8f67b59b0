package adventure

const (
	NoticeTreasureTitle = "Treasure Acquired!"
	NoticeVictoryTitle  = "EPIC VICTORY!"

	treasureDisplayMillis = 5000
	victoryDisplayMillis  = 7000
)

// Notice is one timed, user-facing notification. Either Message or
// Title+Items is set.
type Notice struct {
	Title         string   `json:"title,omitempty"`
	Message       string   `json:"message,omitempty"`
	Items         []string `json:"items,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	DisplayMillis int      `json:"displayMillis,omitempty"`
}

func (n Notice) Empty() bool {
	return n.Title == "" && n.Message == "" && len(n.Items) == 0 && len(n.Warnings) == 0
}

func Message(text string, displayMillis int) Notice {
	return Notice{Message: text, DisplayMillis: displayMillis}
}
