package journal

import (
	"context"
	"errors"
	"strings"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var ErrInvalidRequest = errors.New("invalid journal request")

type UseCase struct {
	Entries ports.JournalRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	entries, err := u.Entries.ListByPlayer(ctx, req.PlayerID, limit)
	if err != nil {
		return Response{}, err
	}
	entries = filter(entries, req)
	return Response{Entries: entries, Summary: summarize(entries)}, nil
}

func filter(entries []adventure.JournalEntry, req Request) []adventure.JournalEntry {
	out := make([]adventure.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if req.Kind != "" && e.Kind != req.Kind {
			continue
		}
		ts := e.OccurredAt.Unix()
		if req.OccurredFrom > 0 && ts < req.OccurredFrom {
			continue
		}
		if req.OccurredTo > 0 && ts > req.OccurredTo {
			continue
		}
		out = append(out, e)
	}
	return out
}

func summarize(entries []adventure.JournalEntry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind {
		case adventure.JournalTurn:
			s.Turns++
		case adventure.JournalReward:
			s.Rewards++
		case adventure.JournalWarning:
			s.Warnings++
		case adventure.JournalSaved:
			s.Saves++
		}
		if e.StoryKey > s.LatestStoryKey {
			s.LatestStoryKey = e.StoryKey
		}
	}
	return s
}
