package game

import (
	"context"
	"errors"

	"worldchronicles/internal/domain/adventure"
)

func (s *Service) EquipItem(ctx context.Context, playerID string, slot adventure.ItemSlot, name string) (Status, error) {
	return s.mutate(ctx, playerID, func(st adventure.GameState) (adventure.GameState, error) {
		return st.EquipItem(slot, name)
	})
}

func (s *Service) EquipTitle(ctx context.Context, playerID, title string) (Status, error) {
	return s.mutate(ctx, playerID, func(st adventure.GameState) (adventure.GameState, error) {
		return st.EquipTitle(title)
	})
}

func (s *Service) ToggleAbility(ctx context.Context, playerID, name string) (Status, error) {
	return s.mutate(ctx, playerID, func(st adventure.GameState) (adventure.GameState, error) {
		return st.ToggleAbility(name)
	})
}

// AdjustStat applies a manual edit from the stats page.
func (s *Service) AdjustStat(ctx context.Context, playerID string, stat adventure.StatKey, change int) (Status, error) {
	return s.mutate(ctx, playerID, func(st adventure.GameState) (adventure.GameState, error) {
		stats, err := st.Stats.Adjust(stat, change)
		if err != nil {
			return st, errors.Join(ErrInvalidRequest, err)
		}
		st.Stats = stats
		return st, nil
	})
}

// SetView switches between the story and the stats page.
func (s *Service) SetView(ctx context.Context, playerID string, view adventure.View) (Status, error) {
	if view != adventure.ViewGame && view != adventure.ViewStats {
		return Status{}, ErrInvalidRequest
	}
	return s.mutate(ctx, playerID, func(st adventure.GameState) (adventure.GameState, error) {
		st.View = view
		return st, nil
	})
}

func (s *Service) mutate(_ context.Context, playerID string, fn func(adventure.GameState) (adventure.GameState, error)) (Status, error) {
	if err := validPlayer(playerID); err != nil {
		return Status{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.state.Started() {
		return Status{}, ErrNotStarted
	}
	next, err := fn(g.state)
	if err != nil {
		return Status{}, err
	}
	g.state = next
	return g.status(playerID), nil
}
