package game

import (
	"context"
	"errors"
	"fmt"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Save writes the current game under the well-known save key. Nothing is
// written before the adventure starts or while on the setup screen.
func (s *Service) Save(ctx context.Context, playerID string) (SaveResult, error) {
	if err := validPlayer(playerID); err != nil {
		return SaveResult{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	if !g.state.Started() || g.state.View == adventure.ViewCustomization {
		g.mu.Unlock()
		return SaveResult{Saved: false}, nil
	}
	raw, err := adventure.EncodeSnapshot(g.state)
	storyKey := g.state.StoryKey
	g.mu.Unlock()
	if err != nil {
		return SaveResult{}, fmt.Errorf("encode snapshot: %w", err)
	}

	g.persist.Lock()
	defer g.persist.Unlock()
	g.mu.Lock()
	retired := g.retired
	g.mu.Unlock()
	if retired {
		// Reset ran after the snapshot was taken.
		return SaveResult{Saved: false}, nil
	}

	err = s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.Snapshots.Put(txCtx, playerID, adventure.SaveKey, raw); err != nil {
			return err
		}
		if s.Journal == nil {
			return nil
		}
		return s.Journal.Append(txCtx, playerID, []adventure.JournalEntry{
			s.entry(playerID, adventure.JournalSaved, storyKey, noticeSaved),
		})
	})
	if err != nil {
		hlog.CtxErrorf(ctx, "save failed player=%s err=%v", playerID, err)
		return SaveResult{}, err
	}
	return SaveResult{Saved: true, Notice: adventure.Message(noticeSaved, noticeSaveMillis)}, nil
}

// Load restores the saved game. A corrupt snapshot is deleted, the game is
// reset to first-run defaults and a *SaveCorruptError is returned.
func (s *Service) Load(ctx context.Context, playerID string) (LoadResult, error) {
	if err := validPlayer(playerID); err != nil {
		return LoadResult{}, err
	}
	raw, err := s.Snapshots.Get(ctx, playerID, adventure.SaveKey)
	if err != nil {
		return LoadResult{}, err
	}

	g := s.game(playerID)
	g.mu.Lock()
	if g.queue.InFlight() {
		g.mu.Unlock()
		return LoadResult{}, ErrActionInProgress
	}

	state, decodeErr := adventure.DecodeSnapshot(raw)
	if decodeErr != nil {
		g.state = adventure.NewGameState()
		g.session = nil
		g.lastErr = nil
		g.queue.Clear()
		st := g.status(playerID)
		g.mu.Unlock()

		hlog.CtxWarnf(ctx, "discarding corrupt save player=%s err=%v", playerID, decodeErr)
		if err := s.Snapshots.Delete(ctx, playerID, adventure.SaveKey); err != nil && !errors.Is(err, ports.ErrNotFound) {
			hlog.CtxErrorf(ctx, "delete corrupt save failed player=%s err=%v", playerID, err)
		}
		notice := adventure.Message(noticeCorrupt, noticeAlertMillis)
		return LoadResult{Notice: notice, Status: st}, &SaveCorruptError{Cause: decodeErr, Notice: notice}
	}

	g.state = state
	g.session = nil
	g.lastErr = nil
	g.queue.Clear()
	st := g.status(playerID)
	g.mu.Unlock()

	s.record(ctx, playerID, []adventure.JournalEntry{
		s.entry(playerID, adventure.JournalLoaded, state.StoryKey, noticeLoaded),
	})
	return LoadResult{Notice: adventure.Message(noticeLoaded, noticeSaveMillis), Status: st}, nil
}

func (s *Service) HasSave(ctx context.Context, playerID string) (bool, error) {
	if err := validPlayer(playerID); err != nil {
		return false, err
	}
	return s.Snapshots.Exists(ctx, playerID, adventure.SaveKey)
}

// Reset deletes the save, discards the in-memory game and asks the asset
// cache to drop stale backend responses.
func (s *Service) Reset(ctx context.Context, playerID string) (Status, error) {
	if err := validPlayer(playerID); err != nil {
		return Status{}, err
	}
	old := s.game(playerID)
	old.persist.Lock()
	if err := s.Snapshots.Delete(ctx, playerID, adventure.SaveKey); err != nil && !errors.Is(err, ports.ErrNotFound) {
		old.persist.Unlock()
		return Status{}, err
	}
	g := s.replace(playerID)
	old.persist.Unlock()
	if s.Cache != nil {
		if err := s.Cache.Purge(ctx); err != nil {
			hlog.CtxWarnf(ctx, "cache purge failed player=%s err=%v", playerID, err)
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status(playerID), nil
}
