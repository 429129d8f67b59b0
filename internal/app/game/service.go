package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// Service owns one Game per player. A Game's lock is never held across a
// narrative backend call; the queue's in-flight flag keeps turns exclusive.
type Service struct {
	Narrative  ports.NarrativeGateway
	Snapshots  ports.SnapshotStore
	Journal    ports.JournalRepository
	TxManager  ports.TxManager
	Metrics    ports.TurnMetrics
	Cache      ports.CachePurger
	Reconciler adventure.Reconciler
	Now        func() time.Time
	NewID      func() string

	mu    sync.Mutex
	games map[string]*Game
}

type Game struct {
	mu      sync.Mutex
	state   adventure.GameState
	queue   Queue
	session ports.NarrativeSession
	lastErr error
	// retired is set once Reset has swapped in a fresh game.
	retired bool

	// persist orders snapshot writes against Reset.
	persist sync.Mutex
}

func newGame() *Game {
	return &Game{state: adventure.NewGameState(), queue: NewQueue()}
}

func (s *Service) game(playerID string) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games == nil {
		s.games = map[string]*Game{}
	}
	g, ok := s.games[playerID]
	if !ok {
		g = newGame()
		s.games[playerID] = g
	}
	return g
}

// replace swaps in a fresh game for playerID and keeps its connectivity.
func (s *Service) replace(playerID string) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games == nil {
		s.games = map[string]*Game{}
	}
	fresh := newGame()
	if old, ok := s.games[playerID]; ok {
		old.mu.Lock()
		fresh.queue.online = old.queue.online
		old.retired = true
		old.mu.Unlock()
	}
	s.games[playerID] = fresh
	return fresh
}

func validPlayer(playerID string) error {
	if strings.TrimSpace(playerID) == "" {
		return ErrInvalidRequest
	}
	return nil
}

// status must be called with g.mu held.
func (g *Game) status(playerID string) Status {
	st := Status{
		PlayerID: playerID,
		Started:  g.state.Started(),
		State:    g.state.Clone(),
		Online:   g.queue.Online(),
		InFlight: g.queue.InFlight(),
		Pending:  g.queue.Pending(),
	}
	if g.lastErr != nil {
		st.LastError = g.lastErr.Error()
	}
	return st
}

func (s *Service) State(_ context.Context, playerID string) (Status, error) {
	if err := validPlayer(playerID); err != nil {
		return Status{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status(playerID), nil
}

func (s *Service) Options() adventure.CustomizationOptions {
	return adventure.Options()
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func (s *Service) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

func (s *Service) entry(playerID string, kind adventure.JournalKind, storyKey int, msg string) adventure.JournalEntry {
	return adventure.JournalEntry{
		ID:         s.newID(),
		PlayerID:   playerID,
		Kind:       kind,
		StoryKey:   storyKey,
		Message:    msg,
		OccurredAt: s.now(),
	}
}

func (s *Service) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.TxManager == nil {
		return fn(ctx)
	}
	return s.TxManager.RunInTx(ctx, fn)
}

// record appends journal entries for a finished turn. The turn already
// happened, so a journal failure is logged and not returned.
func (s *Service) record(ctx context.Context, playerID string, entries []adventure.JournalEntry) {
	if s.Journal == nil || len(entries) == 0 {
		return
	}
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		return s.Journal.Append(txCtx, playerID, entries)
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "journal append failed player=%s entries=%d err=%v", playerID, len(entries), err)
	}
}

func (s *Service) recordSuccess(outcome string) {
	if s.Metrics != nil {
		s.Metrics.RecordSuccess(outcome)
	}
}

func (s *Service) recordFailure(err error) {
	if s.Metrics == nil {
		return
	}
	if errors.Is(err, ErrActionInProgress) {
		s.Metrics.RecordConflict()
		return
	}
	s.Metrics.RecordFailure(failureKind(err))
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ports.ErrQuota):
		return "quota"
	case errors.Is(err, ports.ErrFormat):
		return "format"
	case errors.Is(err, ports.ErrTransport):
		return "transport"
	default:
		return "internal"
	}
}
