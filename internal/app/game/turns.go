package game

import (
	"context"
	"errors"
	"fmt"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Begin starts a new adventure from a character setup. Any previous
// in-memory game for the player is replaced on success.
func (s *Service) Begin(ctx context.Context, playerID string, setup adventure.CharacterSetup) (TurnResult, error) {
	if err := validPlayer(playerID); err != nil {
		return TurnResult{}, err
	}
	state, err := adventure.Begin(setup)
	if err != nil {
		return TurnResult{}, errors.Join(ErrInvalidRequest, err)
	}

	g := s.game(playerID)
	g.mu.Lock()
	if err := g.queue.Acquire(); err != nil {
		g.mu.Unlock()
		s.recordFailure(err)
		return TurnResult{}, err
	}
	g.mu.Unlock()

	session, payload, err := s.Narrative.StartStory(ctx, setup)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.queue.Finish()
	if err != nil {
		g.lastErr = err
		s.recordFailure(err)
		hlog.CtxWarnf(ctx, "start story failed player=%s err=%v", playerID, err)
		return TurnResult{}, err
	}

	turn := s.Reconciler.ApplyOpening(state.Turn(), payload)
	state = state.WithTurn(turn)
	state.Scene = adventure.SceneFromPayload(payload)
	state.ReputationAnalysis = payload.ReputationAnalysis
	state.StoryKey++

	g.state = state
	g.session = session
	g.lastErr = nil

	if !g.retired {
		s.recordSuccess(OutcomeStarted)
		s.record(ctx, playerID, []adventure.JournalEntry{
			s.entry(playerID, adventure.JournalStarted, state.StoryKey,
				fmt.Sprintf("%s set sail as a %s from the %s.", state.Loadout.Name, setup.Path, setup.Origin)),
		})
	}
	hlog.CtxInfof(ctx, "adventure started player=%s path=%s session=%s", playerID, setup.Path, session.ID())
	return TurnResult{Outcome: OutcomeStarted, Status: g.status(playerID)}, nil
}

// Choose submits one of the current scene's choices.
func (s *Service) Choose(ctx context.Context, playerID string, choiceID int) (TurnResult, error) {
	if err := validPlayer(playerID); err != nil {
		return TurnResult{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	if !g.state.Started() || g.state.Scene == nil {
		g.mu.Unlock()
		return TurnResult{}, ErrNotStarted
	}
	choice, ok := g.state.Scene.FindChoice(choiceID)
	if !ok {
		g.mu.Unlock()
		return TurnResult{}, ErrUnknownChoice
	}
	if choice.Status == adventure.ChoiceUnavailable {
		g.mu.Unlock()
		return TurnResult{}, ErrChoiceUnavailable
	}
	return s.admit(ctx, playerID, g, choice.Choice)
}

// Retry resubmits the last choice whose turn failed.
func (s *Service) Retry(ctx context.Context, playerID string) (TurnResult, error) {
	if err := validPlayer(playerID); err != nil {
		return TurnResult{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	if !g.state.Started() {
		g.mu.Unlock()
		return TurnResult{}, ErrNotStarted
	}
	if g.state.LastAttemptedChoice == nil {
		g.mu.Unlock()
		return TurnResult{}, ErrNothingToRetry
	}
	choice := *g.state.LastAttemptedChoice
	if g.state.Scene != nil {
		if shown, ok := g.state.Scene.FindChoice(choice.ID); ok && shown.Status == adventure.ChoiceUnavailable {
			g.mu.Unlock()
			return TurnResult{}, ErrChoiceUnavailable
		}
	}
	return s.admit(ctx, playerID, g, choice)
}

// admit is entered with g.mu held and releases it.
func (s *Service) admit(ctx context.Context, playerID string, g *Game, choice adventure.Choice) (TurnResult, error) {
	adm, err := g.queue.Admit(PendingAction{Kind: PendingChoice, Choice: choice})
	if err != nil {
		g.mu.Unlock()
		s.recordFailure(err)
		return TurnResult{}, err
	}
	g.lastErr = nil
	if adm == AdmitQueued {
		st := g.status(playerID)
		g.mu.Unlock()
		hlog.CtxInfof(ctx, "choice queued while offline player=%s choice=%d", playerID, choice.ID)
		return TurnResult{
			Outcome: OutcomeQueued,
			Notice:  adventure.Message(noticeQueued, noticeShortMillis),
			Status:  st,
		}, nil
	}
	g.mu.Unlock()
	return s.runChoice(ctx, playerID, g, choice)
}

// runChoice is entered with the in-flight slot held and the lock released.
func (s *Service) runChoice(ctx context.Context, playerID string, g *Game, choice adventure.Choice) (TurnResult, error) {
	g.mu.Lock()
	c := choice
	g.state.LastAttemptedChoice = &c
	session := g.session
	snapshot := g.state.Clone()
	g.mu.Unlock()

	payload, session, err := s.advance(ctx, session, snapshot, choice)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.queue.Finish()
	if session != nil {
		g.session = session
	}

	if err != nil {
		s.recordFailure(err)
		if errors.Is(err, ports.ErrQuota) {
			if g.state.Scene != nil {
				g.state.Scene.MarkUnavailable(choice.ID)
			}
			// A blocked choice is not retried; the player picks another.
			g.state.LastAttemptedChoice = nil
			hlog.CtxWarnf(ctx, "choice unavailable player=%s choice=%d err=%v", playerID, choice.ID, err)
			return TurnResult{Outcome: OutcomeChoiceUnavailable, Status: g.status(playerID)}, nil
		}
		g.lastErr = err
		hlog.CtxWarnf(ctx, "advance story failed player=%s choice=%d err=%v", playerID, choice.ID, err)
		return TurnResult{}, err
	}

	turn, notice := s.Reconciler.Reconcile(g.state.Turn(), payload)
	next := g.state.WithTurn(turn)
	next.Scene = adventure.SceneFromPayload(payload)
	if payload.ReputationAnalysis != "" {
		next.ReputationAnalysis = payload.ReputationAnalysis
	}
	next.StoryKey++
	next.LastAttemptedChoice = nil
	g.state = next
	g.lastErr = nil

	if g.retired {
		hlog.CtxInfof(ctx, "turn finished after reset, not recorded player=%s choice=%d", playerID, choice.ID)
	} else {
		s.recordSuccess(OutcomeAdvanced)
		s.record(ctx, playerID, s.turnEntries(playerID, next.StoryKey, choice, notice))
	}
	return TurnResult{Outcome: OutcomeAdvanced, Notice: notice, Status: g.status(playerID)}, nil
}

// advance opens a resumed session first when the game was loaded from a
// snapshot and has none yet.
func (s *Service) advance(ctx context.Context, session ports.NarrativeSession, state adventure.GameState, choice adventure.Choice) (adventure.ScenePayload, ports.NarrativeSession, error) {
	if session == nil {
		req := ports.ResumeRequest{
			Stats:     state.Stats,
			Loadout:   *state.Loadout,
			Crew:      state.Crew,
			Encounter: state.MajorEncounter,
		}
		if state.Scene != nil {
			req.Story = state.Scene.Story
		}
		resumed, err := s.Narrative.ResumeStory(ctx, req)
		if err != nil {
			return adventure.ScenePayload{}, nil, err
		}
		session = resumed
	}
	payload, err := session.AdvanceStory(ctx, ports.AdvanceRequest{
		ChoiceText: choice.Text,
		Stats:      state.Stats,
		Loadout:    *state.Loadout,
		Inventory:  state.Inventory,
		Crew:       state.Crew,
		Encounter:  state.MajorEncounter,
	})
	return payload, session, err
}

func (s *Service) turnEntries(playerID string, storyKey int, choice adventure.Choice, notice adventure.Notice) []adventure.JournalEntry {
	entries := []adventure.JournalEntry{s.entry(playerID, adventure.JournalTurn, storyKey, choice.Text)}
	for _, item := range notice.Items {
		entries = append(entries, s.entry(playerID, adventure.JournalReward, storyKey, item))
	}
	for _, w := range notice.Warnings {
		entries = append(entries, s.entry(playerID, adventure.JournalWarning, storyKey, w))
	}
	return entries
}

// Reroll replaces the current choices and keeps the story text. It is
// online-only and never queued.
func (s *Service) Reroll(ctx context.Context, playerID string) (TurnResult, error) {
	if err := validPlayer(playerID); err != nil {
		return TurnResult{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	if !g.state.Started() || g.state.Scene == nil {
		g.mu.Unlock()
		return TurnResult{}, ErrNotStarted
	}
	if !g.queue.Online() {
		g.mu.Unlock()
		return TurnResult{}, &OfflineError{Notice: adventure.Message(noticeOfflineRoll, noticeAlertMillis)}
	}
	if err := g.queue.Acquire(); err != nil {
		g.mu.Unlock()
		s.recordFailure(err)
		return TurnResult{}, err
	}
	req := ports.RegenerateRequest{
		StoryText: g.state.Scene.Story,
		Stats:     g.state.Stats,
		Loadout:   g.state.Loadout.Clone(),
		Inventory: g.state.Inventory.Clone(),
		Crew:      append([]adventure.CrewMember(nil), g.state.Crew...),
	}
	g.lastErr = nil
	g.mu.Unlock()

	payload, err := s.Narrative.RegenerateChoices(ctx, req)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.queue.Finish()
	if err != nil {
		g.lastErr = err
		s.recordFailure(err)
		hlog.CtxWarnf(ctx, "regenerate choices failed player=%s err=%v", playerID, err)
		return TurnResult{}, err
	}
	if g.state.Scene != nil {
		g.state.Scene = g.state.Scene.WithChoices(payload.Choices)
	}
	if payload.ReputationAnalysis != "" {
		g.state.ReputationAnalysis = payload.ReputationAnalysis
	}
	s.recordSuccess(OutcomeRerolled)
	return TurnResult{
		Outcome: OutcomeRerolled,
		Notice:  adventure.Message(noticeRerolling, noticeShortMillis),
		Status:  g.status(playerID),
	}, nil
}

// SetConnectivity records an online/offline edge. Coming back online runs
// the queued choice, if any.
func (s *Service) SetConnectivity(ctx context.Context, playerID string, online bool) (TurnResult, error) {
	if err := validPlayer(playerID); err != nil {
		return TurnResult{}, err
	}
	g := s.game(playerID)
	g.mu.Lock()
	pending := g.queue.SetOnline(online)
	if pending == nil {
		st := g.status(playerID)
		g.mu.Unlock()
		return TurnResult{Outcome: OutcomeConnectivity, Status: st}, nil
	}
	g.mu.Unlock()
	hlog.CtxInfof(ctx, "connection restored, replaying queued choice player=%s choice=%d", playerID, pending.Choice.ID)
	return s.runChoice(ctx, playerID, g, pending.Choice)
}
