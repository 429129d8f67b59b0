package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/app/ports/mocks"
	"worldchronicles/internal/domain/adventure"

	"go.uber.org/mock/gomock"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubSnapshotStore struct {
	mu      sync.Mutex
	byKey   map[string][]byte
	deletes int
	putErr  error
	// When putRelease is set, Put closes putEntered and waits for it.
	putEntered chan struct{}
	putRelease chan struct{}
}

func newStubSnapshotStore() *stubSnapshotStore {
	return &stubSnapshotStore{byKey: map[string][]byte{}}
}

func (r *stubSnapshotStore) Get(_ context.Context, playerID, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byKey[playerID+"|"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *stubSnapshotStore) Put(_ context.Context, playerID, key string, value []byte) error {
	if r.putRelease != nil {
		close(r.putEntered)
		<-r.putRelease
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.putErr != nil {
		return r.putErr
	}
	r.byKey[playerID+"|"+key] = append([]byte(nil), value...)
	return nil
}

func (r *stubSnapshotStore) Delete(_ context.Context, playerID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	if _, ok := r.byKey[playerID+"|"+key]; !ok {
		return ports.ErrNotFound
	}
	delete(r.byKey, playerID+"|"+key)
	return nil
}

func (r *stubSnapshotStore) Exists(_ context.Context, playerID, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byKey[playerID+"|"+key]
	return ok, nil
}

type stubJournal struct {
	mu      sync.Mutex
	entries []adventure.JournalEntry
}

func (r *stubJournal) Append(_ context.Context, _ string, entries []adventure.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *stubJournal) ListByPlayer(_ context.Context, playerID string, _ int) ([]adventure.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []adventure.JournalEntry
	for _, e := range r.entries {
		if e.PlayerID == playerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubJournal) kinds() []adventure.JournalKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]adventure.JournalKind, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Kind)
	}
	return out
}

type stubMetrics struct {
	mu       sync.Mutex
	success  map[string]int
	conflict int
	failures map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{success: map[string]int{}, failures: map[string]int{}}
}

func (m *stubMetrics) RecordSuccess(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.success[outcome]++
}

func (m *stubMetrics) RecordConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflict++
}

func (m *stubMetrics) RecordFailure(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[kind]++
}

type stubPurger struct {
	calls int
	err   error
}

func (p *stubPurger) Purge(context.Context) error {
	p.calls++
	return p.err
}

// blockingSession holds AdvanceStory until release is closed.
type blockingSession struct {
	entered chan struct{}
	release chan struct{}
	payload adventure.ScenePayload
}

func (s *blockingSession) ID() string { return "blocking" }

func (s *blockingSession) AdvanceStory(ctx context.Context, _ ports.AdvanceRequest) (adventure.ScenePayload, error) {
	close(s.entered)
	select {
	case <-s.release:
		return s.payload, nil
	case <-ctx.Done():
		return adventure.ScenePayload{}, ctx.Err()
	}
}

func scenePayload(story string, n int) adventure.ScenePayload {
	choices := make([]adventure.Choice, n)
	for i := range choices {
		choices[i] = adventure.Choice{ID: i + 1, Text: fmt.Sprintf("%s option %d", story, i+1)}
	}
	return adventure.ScenePayload{Story: story, Choices: choices}
}

func testSetup() adventure.CharacterSetup {
	return adventure.CharacterSetup{
		Name:   "Rin",
		Outfit: adventure.Item{Name: "Wano Country Kimono", Description: "kimono"},
		Weapon: adventure.Item{Name: "Nodachi", Description: "greatsword", Grade: "Ungraded"},
		Path:   adventure.PathPirate,
		Gender: adventure.GenderFemale,
		Origin: adventure.OriginEastBlue,
	}
}

type testEnv struct {
	svc      *Service
	gateway  *mocks.MockNarrativeGateway
	session  *mocks.MockNarrativeSession
	store    *stubSnapshotStore
	journal  *stubJournal
	metrics  *stubMetrics
	purger   *stubPurger
	playerID string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		gateway:  mocks.NewMockNarrativeGateway(ctrl),
		session:  mocks.NewMockNarrativeSession(ctrl),
		store:    newStubSnapshotStore(),
		journal:  &stubJournal{},
		metrics:  newStubMetrics(),
		purger:   &stubPurger{},
		playerID: "player-1",
	}
	seq := 0
	env.svc = &Service{
		Narrative: env.gateway,
		Snapshots: env.store,
		Journal:   env.journal,
		TxManager: stubTxManager{},
		Metrics:   env.metrics,
		Cache:     env.purger,
		Now:       func() time.Time { return time.Unix(1700000000, 0).UTC() },
		NewID: func() string {
			seq++
			return fmt.Sprintf("entry-%d", seq)
		},
	}
	env.session.EXPECT().ID().Return("session-1").AnyTimes()
	return env
}

// begin starts an adventure with a six-choice opening scene.
func (e *testEnv) begin(t *testing.T) TurnResult {
	t.Helper()
	e.gateway.EXPECT().StartStory(gomock.Any(), gomock.Any()).Return(e.session, scenePayload("opening", 6), nil)
	res, err := e.svc.Begin(context.Background(), e.playerID, testSetup())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	return res
}

func (e *testEnv) state(t *testing.T) Status {
	t.Helper()
	st, err := e.svc.State(context.Background(), e.playerID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	return st
}

var errBoom = errors.New("boom")
