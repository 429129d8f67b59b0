package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"
)

func TestSave_SkipsUnstartedGame(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.svc.Save(context.Background(), env.playerID)
	if err != nil || res.Saved {
		t.Fatalf("expected no-op save, got %+v err=%v", res, err)
	}
	if ok, _ := env.svc.HasSave(context.Background(), env.playerID); ok {
		t.Fatalf("nothing should be stored")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	ctx := context.Background()
	if _, err := env.svc.SetView(ctx, env.playerID, adventure.ViewStats); err != nil {
		t.Fatalf("set view: %v", err)
	}
	saved := env.state(t).State

	res, err := env.svc.Save(ctx, env.playerID)
	if err != nil || !res.Saved || res.Notice.Message != "Log Pose Saved!" {
		t.Fatalf("unexpected save result %+v err=%v", res, err)
	}
	if ok, err := env.svc.HasSave(ctx, env.playerID); err != nil || !ok {
		t.Fatalf("expected save to exist, ok=%v err=%v", ok, err)
	}

	env.session.EXPECT().AdvanceStory(gomock.Any(), gomock.Any()).Return(scenePayload("later", 6), nil)
	if _, err := env.svc.Choose(ctx, env.playerID, 1); err != nil {
		t.Fatalf("choose: %v", err)
	}

	loaded, err := env.svc.Load(ctx, env.playerID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Notice.Message != "Log Pose Loaded!" {
		t.Fatalf("unexpected notice: %+v", loaded.Notice)
	}
	if diff := cmp.Diff(saved, loaded.Status.State, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("loaded state mismatch (-want +got):\n%s", diff)
	}

	kinds := env.journal.kinds()
	if kinds[len(kinds)-1] != adventure.JournalLoaded {
		t.Fatalf("expected load journal entry, got %v", kinds)
	}
}

func TestLoad_ResumesNarrativeSessionLazily(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	ctx := context.Background()
	if _, err := env.svc.Save(ctx, env.playerID); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := env.svc.Load(ctx, env.playerID); err != nil {
		t.Fatalf("load: %v", err)
	}

	resumed := env.session
	gomock.InOrder(
		env.gateway.EXPECT().ResumeStory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ports.ResumeRequest) (ports.NarrativeSession, error) {
				if req.Story != "opening" || req.Loadout.Name != "Rin" {
					t.Errorf("unexpected resume request %+v", req)
				}
				return resumed, nil
			}),
		resumed.EXPECT().AdvanceStory(gomock.Any(), gomock.Any()).Return(scenePayload("resumed", 6), nil),
		resumed.EXPECT().AdvanceStory(gomock.Any(), gomock.Any()).Return(scenePayload("again", 6), nil),
	)

	if _, err := env.svc.Choose(ctx, env.playerID, 1); err != nil {
		t.Fatalf("choose after load: %v", err)
	}
	if _, err := env.svc.Choose(ctx, env.playerID, 1); err != nil {
		t.Fatalf("second choose after load: %v", err)
	}
}

func TestLoad_MissingSave(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.svc.Load(context.Background(), env.playerID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_CorruptSaveResetsGame(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	ctx := context.Background()
	if err := env.store.Put(ctx, env.playerID, adventure.SaveKey, []byte(`{"playerStats":{"Agility":3}}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := env.svc.Load(ctx, env.playerID)
	var corrupt *SaveCorruptError
	if !errors.As(err, &corrupt) || !errors.Is(err, ErrSaveCorrupt) {
		t.Fatalf("expected SaveCorruptError, got %v", err)
	}
	if !errors.Is(corrupt.Cause, adventure.ErrCorruptSnapshot) {
		t.Fatalf("unexpected cause: %v", corrupt.Cause)
	}
	if res.Notice.Message != "Log Pose corrupted. Starting new adventure." {
		t.Fatalf("unexpected notice: %+v", res.Notice)
	}
	if res.Status.Started || res.Status.State.View != adventure.ViewCustomization || res.Status.State.Scene != nil {
		t.Fatalf("game not reset: %+v", res.Status)
	}
	if ok, _ := env.svc.HasSave(ctx, env.playerID); ok {
		t.Fatalf("corrupt save must be deleted")
	}
}

func TestSave_StoreFailureIsReturned(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	env.store.putErr = errBoom
	if _, err := env.svc.Save(context.Background(), env.playerID); !errors.Is(err, errBoom) {
		t.Fatalf("expected store error, got %v", err)
	}
	for _, k := range env.journal.kinds() {
		if k == adventure.JournalSaved {
			t.Fatalf("journal must not record a failed save")
		}
	}
}

func TestReset(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	ctx := context.Background()
	if _, err := env.svc.Save(ctx, env.playerID); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, _ = env.svc.SetConnectivity(ctx, env.playerID, false)
	env.purger.err = errBoom

	st, err := env.svc.Reset(ctx, env.playerID)
	if err != nil {
		t.Fatalf("purge failure must not be returned: %v", err)
	}
	if st.Started || st.Online {
		t.Fatalf("expected fresh offline game, got %+v", st)
	}
	if env.purger.calls != 1 {
		t.Fatalf("expected one purge, got %d", env.purger.calls)
	}
	if ok, _ := env.svc.HasSave(ctx, env.playerID); ok {
		t.Fatalf("save must be deleted")
	}

	if _, err := env.svc.Reset(ctx, env.playerID); err != nil {
		t.Fatalf("reset without a save: %v", err)
	}
}

func TestReset_WaitsForSaveInProgress(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	ctx := context.Background()
	env.store.putEntered = make(chan struct{})
	env.store.putRelease = make(chan struct{})

	saved := make(chan error, 1)
	go func() {
		_, err := env.svc.Save(ctx, env.playerID)
		saved <- err
	}()
	select {
	case <-env.store.putEntered:
	case <-time.After(2 * time.Second):
		t.Fatalf("save never reached the store")
	}

	reset := make(chan error, 1)
	go func() {
		_, err := env.svc.Reset(ctx, env.playerID)
		reset <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(env.store.putRelease)

	if err := <-saved; err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := <-reset; err != nil {
		t.Fatalf("reset: %v", err)
	}
	if ok, _ := env.svc.HasSave(ctx, env.playerID); ok {
		t.Fatalf("reset must not leave a snapshot behind")
	}
}

func TestReset_RetiresPreviousGame(t *testing.T) {
	env := newTestEnv(t)
	env.begin(t)
	ctx := context.Background()
	old := env.svc.game(env.playerID)
	if _, err := env.svc.Reset(ctx, env.playerID); err != nil {
		t.Fatalf("reset: %v", err)
	}

	old.mu.Lock()
	retired := old.retired
	old.mu.Unlock()
	if !retired {
		t.Fatalf("reset must retire the previous game")
	}
	if env.svc.game(env.playerID) == old {
		t.Fatalf("reset must register a fresh game")
	}
}
