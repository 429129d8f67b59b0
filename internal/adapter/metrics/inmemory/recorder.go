package inmemory

import (
	"sync"
)

type Snapshot struct {
	TurnTotal     uint64            `json:"turn_total"`
	TurnSuccess   uint64            `json:"turn_success"`
	TurnConflict  uint64            `json:"turn_conflict"`
	TurnFailure   uint64            `json:"turn_failure"`
	ByOutcome     map[string]uint64 `json:"by_outcome"`
	ByFailureKind map[string]uint64 `json:"by_failure_kind"`
}

// Recorder counts turn outcomes for the KPI endpoint.
type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byResult map[string]uint64
	byKind   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byResult: map[string]uint64{},
		byKind:   map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byResult[outcome]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byKind[kind]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TurnSuccess:   r.success,
		TurnConflict:  r.conflict,
		TurnFailure:   r.failure,
		TurnTotal:     r.success + r.conflict + r.failure,
		ByOutcome:     make(map[string]uint64, len(r.byResult)),
		ByFailureKind: make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byResult {
		out.ByOutcome[k] = v
	}
	for k, v := range r.byKind {
		out.ByFailureKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
