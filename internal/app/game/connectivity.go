package game

import "worldchronicles/internal/domain/adventure"

type PendingKind string

const PendingChoice PendingKind = "choice"

// PendingAction is a deferred intent captured while offline. Choice is the
// only kind today.
type PendingAction struct {
	Kind   PendingKind      `json:"kind"`
	Choice adventure.Choice `json:"choice"`
}

type Admission int

const (
	AdmitRun Admission = iota
	AdmitQueued
)

// Queue serializes backend work for one game. At most one action is in
// flight or pending at a time. Callers hold the game lock.
type Queue struct {
	online   bool
	inFlight bool
	pending  *PendingAction
}

func NewQueue() Queue {
	return Queue{online: true}
}

// Admit runs the action now when online and queues it when offline.
func (q *Queue) Admit(a PendingAction) (Admission, error) {
	if q.Busy() {
		return 0, ErrActionInProgress
	}
	if !q.online {
		p := a
		q.pending = &p
		return AdmitQueued, nil
	}
	q.inFlight = true
	return AdmitRun, nil
}

// Acquire claims the in-flight slot for work that is never queued.
func (q *Queue) Acquire() error {
	if q.Busy() {
		return ErrActionInProgress
	}
	q.inFlight = true
	return nil
}

func (q *Queue) Finish() {
	q.inFlight = false
}

// SetOnline records a connectivity signal. Only an offline to online edge
// with a pending action returns it; the slot is cleared and the action is
// marked in flight, so it is replayed exactly once.
func (q *Queue) SetOnline(online bool) *PendingAction {
	wasOnline := q.online
	q.online = online
	if !online || wasOnline || q.pending == nil || q.inFlight {
		return nil
	}
	p := q.pending
	q.pending = nil
	q.inFlight = true
	return p
}

func (q *Queue) Online() bool {
	return q.online
}

func (q *Queue) InFlight() bool {
	return q.inFlight
}

func (q *Queue) Busy() bool {
	return q.inFlight || q.pending != nil
}

func (q *Queue) Pending() *PendingAction {
	if q.pending == nil {
		return nil
	}
	p := *q.pending
	return &p
}

// Clear drops any pending action and keeps the connectivity flag.
func (q *Queue) Clear() {
	q.pending = nil
	q.inFlight = false
}
