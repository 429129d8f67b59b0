package game

import (
	"errors"

	"worldchronicles/internal/domain/adventure"
)

var (
	ErrInvalidRequest    = errors.New("invalid game request")
	ErrNotStarted        = errors.New("adventure not started")
	ErrActionInProgress  = errors.New("action in progress")
	ErrOffline           = errors.New("offline")
	ErrNotOwned          = adventure.ErrNotOwned
	ErrUnknownChoice     = errors.New("unknown choice")
	ErrChoiceUnavailable = errors.New("choice unavailable")
	ErrNothingToRetry    = errors.New("nothing to retry")
	ErrSaveCorrupt       = errors.New("save corrupted")
)

// SaveCorruptError is returned by Load after a corrupt snapshot was
// discarded and the game reset.
type SaveCorruptError struct {
	Cause  error
	Notice adventure.Notice
}

func (e *SaveCorruptError) Error() string {
	return ErrSaveCorrupt.Error()
}

func (e *SaveCorruptError) Unwrap() error {
	return ErrSaveCorrupt
}

// OfflineError carries the notice shown when an online-only operation is
// attempted offline.
type OfflineError struct {
	Notice adventure.Notice
}

func (e *OfflineError) Error() string {
	return ErrOffline.Error()
}

func (e *OfflineError) Unwrap() error {
	return ErrOffline
}
