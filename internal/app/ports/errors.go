package ports

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrTransport = errors.New("narrative backend unavailable")
	ErrFormat    = errors.New("narrative backend returned malformed content")
	ErrQuota     = errors.New("narrative backend quota exhausted")
)

// BackendError is the only error shape a narrative gateway returns. Kind is
// one of ErrTransport, ErrFormat or ErrQuota.
type BackendError struct {
	Kind error
	Op   string
	Err  error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *BackendError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func TransportError(op string, err error) error {
	return &BackendError{Kind: ErrTransport, Op: op, Err: err}
}

func FormatError(op string, err error) error {
	return &BackendError{Kind: ErrFormat, Op: op, Err: err}
}

func QuotaError(op string, err error) error {
	return &BackendError{Kind: ErrQuota, Op: op, Err: err}
}

// BackendKind reports the taxonomy kind of err. Unclassified errors count
// as transport failures.
func BackendKind(err error) error {
	switch {
	case errors.Is(err, ErrQuota):
		return ErrQuota
	case errors.Is(err, ErrFormat):
		return ErrFormat
	default:
		return ErrTransport
	}
}
