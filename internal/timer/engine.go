// Package timer is the state machine governing one owner's active
// session: IDLE when nothing is open, RUNNING while exactly one session
// is open. State is derived from the store on every call, so a fresh
// engine after a process restart sees the same state as the one that
// started the session.
package timer

import (
	"errors"
	"time"

	"github.com/dfrestrepo/ideas/internal/models"
)

var (
	// ErrAlreadyRunning rejects a start while the owner has an open session.
	ErrAlreadyRunning = errors.New("a session is already running")
	// ErrNotRunning rejects a stop when the owner has no open session.
	// A duplicated stop submit lands here instead of double-writing.
	ErrNotRunning = errors.New("no session is running")
)

// Store is the persistence the engine runs against. At most one open
// session may exist per owner; the store provides atomic single-record
// create and targeted update.
type Store interface {
	CreateSession(ownerID string, startedAt time.Time) (*models.Session, error)
	CloseSession(sessionID uint, endedAt time.Time) (*models.Session, error)
	FindOpenSession(ownerID string) (*models.Session, error)
}

// Engine coordinates start/stop/elapsed for any owner. It holds no
// per-owner state of its own.
type Engine struct {
	store Store

	// Now is the clock; replaceable in tests.
	Now func() time.Time
}

// New creates an engine over the given store.
func New(store Store) *Engine {
	return &Engine{store: store, Now: time.Now}
}

// Start opens a new session for the owner. Fails with ErrAlreadyRunning
// if one is already open, keeping the single-active-session invariant.
func (e *Engine) Start(ownerID string) (*models.Session, error) {
	open, err := e.store.FindOpenSession(ownerID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrAlreadyRunning
	}

	return e.store.CreateSession(ownerID, e.Now())
}

// Stop closes the owner's open session with ended_at = now. Fails with
// ErrNotRunning when nothing is open. The close targets the session by
// identity, so no other owner's session can be touched.
func (e *Engine) Stop(ownerID string) (*models.Session, error) {
	open, err := e.store.FindOpenSession(ownerID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrNotRunning
	}

	return e.store.CloseSession(open.ID, e.Now())
}

// Elapsed reports the running time of the owner's open session,
// recomputed from the stored started_at. Read-only; safe to poll at any
// cadence. The second return is false when nothing is running.
func (e *Engine) Elapsed(ownerID string) (time.Duration, bool, error) {
	open, err := e.store.FindOpenSession(ownerID)
	if err != nil {
		return 0, false, err
	}
	if open == nil {
		return 0, false, nil
	}

	return e.Now().Sub(open.StartedAt), true, nil
}

// Running reports the owner's open session, or nil when idle.
func (e *Engine) Running(ownerID string) (*models.Session, error) {
	return e.store.FindOpenSession(ownerID)
}
