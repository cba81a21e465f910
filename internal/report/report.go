// Package report computes read-side summaries over closed sessions.
// It never mutates the session store.
package report

import (
	"time"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/models"
)

// Store is the read surface the aggregator consumes.
type Store interface {
	ListSessions(ownerID string) ([]models.Session, error)
	FindOpenSession(ownerID string) (*models.Session, error)
	ListOwners() ([]string, error)
}

// Entry is one session in a summary. Invalid entries carry unusable
// timestamps from old data; they are listed as placeholders and excluded
// from totals rather than failing the whole summary.
type Entry struct {
	Session    models.Session
	Duration   time.Duration
	InProgress bool
	Invalid    bool
}

// Summary is the per-owner view: closed sessions newest first, a
// distinguished in-progress entry when a session is open, and the
// cumulative total across valid closed sessions.
type Summary struct {
	OwnerID string
	Entries []Entry
	Open    *Entry
	Total   time.Duration
}

// Aggregator builds summaries from the session store.
type Aggregator struct {
	store Store

	// Now is the clock used for live elapsed time; replaceable in tests.
	Now func() time.Time
}

// New creates an aggregator over the given store.
func New(store Store) *Aggregator {
	return &Aggregator{store: store, Now: time.Now}
}

// Summarize builds the summary for one owner.
func (a *Aggregator) Summarize(ownerID string) (*Summary, error) {
	sessions, err := a.store.ListSessions(ownerID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{OwnerID: ownerID}

	for _, s := range sessions {
		if s.Open() {
			started, err := clock.Normalize(s.StartedAt)
			if err != nil || started.IsZero() {
				summary.Entries = append(summary.Entries, Entry{Session: s, Invalid: true})
				continue
			}
			open := Entry{
				Session:    s,
				Duration:   a.Now().Sub(started),
				InProgress: true,
			}
			summary.Open = &open
			continue
		}

		entry := a.closedEntry(s)
		summary.Entries = append(summary.Entries, entry)
		if !entry.Invalid {
			summary.Total += entry.Duration
		}
	}

	return summary, nil
}

// closedEntry validates a closed session's timestamps and computes its
// duration from them, ignoring the cached seconds column.
func (a *Aggregator) closedEntry(s models.Session) Entry {
	started, err := clock.Normalize(s.StartedAt)
	if err != nil || started.IsZero() {
		return Entry{Session: s, Invalid: true}
	}
	ended, err := clock.Normalize(s.EndedAt)
	if err != nil || ended.Before(started) {
		return Entry{Session: s, Invalid: true}
	}
	return Entry{Session: s, Duration: ended.Sub(started)}
}

// Total is the cumulative closed-session time for one owner.
func (a *Aggregator) Total(ownerID string) (time.Duration, error) {
	summary, err := a.Summarize(ownerID)
	if err != nil {
		return 0, err
	}
	return summary.Total, nil
}

// SummarizeAll builds a summary for every owner with recorded sessions.
func (a *Aggregator) SummarizeAll() ([]*Summary, error) {
	owners, err := a.store.ListOwners()
	if err != nil {
		return nil, err
	}

	var summaries []*Summary
	for _, owner := range owners {
		summary, err := a.Summarize(owner)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
