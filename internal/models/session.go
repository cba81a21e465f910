package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OwnerDevelopment is the singleton activity tracked outside any idea.
const OwnerDevelopment = "development"

// IdeaOwner builds the owner identifier for a session tied to an idea.
func IdeaOwner(ideaID uint) string {
	return fmt.Sprintf("idea:%d", ideaID)
}

// ParseIdeaOwner extracts the idea ID from an idea owner identifier.
// The second return is false for the development activity or any
// identifier not in idea:<id> form.
func ParseIdeaOwner(owner string) (uint, bool) {
	rest, ok := strings.CutPrefix(owner, "idea:")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Session represents one start/stop interval of tracked time. OwnerID is
// either an idea owner (see IdeaOwner) or OwnerDevelopment. A session with
// a nil EndedAt is open; at most one open session may exist per owner.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID   string     `gorm:"not null;index" json:"owner_id"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`

	// Display cache written at close; StartedAt/EndedAt stay authoritative.
	DurationSeconds int `json:"duration_seconds"`
}

// Open reports whether the session is still running.
func (s *Session) Open() bool {
	return s.EndedAt == nil
}

// Duration is the closed session's length, recomputed from the
// timestamps rather than the cached seconds.
func (s *Session) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}
