package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/db"
	"github.com/dfrestrepo/ideas/internal/models"
)

// resolveOwner maps a command argument to a session owner: "dev" (or
// "development") is the standalone activity, anything numeric is an idea
// ID, which must exist. Returns the owner ID and a human label for it.
func resolveOwner(arg string) (string, string, error) {
	if arg == "dev" || arg == models.OwnerDevelopment {
		return models.OwnerDevelopment, "development", nil
	}

	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return "", "", fmt.Errorf("invalid owner '%s': use an idea ID or 'dev'", arg)
	}

	idea, err := db.GetIdeaByID(uint(id))
	if err != nil {
		return "", "", err
	}

	return models.IdeaOwner(idea.ID), fmt.Sprintf("idea #%d: %s", idea.ID, idea.Title), nil
}

// ownerLabel renders an owner ID for display, resolving idea titles when
// the idea still exists.
func ownerLabel(ownerID string) string {
	if ownerID == models.OwnerDevelopment {
		return "development"
	}
	if id, ok := models.ParseIdeaOwner(ownerID); ok {
		if idea, err := db.GetIdeaByID(id); err == nil {
			return fmt.Sprintf("idea #%d: %s", idea.ID, idea.Title)
		}
		return fmt.Sprintf("idea #%d", id)
	}
	return ownerID
}

// displayZone resolves the configured display timezone, falling back to
// UTC with a visible warning instead of failing the command.
func displayZone() *time.Location {
	loc, err := clock.LoadDisplayZone(cfg.DisplayTZ)
	if err != nil {
		fmt.Printf("Warning: unknown timezone '%s', falling back to UTC\n", cfg.DisplayTZ)
		return time.UTC
	}
	return loc
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
