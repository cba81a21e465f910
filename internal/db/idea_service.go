package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dfrestrepo/ideas/internal/models"
)

// CreateIdeaRequest holds the data needed to record a new idea
type CreateIdeaRequest struct {
	Title       string
	Description string
}

// CreateIdea records a new idea. Title and description are both required,
// matching the original form validation.
func CreateIdea(req CreateIdeaRequest) (*models.Idea, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if title == "" || description == "" {
		return nil, fmt.Errorf("title and description are both required")
	}

	idea := models.Idea{
		Title:       title,
		Description: description,
		Status:      "open",
	}

	if err := DB.Create(&idea).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Debug("idea created", zap.Uint("id", idea.ID), zap.String("title", idea.Title))

	return &idea, nil
}

// GetIdeas retrieves all ideas with their notes, newest first.
func GetIdeas() ([]models.Idea, error) {
	var ideas []models.Idea

	err := DB.Preload("Notes", func(db *gorm.DB) *gorm.DB {
		return db.Order("notes.created_at ASC")
	}).Order("created_at DESC").Find(&ideas).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return ideas, nil
}

// GetIdeaByID retrieves an idea and its notes by ID
func GetIdeaByID(id uint) (*models.Idea, error) {
	var idea models.Idea

	err := DB.Preload("Notes", func(db *gorm.DB) *gorm.DB {
		return db.Order("notes.created_at ASC")
	}).First(&idea, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("idea #%d not found", id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &idea, nil
}

// AddNote appends a timestamped trace note to an idea.
func AddNote(ideaID uint, text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("note text cannot be empty")
	}

	// Check the idea exists before appending
	if _, err := GetIdeaByID(ideaID); err != nil {
		return nil, err
	}

	note := models.Note{
		IdeaID: ideaID,
		Text:   text,
	}

	if err := DB.Create(&note).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Debug("note added", zap.Uint("idea_id", ideaID), zap.Uint("note_id", note.ID))

	return &note, nil
}

// ToggleNoteDone flips the done flag on a single note.
func ToggleNoteDone(noteID uint) (*models.Note, error) {
	var note models.Note

	if err := DB.First(&note, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note #%d not found", noteID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	note.Done = !note.Done
	if err := DB.Save(&note).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &note, nil
}

// MarkIdeaDone marks an idea as completed.
func MarkIdeaDone(ideaID uint) (*models.Idea, error) {
	idea, err := GetIdeaByID(ideaID)
	if err != nil {
		return nil, err
	}

	if idea.Status == "done" {
		return nil, fmt.Errorf("idea #%d is already completed", ideaID)
	}

	now := time.Now()
	idea.Status = "done"
	idea.DoneAt = &now

	if err := DB.Save(idea).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return idea, nil
}
