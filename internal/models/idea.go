package models

import (
	"time"

	"gorm.io/gorm"
)

// Idea represents a captured app idea
type Idea struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Status      string     `gorm:"default:open" json:"status"` // open, done
	DoneAt      *time.Time `json:"done_at"`

	// Relationships
	Notes []Note `gorm:"foreignKey:IdeaID" json:"notes"`
}

// Note is a timestamped trace note appended to an idea
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	IdeaID uint   `gorm:"not null;index" json:"idea_id"`
	Text   string `gorm:"not null" json:"text"`
	Done   bool   `gorm:"default:false" json:"done"`
}
