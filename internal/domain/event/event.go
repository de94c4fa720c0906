package event

import (
	"strings"
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ParseStatus normalizes and validates a caller-supplied event status.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusDraft:
		return StatusDraft, true
	case StatusPublished:
		return StatusPublished, true
	case StatusArchived:
		return StatusArchived, true
	default:
		return "", false
	}
}

// Event is owner-scoped: every mutation authorizes CreatedBy against the
// session principal. Deletion is a soft flag; default reads filter it.
type Event struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null;column:name" json:"name"`
	Description string     `gorm:"column:description" json:"description,omitempty"`
	Venue       string     `gorm:"column:venue" json:"venue,omitempty"`
	EventDate   *time.Time `gorm:"column:event_date" json:"event_date,omitempty"`
	Status      Status     `gorm:"not null;default:'draft';column:status" json:"status"`
	CreatedBy   int64      `gorm:"index;not null;column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
	IsDeleted   bool       `gorm:"not null;default:false;column:is_deleted" json:"is_deleted"`

	Rounds []*Round `gorm:"foreignKey:EventID;references:ID" json:"rounds,omitempty"`
}

func (Event) TableName() string { return "events" }
