package event

import (
	"time"
)

// Round numbers are assigned max+1 per event inside the request transaction;
// the composite unique index rejects the loser of a concurrent create.
type Round struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID     int64     `gorm:"not null;uniqueIndex:idx_rounds_event_number" json:"event_id"`
	RoundNumber int       `gorm:"not null;uniqueIndex:idx_rounds_event_number;column:round_number" json:"round_number"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	CategoryID  *int64    `gorm:"column:category_id" json:"category_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	IsDeleted   bool      `gorm:"not null;default:false;column:is_deleted" json:"is_deleted"`
}

func (Round) TableName() string { return "rounds" }
