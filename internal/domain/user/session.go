package user

import (
	"time"
)

// Session is an opaque DB-backed bearer credential. Expiry is enforced only
// at lookup time; there is no background sweeper.
type Session struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Token     string    `gorm:"uniqueIndex;not null;column:token" json:"-"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	ExpiresAt time.Time `gorm:"index;not null;column:expires_at" json:"expires_at"`
}

func (Session) TableName() string { return "user_sessions" }
