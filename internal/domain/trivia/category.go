package trivia

import (
	"time"
)

// Category identity is case-insensitive: uniqueness lives on a functional
// LOWER(name) index (see db.EnsureTriviaIndexes), stored casing is first-seen.
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// CategoryQuestionCount is the read projection behind /categories/active.
type CategoryQuestionCount struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	QuestionCount int64  `json:"question_count"`
}
