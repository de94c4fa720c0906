package trivia

import (
	"time"
)

// UserGeneratedQuestion has the same playable shape as CatalogQuestion plus
// creator attribution. CreatedBy always comes from the session principal.
type UserGeneratedQuestion struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string         `gorm:"not null;column:question" json:"question"`
	Answer     string         `gorm:"not null;column:answer" json:"answer"`
	CategoryID *int64         `gorm:"index;column:category_id" json:"category_id,omitempty"`
	Category   *Category      `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Difficulty Difficulty     `gorm:"not null;column:difficulty" json:"difficulty"`
	CreatedBy  int64          `gorm:"index;not null;column:created_by" json:"created_by"`
	Status     QuestionStatus `gorm:"not null;default:'active';column:status" json:"status"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	IsDeleted  bool           `gorm:"not null;default:false;column:is_deleted" json:"is_deleted"`
}

func (UserGeneratedQuestion) TableName() string { return "user_generated_questions" }
