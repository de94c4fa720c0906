package trivia

import (
	"time"

	"gorm.io/datatypes"
)

// CatalogQuestion is a bulk-imported trivia question. Importers are the only
// writers; the play surface treats rows as immutable.
type CatalogQuestion struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Question      string          `gorm:"not null;column:question" json:"question"`
	Answer        string          `gorm:"not null;column:answer" json:"answer"`
	CategoryID    *int64          `gorm:"index;column:category_id" json:"category_id,omitempty"`
	Category      *Category       `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Difficulty    Difficulty      `gorm:"index;not null;column:difficulty" json:"difficulty"`
	AirDate       *datatypes.Date `gorm:"column:air_date" json:"air_date,omitempty"`
	OriginalValue *int            `gorm:"column:original_value" json:"original_value,omitempty"`
	OriginalRound string          `gorm:"column:original_round" json:"original_round,omitempty"`
	Status        QuestionStatus  `gorm:"index;not null;default:'active';column:status" json:"status"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (CatalogQuestion) TableName() string { return "trivia_questions" }

// QuestionFilter narrows random catalog sampling.
type QuestionFilter struct {
	Difficulty Difficulty
	CategoryID *int64
}
