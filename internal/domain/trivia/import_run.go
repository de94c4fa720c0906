package trivia

import (
	"time"

	"gorm.io/datatypes"
)

// ImportRun is the audit row written once per bulk-import invocation.
type ImportRun struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Source          string         `gorm:"index;not null;column:source" json:"source"`
	File            string         `gorm:"not null;column:file" json:"file"`
	QuestionsAdded  int            `gorm:"not null;default:0;column:questions_added" json:"questions_added"`
	CategoriesAdded int            `gorm:"not null;default:0;column:categories_added" json:"categories_added"`
	Skipped         int            `gorm:"not null;default:0;column:skipped" json:"skipped"`
	Stats           datatypes.JSON `gorm:"column:stats" json:"stats,omitempty"`
	StartedAt       time.Time      `gorm:"not null;column:started_at" json:"started_at"`
	FinishedAt      time.Time      `gorm:"not null;column:finished_at" json:"finished_at"`
}

func (ImportRun) TableName() string { return "import_runs" }
