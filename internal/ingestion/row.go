package ingestion

import (
	"gorm.io/datatypes"

	types "github.com/quizforge/quizforge-backend/internal/domain"
)

// Row is the source-agnostic shape every parser produces; the importer
// resolves the category name and turns rows into catalog questions.
type Row struct {
	Question      string
	Answer        string
	Category      string
	Difficulty    types.Difficulty
	AirDate       *datatypes.Date
	OriginalValue *int
	OriginalRound string
}
