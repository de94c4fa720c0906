package event

import (
	"github.com/quizforge/quizforge-backend/internal/domain/trivia"
)

// NormalizedQuestion is the uniform read-only projection of a round slot
// regardless of question source. It is computed on demand by a SQL
// projection (RoundQuestionRepo.ListNormalizedByRound) and never written.
type NormalizedQuestion struct {
	RoundQuestionID int64             `json:"round_question_id"`
	RoundID         int64             `json:"round_id"`
	QuestionNumber  int               `json:"question_number"`
	QuestionID      int64             `json:"question_id"`
	QuestionType    QuestionSource    `json:"question_type"`
	Question        string            `json:"question"`
	Answer          string            `json:"answer"`
	Difficulty      trivia.Difficulty `json:"difficulty"`
	CategoryID      *int64            `json:"category_id,omitempty"`
	CategoryName    string            `json:"category_name,omitempty"`
}
