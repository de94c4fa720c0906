package event

import (
	"errors"
	"time"
)

// RoundQuestion is an ordered slot within a round holding exactly one
// question reference. The XOR invariant is enforced three times over: the
// QuestionRef variant type here, service validation, and a DB CHECK
// constraint (see db.EnsureTriviaIndexes).
type RoundQuestion struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoundID          int64     `gorm:"not null;uniqueIndex:idx_round_questions_round_number" json:"round_id"`
	QuestionNumber   int       `gorm:"not null;uniqueIndex:idx_round_questions_round_number;column:question_number" json:"question_number"`
	TriviaQuestionID *int64    `gorm:"column:trivia_question_id" json:"trivia_question_id,omitempty"`
	UserQuestionID   *int64    `gorm:"column:user_question_id" json:"user_question_id,omitempty"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (RoundQuestion) TableName() string { return "round_questions" }

type QuestionSource string

const (
	QuestionSourceCatalog QuestionSource = "catalog"
	QuestionSourceUser    QuestionSource = "user"
)

var ErrAmbiguousQuestionRef = errors.New("round question must reference exactly one of a catalog question or a user question")

// QuestionRef is the tagged variant that makes the both-or-neither state
// unrepresentable above the persistence layer.
type QuestionRef struct {
	Source QuestionSource
	ID     int64
}

func CatalogRef(id int64) QuestionRef {
	return QuestionRef{Source: QuestionSourceCatalog, ID: id}
}

func UserRef(id int64) QuestionRef {
	return QuestionRef{Source: QuestionSourceUser, ID: id}
}

func (r QuestionRef) Valid() bool {
	if r.ID <= 0 {
		return false
	}
	return r.Source == QuestionSourceCatalog || r.Source == QuestionSourceUser
}

// NewQuestionRef builds the variant from the two optional wire fields,
// rejecting both-set and neither-set.
func NewQuestionRef(triviaQuestionID, userQuestionID *int64) (QuestionRef, error) {
	switch {
	case triviaQuestionID != nil && userQuestionID != nil:
		return QuestionRef{}, ErrAmbiguousQuestionRef
	case triviaQuestionID != nil:
		return CatalogRef(*triviaQuestionID), nil
	case userQuestionID != nil:
		return UserRef(*userQuestionID), nil
	default:
		return QuestionRef{}, ErrAmbiguousQuestionRef
	}
}

// RefOf resolves a persisted row back into the variant.
func RefOf(rq *RoundQuestion) (QuestionRef, error) {
	if rq == nil {
		return QuestionRef{}, ErrAmbiguousQuestionRef
	}
	return NewQuestionRef(rq.TriviaQuestionID, rq.UserQuestionID)
}

// Apply writes the variant onto a row, clearing the other reference.
func (r QuestionRef) Apply(rq *RoundQuestion) error {
	if !r.Valid() {
		return ErrAmbiguousQuestionRef
	}
	id := r.ID
	switch r.Source {
	case QuestionSourceCatalog:
		rq.TriviaQuestionID = &id
		rq.UserQuestionID = nil
	case QuestionSourceUser:
		rq.UserQuestionID = &id
		rq.TriviaQuestionID = nil
	}
	return nil
}
