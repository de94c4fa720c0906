package domain

import (
	"github.com/quizforge/quizforge-backend/internal/domain/event"
	"github.com/quizforge/quizforge-backend/internal/domain/trivia"
	"github.com/quizforge/quizforge-backend/internal/domain/user"
)

type User = user.User
type Session = user.Session

type Category = trivia.Category
type CategoryQuestionCount = trivia.CategoryQuestionCount
type CatalogQuestion = trivia.CatalogQuestion
type UserGeneratedQuestion = trivia.UserGeneratedQuestion
type QuestionFilter = trivia.QuestionFilter
type ImportRun = trivia.ImportRun
type Difficulty = trivia.Difficulty
type QuestionStatus = trivia.QuestionStatus

type Event = event.Event
type EventStatus = event.Status
type Round = event.Round
type RoundQuestion = event.RoundQuestion
type QuestionRef = event.QuestionRef
type QuestionSource = event.QuestionSource
type NormalizedQuestion = event.NormalizedQuestion

var (
	NewQuestionRef          = event.NewQuestionRef
	QuestionRefOf           = event.RefOf
	CatalogRef              = event.CatalogRef
	UserRef                 = event.UserRef
	ErrAmbiguousQuestionRef = event.ErrAmbiguousQuestionRef
	ParseDifficulty         = trivia.ParseDifficulty
	ParseEventStatus        = event.ParseStatus
)

const (
	DifficultyEasy   = trivia.DifficultyEasy
	DifficultyMedium = trivia.DifficultyMedium
	DifficultyHard   = trivia.DifficultyHard

	QuestionStatusActive  = trivia.QuestionStatusActive
	QuestionStatusFlagged = trivia.QuestionStatusFlagged
	QuestionStatusDeleted = trivia.QuestionStatusDeleted

	EventStatusDraft     = event.StatusDraft
	EventStatusPublished = event.StatusPublished
	EventStatusArchived  = event.StatusArchived

	QuestionSourceCatalog = event.QuestionSourceCatalog
	QuestionSourceUser    = event.QuestionSourceUser
)
