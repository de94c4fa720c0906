package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/matching"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

// MaxCategorySampleCount caps GET /category/{id}/questions?count=N.
const MaxCategorySampleCount = 50

// DefaultCategorySampleCount applies when count is absent.
const DefaultCategorySampleCount = 10

// AnswerCheck is the result of scoring a submitted answer.
type AnswerCheck struct {
	Correct       bool
	Score         int
	CorrectAnswer string
}

type CreateUserQuestionInput struct {
	Question   string
	Answer     string
	Difficulty string
	CategoryID *int64
}

type QuestionService interface {
	// Random returns one random active catalog question matching the filter.
	Random(ctx context.Context, filter types.QuestionFilter) (*types.CatalogQuestion, error)
	// CategoryQuestions samples count random questions from a category,
	// clamped to MaxCategorySampleCount.
	CategoryQuestions(ctx context.Context, categoryID int64, count int) ([]*types.CatalogQuestion, error)
	// CheckAnswer fuzzy-scores answer against the stored catalog answer.
	CheckAnswer(ctx context.Context, questionID int64, answer string) (*AnswerCheck, error)
	// CreateUserQuestion stores a question attributed to the session principal.
	CreateUserQuestion(ctx context.Context, input CreateUserQuestionInput) (*types.UserGeneratedQuestion, error)
}

type questionService struct {
	db           *gorm.DB
	log          *logger.Logger
	catalogRepo  triviarepo.CatalogQuestionRepo
	userQRepo    triviarepo.UserQuestionRepo
	categoryRepo triviarepo.CategoryRepo
}

func NewQuestionService(
	db *gorm.DB,
	log *logger.Logger,
	catalogRepo triviarepo.CatalogQuestionRepo,
	userQRepo triviarepo.UserQuestionRepo,
	categoryRepo triviarepo.CategoryRepo,
) QuestionService {
	serviceLog := log.With("service", "QuestionService")
	return &questionService{
		db:           db,
		log:          serviceLog,
		catalogRepo:  catalogRepo,
		userQRepo:    userQRepo,
		categoryRepo: categoryRepo,
	}
}

func (qs *questionService) Random(ctx context.Context, filter types.QuestionFilter) (*types.CatalogQuestion, error) {
	const op = "QuestionService.Random"
	q, err := qs.catalogRepo.Random(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, op, "no questions found with these criteria", nil)
		}
		return nil, err
	}
	return q, nil
}

func (qs *questionService) CategoryQuestions(ctx context.Context, categoryID int64, count int) ([]*types.CatalogQuestion, error) {
	const op = "QuestionService.CategoryQuestions"

	if count <= 0 {
		count = DefaultCategorySampleCount
	}
	if count > MaxCategorySampleCount {
		count = MaxCategorySampleCount
	}

	dbc := dbctx.Context{Ctx: ctx}
	if _, err := qs.categoryRepo.GetByID(dbc, categoryID); err != nil {
		return nil, err
	}
	questions, err := qs.catalogRepo.RandomByCategory(dbc, categoryID, count)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperr.New(apperr.CodeNotFound, op, "category has no questions", nil)
	}
	return questions, nil
}

func (qs *questionService) CheckAnswer(ctx context.Context, questionID int64, answer string) (*AnswerCheck, error) {
	const op = "QuestionService.CheckAnswer"

	if questionID <= 0 {
		return nil, apperr.New(apperr.CodeValidation, op, "question_id is required", nil)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "answer is required", nil)
	}

	q, err := qs.catalogRepo.GetByID(dbctx.Context{Ctx: ctx}, questionID)
	if err != nil {
		return nil, err
	}
	correct, score := matching.Match(answer, q.Answer)
	return &AnswerCheck{
		Correct:       correct,
		Score:         score,
		CorrectAnswer: q.Answer,
	}, nil
}

func (qs *questionService) CreateUserQuestion(ctx context.Context, input CreateUserQuestionInput) (*types.UserGeneratedQuestion, error) {
	const op = "QuestionService.CreateUserQuestion"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Question) == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "question is required", nil)
	}
	if strings.TrimSpace(input.Answer) == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "answer is required", nil)
	}
	difficulty, ok := types.ParseDifficulty(input.Difficulty)
	if !ok {
		return nil, apperr.New(apperr.CodeValidation, op, "difficulty must be easy, medium, or hard", nil)
	}

	var question *types.UserGeneratedQuestion
	if err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if input.CategoryID != nil {
			if _, err := qs.categoryRepo.GetByID(dbc, *input.CategoryID); err != nil {
				if apperr.IsCode(err, apperr.CodeNotFound) {
					return apperr.New(apperr.CodeValidation, op, "category does not exist", nil)
				}
				return err
			}
		}
		question = &types.UserGeneratedQuestion{
			Question:   strings.TrimSpace(input.Question),
			Answer:     strings.TrimSpace(input.Answer),
			CategoryID: input.CategoryID,
			Difficulty: difficulty,
			CreatedBy:  rd.UserID,
			Status:     types.QuestionStatusActive,
		}
		return qs.userQRepo.Create(dbc, question)
	}); err != nil {
		return nil, err
	}
	return question, nil
}
