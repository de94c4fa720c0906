package services

import (
	"context"

	"gorm.io/gorm"

	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

// DefaultActiveMinQuestions is the threshold /categories/active applies when
// the caller does not pass min_questions.
const DefaultActiveMinQuestions = 80

type CategoryService interface {
	List(ctx context.Context) ([]*types.Category, error)
	ListActive(ctx context.Context, minQuestions int) ([]*types.CategoryQuestionCount, error)
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo triviarepo.CategoryRepo
}

func NewCategoryService(db *gorm.DB, log *logger.Logger, categoryRepo triviarepo.CategoryRepo) CategoryService {
	serviceLog := log.With("service", "CategoryService")
	return &categoryService{db: db, log: serviceLog, categoryRepo: categoryRepo}
}

func (cs *categoryService) List(ctx context.Context) ([]*types.Category, error) {
	return cs.categoryRepo.List(dbctx.Context{Ctx: ctx})
}

func (cs *categoryService) ListActive(ctx context.Context, minQuestions int) ([]*types.CategoryQuestionCount, error) {
	// An explicit 0 is a valid threshold; only a nonsense negative falls
	// back to the default.
	if minQuestions < 0 {
		minQuestions = DefaultActiveMinQuestions
	}
	return cs.categoryRepo.ListWithMinQuestions(dbctx.Context{Ctx: ctx}, minQuestions)
}
