package trivia

import (
	"strings"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type CategoryRepo interface {
	Create(dbc dbctx.Context, category *types.Category) error
	GetByID(dbc dbctx.Context, categoryID int64) (*types.Category, error)
	// GetByNameFold looks a category up case-insensitively, matching the
	// LOWER(name) unique index.
	GetByNameFold(dbc dbctx.Context, name string) (*types.Category, error)
	List(dbc dbctx.Context) ([]*types.Category, error)
	// ListWithMinQuestions returns categories holding at least minQuestions
	// active catalog questions, with their counts.
	ListWithMinQuestions(dbc dbctx.Context, minQuestions int) ([]*types.CategoryQuestionCount, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(gdb *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: gdb, log: repoLog}
}

func (cr *categoryRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return cr.db.WithContext(dbc.Ctx)
}

func (cr *categoryRepo) Create(dbc dbctx.Context, category *types.Category) error {
	if err := cr.handle(dbc).Create(category).Error; err != nil {
		return db.MapError("CategoryRepo.Create", err)
	}
	return nil
}

func (cr *categoryRepo) GetByID(dbc dbctx.Context, categoryID int64) (*types.Category, error) {
	var result types.Category
	if err := cr.handle(dbc).
		Where("id = ?", categoryID).
		First(&result).Error; err != nil {
		return nil, db.MapError("CategoryRepo.GetByID", err)
	}
	return &result, nil
}

func (cr *categoryRepo) GetByNameFold(dbc dbctx.Context, name string) (*types.Category, error) {
	var result types.Category
	if err := cr.handle(dbc).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&result).Error; err != nil {
		return nil, db.MapError("CategoryRepo.GetByNameFold", err)
	}
	return &result, nil
}

func (cr *categoryRepo) List(dbc dbctx.Context) ([]*types.Category, error) {
	var results []*types.Category
	if err := cr.handle(dbc).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, db.MapError("CategoryRepo.List", err)
	}
	return results, nil
}

func (cr *categoryRepo) ListWithMinQuestions(dbc dbctx.Context, minQuestions int) ([]*types.CategoryQuestionCount, error) {
	var results []*types.CategoryQuestionCount
	if err := cr.handle(dbc).
		Raw(`
			SELECT c.id, c.name, COUNT(q.id) AS question_count
			FROM categories c
			JOIN trivia_questions q ON q.category_id = c.id AND q.status = 'active'
			GROUP BY c.id, c.name
			HAVING COUNT(q.id) >= ?
			ORDER BY c.name ASC
		`, minQuestions).
		Scan(&results).Error; err != nil {
		return nil, db.MapError("CategoryRepo.ListWithMinQuestions", err)
	}
	return results, nil
}
