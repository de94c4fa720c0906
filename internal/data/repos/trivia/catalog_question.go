package trivia

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type CatalogQuestionRepo interface {
	CreateBatch(dbc dbctx.Context, questions []*types.CatalogQuestion) error
	GetByID(dbc dbctx.Context, questionID int64) (*types.CatalogQuestion, error)
	// Random returns one random active catalog question matching the filter.
	Random(dbc dbctx.Context, filter types.QuestionFilter) (*types.CatalogQuestion, error)
	// RandomByCategory samples up to count random active questions from one
	// category.
	RandomByCategory(dbc dbctx.Context, categoryID int64, count int) ([]*types.CatalogQuestion, error)
	CountByCategory(dbc dbctx.Context, categoryID int64) (int64, error)
}

type catalogQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCatalogQuestionRepo(gdb *gorm.DB, baseLog *logger.Logger) CatalogQuestionRepo {
	repoLog := baseLog.With("repo", "CatalogQuestionRepo")
	return &catalogQuestionRepo{db: gdb, log: repoLog}
}

func (qr *catalogQuestionRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return qr.db.WithContext(dbc.Ctx)
}

func (qr *catalogQuestionRepo) CreateBatch(dbc dbctx.Context, questions []*types.CatalogQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	if err := qr.handle(dbc).CreateInBatches(questions, 500).Error; err != nil {
		return db.MapError("CatalogQuestionRepo.CreateBatch", err)
	}
	return nil
}

func (qr *catalogQuestionRepo) GetByID(dbc dbctx.Context, questionID int64) (*types.CatalogQuestion, error) {
	var result types.CatalogQuestion
	if err := qr.handle(dbc).
		Preload("Category").
		Where("id = ?", questionID).
		First(&result).Error; err != nil {
		return nil, db.MapError("CatalogQuestionRepo.GetByID", err)
	}
	return &result, nil
}

func (qr *catalogQuestionRepo) Random(dbc dbctx.Context, filter types.QuestionFilter) (*types.CatalogQuestion, error) {
	query := qr.handle(dbc).
		Preload("Category").
		Where("status = ?", types.QuestionStatusActive)
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	var result types.CatalogQuestion
	if err := query.
		Order("RANDOM()").
		First(&result).Error; err != nil {
		return nil, db.MapError("CatalogQuestionRepo.Random", err)
	}
	return &result, nil
}

func (qr *catalogQuestionRepo) RandomByCategory(dbc dbctx.Context, categoryID int64, count int) ([]*types.CatalogQuestion, error) {
	var results []*types.CatalogQuestion
	if err := qr.handle(dbc).
		Preload("Category").
		Where("category_id = ? AND status = ?", categoryID, types.QuestionStatusActive).
		Order("RANDOM()").
		Limit(count).
		Find(&results).Error; err != nil {
		return nil, db.MapError("CatalogQuestionRepo.RandomByCategory", err)
	}
	return results, nil
}

func (qr *catalogQuestionRepo) CountByCategory(dbc dbctx.Context, categoryID int64) (int64, error) {
	var count int64
	if err := qr.handle(dbc).
		Model(&types.CatalogQuestion{}).
		Where("category_id = ? AND status = ?", categoryID, types.QuestionStatusActive).
		Count(&count).Error; err != nil {
		return 0, db.MapError("CatalogQuestionRepo.CountByCategory", err)
	}
	return count, nil
}
