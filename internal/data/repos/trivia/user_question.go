package trivia

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type UserQuestionRepo interface {
	Create(dbc dbctx.Context, question *types.UserGeneratedQuestion) error
	GetByID(dbc dbctx.Context, questionID int64) (*types.UserGeneratedQuestion, error)
	ListByCreator(dbc dbctx.Context, userID int64) ([]*types.UserGeneratedQuestion, error)
}

type userQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserQuestionRepo(gdb *gorm.DB, baseLog *logger.Logger) UserQuestionRepo {
	repoLog := baseLog.With("repo", "UserQuestionRepo")
	return &userQuestionRepo{db: gdb, log: repoLog}
}

func (uq *userQuestionRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return uq.db.WithContext(dbc.Ctx)
}

func (uq *userQuestionRepo) Create(dbc dbctx.Context, question *types.UserGeneratedQuestion) error {
	if err := uq.handle(dbc).Create(question).Error; err != nil {
		return db.MapError("UserQuestionRepo.Create", err)
	}
	return nil
}

func (uq *userQuestionRepo) GetByID(dbc dbctx.Context, questionID int64) (*types.UserGeneratedQuestion, error) {
	var result types.UserGeneratedQuestion
	if err := uq.handle(dbc).
		Preload("Category").
		Where("id = ? AND is_deleted = false", questionID).
		First(&result).Error; err != nil {
		return nil, db.MapError("UserQuestionRepo.GetByID", err)
	}
	return &result, nil
}

func (uq *userQuestionRepo) ListByCreator(dbc dbctx.Context, userID int64) ([]*types.UserGeneratedQuestion, error) {
	var results []*types.UserGeneratedQuestion
	if err := uq.handle(dbc).
		Where("created_by = ? AND is_deleted = false", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, db.MapError("UserQuestionRepo.ListByCreator", err)
	}
	return results, nil
}
