package trivia

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type ImportRunRepo interface {
	Create(dbc dbctx.Context, run *types.ImportRun) error
	ListBySource(dbc dbctx.Context, source string) ([]*types.ImportRun, error)
}

type importRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewImportRunRepo(gdb *gorm.DB, baseLog *logger.Logger) ImportRunRepo {
	repoLog := baseLog.With("repo", "ImportRunRepo")
	return &importRunRepo{db: gdb, log: repoLog}
}

func (ir *importRunRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return ir.db.WithContext(dbc.Ctx)
}

func (ir *importRunRepo) Create(dbc dbctx.Context, run *types.ImportRun) error {
	if err := ir.handle(dbc).Create(run).Error; err != nil {
		return db.MapError("ImportRunRepo.Create", err)
	}
	return nil
}

func (ir *importRunRepo) ListBySource(dbc dbctx.Context, source string) ([]*types.ImportRun, error) {
	var results []*types.ImportRun
	if err := ir.handle(dbc).
		Where("source = ?", source).
		Order("started_at DESC").
		Find(&results).Error; err != nil {
		return nil, db.MapError("ImportRunRepo.ListBySource", err)
	}
	return results, nil
}
