package event

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type RoundRepo interface {
	Create(dbc dbctx.Context, round *types.Round) error
	GetByID(dbc dbctx.Context, roundID int64) (*types.Round, error)
	ListByEvent(dbc dbctx.Context, eventID int64) ([]*types.Round, error)
	// MaxRoundNumber returns 0 for an event with no rounds. Soft-deleted
	// rounds still count so their numbers are never reissued.
	MaxRoundNumber(dbc dbctx.Context, eventID int64) (int, error)
	SoftDelete(dbc dbctx.Context, roundID int64) error
}

type roundRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoundRepo(gdb *gorm.DB, baseLog *logger.Logger) RoundRepo {
	repoLog := baseLog.With("repo", "RoundRepo")
	return &roundRepo{db: gdb, log: repoLog}
}

func (rr *roundRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return rr.db.WithContext(dbc.Ctx)
}

func (rr *roundRepo) Create(dbc dbctx.Context, round *types.Round) error {
	if err := rr.handle(dbc).Create(round).Error; err != nil {
		return db.MapError("RoundRepo.Create", err)
	}
	return nil
}

func (rr *roundRepo) GetByID(dbc dbctx.Context, roundID int64) (*types.Round, error) {
	var result types.Round
	if err := rr.handle(dbc).
		Where("id = ? AND is_deleted = false", roundID).
		First(&result).Error; err != nil {
		return nil, db.MapError("RoundRepo.GetByID", err)
	}
	return &result, nil
}

func (rr *roundRepo) ListByEvent(dbc dbctx.Context, eventID int64) ([]*types.Round, error) {
	var results []*types.Round
	if err := rr.handle(dbc).
		Where("event_id = ? AND is_deleted = false", eventID).
		Order("round_number ASC").
		Find(&results).Error; err != nil {
		return nil, db.MapError("RoundRepo.ListByEvent", err)
	}
	return results, nil
}

func (rr *roundRepo) MaxRoundNumber(dbc dbctx.Context, eventID int64) (int, error) {
	var max int
	if err := rr.handle(dbc).
		Model(&types.Round{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(MAX(round_number), 0)").
		Scan(&max).Error; err != nil {
		return 0, db.MapError("RoundRepo.MaxRoundNumber", err)
	}
	return max, nil
}

func (rr *roundRepo) SoftDelete(dbc dbctx.Context, roundID int64) error {
	if err := rr.handle(dbc).
		Model(&types.Round{}).
		Where("id = ?", roundID).
		Update("is_deleted", true).Error; err != nil {
		return db.MapError("RoundRepo.SoftDelete", err)
	}
	return nil
}
