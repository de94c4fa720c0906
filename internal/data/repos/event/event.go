package event

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type EventRepo interface {
	Create(dbc dbctx.Context, event *types.Event) error
	// GetByID returns the event regardless of owner, filtering soft-deleted
	// rows. Ownership is the service's concern: existence decides 404 before
	// ownership decides 403.
	GetByID(dbc dbctx.Context, eventID int64) (*types.Event, error)
	ListByOwner(dbc dbctx.Context, userID int64, status types.EventStatus) ([]*types.Event, error)
	Save(dbc dbctx.Context, event *types.Event) error
	SoftDelete(dbc dbctx.Context, eventID int64) error
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(gdb *gorm.DB, baseLog *logger.Logger) EventRepo {
	repoLog := baseLog.With("repo", "EventRepo")
	return &eventRepo{db: gdb, log: repoLog}
}

func (er *eventRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return er.db.WithContext(dbc.Ctx)
}

func (er *eventRepo) Create(dbc dbctx.Context, event *types.Event) error {
	if err := er.handle(dbc).Create(event).Error; err != nil {
		return db.MapError("EventRepo.Create", err)
	}
	return nil
}

func (er *eventRepo) GetByID(dbc dbctx.Context, eventID int64) (*types.Event, error) {
	var result types.Event
	if err := er.handle(dbc).
		Where("id = ? AND is_deleted = false", eventID).
		First(&result).Error; err != nil {
		return nil, db.MapError("EventRepo.GetByID", err)
	}
	return &result, nil
}

func (er *eventRepo) ListByOwner(dbc dbctx.Context, userID int64, status types.EventStatus) ([]*types.Event, error) {
	query := er.handle(dbc).
		Where("created_by = ? AND is_deleted = false", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var results []*types.Event
	if err := query.
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, db.MapError("EventRepo.ListByOwner", err)
	}
	return results, nil
}

func (er *eventRepo) Save(dbc dbctx.Context, event *types.Event) error {
	if err := er.handle(dbc).Save(event).Error; err != nil {
		return db.MapError("EventRepo.Save", err)
	}
	return nil
}

func (er *eventRepo) SoftDelete(dbc dbctx.Context, eventID int64) error {
	if err := er.handle(dbc).
		Model(&types.Event{}).
		Where("id = ?", eventID).
		Update("is_deleted", true).Error; err != nil {
		return db.MapError("EventRepo.SoftDelete", err)
	}
	return nil
}
