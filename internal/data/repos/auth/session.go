package auth

import (
	"time"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type SessionRepo interface {
	Create(dbc dbctx.Context, session *types.Session) error
	// GetActiveByToken returns the session with its owning user when the
	// token exists and has not expired as of now. Expired rows are left in
	// place; expiry is only ever checked here.
	GetActiveByToken(dbc dbctx.Context, token string, now time.Time) (*types.Session, error)
	DeleteByToken(dbc dbctx.Context, token string) error
	DeleteByUserID(dbc dbctx.Context, userID int64) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(gdb *gorm.DB, baseLog *logger.Logger) SessionRepo {
	repoLog := baseLog.With("repo", "SessionRepo")
	return &sessionRepo{db: gdb, log: repoLog}
}

func (sr *sessionRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return sr.db.WithContext(dbc.Ctx)
}

func (sr *sessionRepo) Create(dbc dbctx.Context, session *types.Session) error {
	if err := sr.handle(dbc).Create(session).Error; err != nil {
		return db.MapError("SessionRepo.Create", err)
	}
	return nil
}

func (sr *sessionRepo) GetActiveByToken(dbc dbctx.Context, token string, now time.Time) (*types.Session, error) {
	var result types.Session
	if err := sr.handle(dbc).
		Preload("User").
		Where("token = ? AND expires_at > ?", token, now).
		First(&result).Error; err != nil {
		return nil, db.MapError("SessionRepo.GetActiveByToken", err)
	}
	return &result, nil
}

func (sr *sessionRepo) DeleteByToken(dbc dbctx.Context, token string) error {
	if err := sr.handle(dbc).
		Where("token = ?", token).
		Delete(&types.Session{}).Error; err != nil {
		return db.MapError("SessionRepo.DeleteByToken", err)
	}
	return nil
}

func (sr *sessionRepo) DeleteByUserID(dbc dbctx.Context, userID int64) error {
	if err := sr.handle(dbc).
		Where("user_id = ?", userID).
		Delete(&types.Session{}).Error; err != nil {
		return db.MapError("SessionRepo.DeleteByUserID", err)
	}
	return nil
}
