package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, user *types.User) error
	GetByID(dbc dbctx.Context, userID int64) (*types.User, error)
	GetByIdentifier(dbc dbctx.Context, identifier string) (*types.User, error)
	UsernameExists(dbc dbctx.Context, username string) (bool, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
	UpdateLastLogin(dbc dbctx.Context, userID int64, at time.Time) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(gdb *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: gdb, log: repoLog}
}

func (ur *userRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return ur.db.WithContext(dbc.Ctx)
}

func (ur *userRepo) Create(dbc dbctx.Context, user *types.User) error {
	if err := ur.handle(dbc).Create(user).Error; err != nil {
		return db.MapError("UserRepo.Create", err)
	}
	return nil
}

func (ur *userRepo) GetByID(dbc dbctx.Context, userID int64) (*types.User, error) {
	var result types.User
	if err := ur.handle(dbc).
		Where("id = ?", userID).
		First(&result).Error; err != nil {
		return nil, db.MapError("UserRepo.GetByID", err)
	}
	return &result, nil
}

// GetByIdentifier resolves a login identifier that may be either a username
// or an email address.
func (ur *userRepo) GetByIdentifier(dbc dbctx.Context, identifier string) (*types.User, error) {
	var result types.User
	if err := ur.handle(dbc).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&result).Error; err != nil {
		return nil, db.MapError("UserRepo.GetByIdentifier", err)
	}
	return &result, nil
}

func (ur *userRepo) UsernameExists(dbc dbctx.Context, username string) (bool, error) {
	var count int64
	if err := ur.handle(dbc).
		Model(&types.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, db.MapError("UserRepo.UsernameExists", err)
	}
	return count > 0, nil
}

func (ur *userRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	var count int64
	if err := ur.handle(dbc).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, db.MapError("UserRepo.EmailExists", err)
	}
	return count > 0, nil
}

func (ur *userRepo) UpdateLastLogin(dbc dbctx.Context, userID int64, at time.Time) error {
	if err := ur.handle(dbc).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("last_login", at).Error; err != nil {
		return db.MapError("UserRepo.UpdateLastLogin", err)
	}
	return nil
}
