package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	authrepo "github.com/quizforge/quizforge-backend/internal/data/repos/auth"
	userrepo "github.com/quizforge/quizforge-backend/internal/data/repos/user"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/ctxutil"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/utils"
)

type AuthService interface {
	// Register creates the user and immediately issues a session for them.
	Register(ctx context.Context, username, email, password string) (*types.Session, error)
	// Login accepts a username or an email as identifier.
	Login(ctx context.Context, identifier, password string) (*types.Session, error)
	// Logout deletes the session row; an unknown token still succeeds.
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a bearer token to an unexpired session and
	// returns a context carrying the principal.
	Authenticate(ctx context.Context, token string) (context.Context, error)
	SessionTTL() time.Duration
}

type authService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    userrepo.UserRepo
	sessionRepo authrepo.SessionRepo
	sessionTTL  time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	sessionRepo authrepo.SessionRepo,
	sessionTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

func (as *authService) SessionTTL() time.Duration { return as.sessionTTL }

func (as *authService) Register(ctx context.Context, username, email, password string) (*types.Session, error) {
	const op = "AuthService.Register"

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "username is required", nil)
	}
	if email == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "email is required", nil)
	}
	if password == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "password is required", nil)
	}

	taken, err := as.userRepo.UsernameExists(dbctx.Context{Ctx: ctx}, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.New(apperr.CodeConflict, op, "username is already in use", nil)
	}
	taken, err = as.userRepo.EmailExists(dbctx.Context{Ctx: ctx}, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.New(apperr.CodeConflict, op, "email is already in use", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, op, err)
	}

	var session *types.Session
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		user := &types.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		}
		if err := as.userRepo.Create(dbc, user); err != nil {
			return err
		}
		created, err := as.issueSession(dbc, user)
		if err != nil {
			return err
		}
		session = created
		return nil
	}); err != nil {
		return nil, err
	}

	as.log.Info("user registered", "user_id", session.UserID)
	return session, nil
}

func (as *authService) Login(ctx context.Context, identifier, password string) (*types.Session, error) {
	const op = "AuthService.Login"

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperr.New(apperr.CodeValidation, op, "username and password are required", nil)
	}

	user, err := as.userRepo.GetByIdentifier(dbctx.Context{Ctx: ctx}, identifier)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.New(apperr.CodeUnauthorized, op, "invalid credentials", nil)
	}

	var session *types.Session
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		created, err := as.issueSession(dbc, user)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := as.userRepo.UpdateLastLogin(dbc, user.ID, now); err != nil {
			return err
		}
		user.LastLogin = &now
		session = created
		return nil
	}); err != nil {
		return nil, err
	}

	as.log.Info("user logged in", "user_id", user.ID)
	return session, nil
}

func (as *authService) Logout(ctx context.Context, token string) error {
	return as.sessionRepo.DeleteByToken(dbctx.Context{Ctx: ctx}, token)
}

func (as *authService) Authenticate(ctx context.Context, token string) (context.Context, error) {
	const op = "AuthService.Authenticate"

	session, err := as.sessionRepo.GetActiveByToken(dbctx.Context{Ctx: ctx}, token, time.Now().UTC())
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeUnauthorized, op, "invalid or expired session", nil)
		}
		return nil, err
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:    session.UserID,
		SessionID: session.ID,
		Token:     token,
		User:      session.User,
	}), nil
}

func (as *authService) issueSession(dbc dbctx.Context, user *types.User) (*types.Session, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "AuthService.issueSession", err)
	}
	session := &types.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(as.sessionTTL),
	}
	if err := as.sessionRepo.Create(dbc, session); err != nil {
		return nil, err
	}
	session.User = user
	return session, nil
}
