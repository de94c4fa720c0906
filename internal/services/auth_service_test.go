package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	authrepo "github.com/quizforge/quizforge-backend/internal/data/repos/auth"
	"github.com/quizforge/quizforge-backend/internal/data/repos/testutil"
	userrepo "github.com/quizforge/quizforge-backend/internal/data/repos/user"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/ctxutil"
)

func newAuthService(t *testing.T) AuthService {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	return NewAuthService(tx, log, userrepo.NewUserRepo(tx, log), authrepo.NewSessionRepo(tx, log), 7*24*time.Hour)
}

func TestAuthServiceRegisterLoginFlow(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	suffix := uuid.NewString()[:8]
	username := "quizmaster-" + suffix
	email := fmt.Sprintf("quizmaster-%s@example.com", suffix)

	session, err := svc.Register(ctx, username, email, "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if session.Token == "" || session.User == nil || session.User.Username != username {
		t.Fatalf("unexpected session: %+v", session)
	}
	if remaining := time.Until(session.ExpiresAt); remaining < 6*24*time.Hour {
		t.Fatalf("session should last a week, expires in %v", remaining)
	}

	if _, err := svc.Register(ctx, username, "other-"+email, "hunter2hunter2"); !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("expected conflict for taken username, got %v", err)
	}
	if _, err := svc.Register(ctx, "other-"+username, email, "hunter2hunter2"); !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("expected conflict for taken email, got %v", err)
	}

	// Login accepts either the username or the email.
	byName, err := svc.Login(ctx, username, "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login by username: %v", err)
	}
	byEmail, err := svc.Login(ctx, email, "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login by email: %v", err)
	}
	if byName.UserID != byEmail.UserID {
		t.Fatal("logins resolved different users")
	}
	if byEmail.User.LastLogin == nil {
		t.Fatal("login should stamp last_login")
	}

	if _, err := svc.Login(ctx, username, "wrong"); !apperr.IsCode(err, apperr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody-"+suffix, "whatever"); !apperr.IsCode(err, apperr.CodeUnauthorized) {
		t.Fatalf("unknown identifier must read as bad credentials, got %v", err)
	}

	authed, err := svc.Authenticate(ctx, session.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	rd := ctxutil.GetRequestData(authed)
	if rd == nil || rd.UserID != session.UserID || rd.User == nil {
		t.Fatalf("principal not attached: %+v", rd)
	}

	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, session.Token); !apperr.IsCode(err, apperr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized after logout, got %v", err)
	}
	// Logging out a token that no longer exists still succeeds.
	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("repeat Logout: %v", err)
	}
}

func TestAuthServiceRejectsBlankFields(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	cases := []struct{ username, email, password string }{
		{"", "a@example.com", "pw"},
		{"user", "", "pw"},
		{"user", "a@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(ctx, tc.username, tc.email, tc.password); !apperr.IsCode(err, apperr.CodeValidation) {
			t.Errorf("Register(%q, %q): expected validation error, got %v", tc.username, tc.email, err)
		}
	}
	if _, err := svc.Login(ctx, "", ""); !apperr.IsCode(err, apperr.CodeValidation) {
		t.Errorf("expected validation error for blank login, got %v", err)
	}
}
