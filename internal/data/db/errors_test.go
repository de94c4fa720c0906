package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
)

func TestMapErrorNil(t *testing.T) {
	if MapError("op", nil) != nil {
		t.Fatalf("MapError(nil) should be nil")
	}
}

func TestMapErrorRecordNotFound(t *testing.T) {
	err := MapError("EventRepo.GetByID", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound))
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestMapErrorPgCodes(t *testing.T) {
	cases := []struct {
		pgCode string
		want   apperr.Code
	}{
		{"23505", apperr.CodeConflict},
		{"23503", apperr.CodeValidation},
		{"23514", apperr.CodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.pgCode, func(t *testing.T) {
			err := MapError("RoundRepo.Create", &pgconn.PgError{Code: tc.pgCode, Message: "constraint"})
			if !apperr.IsCode(err, tc.want) {
				t.Fatalf("pg code %s mapped to %v, want %s", tc.pgCode, err, tc.want)
			}
		})
	}
}

func TestMapErrorPassesThroughAppErrors(t *testing.T) {
	orig := apperr.New(apperr.CodeForbidden, "EventService.Delete", "not your event", nil)
	if got := MapError("outer", orig); got != orig {
		t.Fatalf("apperr values should pass through unchanged, got %v", got)
	}
}

func TestMapErrorDuplicateKeyFallback(t *testing.T) {
	err := MapError("UserRepo.Create", errors.New(`duplicate key value violates unique constraint "idx_users_username"`))
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMapErrorUnknownIsInternal(t *testing.T) {
	err := MapError("op", errors.New("connection reset"))
	if !apperr.IsCode(err, apperr.CodeInternal) {
		t.Fatalf("expected internal, got %v", err)
	}
}
