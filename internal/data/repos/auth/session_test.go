package auth

import (
	"context"
	"testing"
	"time"

	"github.com/quizforge/quizforge-backend/internal/data/repos/testutil"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
)

func TestSessionRepoExpiryAtLookup(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewSessionRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx, "sessionrepo-ann")
	created := time.Now().UTC()
	s := testutil.SeedSession(t, dbc.Ctx, tx, u.ID, created.Add(7*24*time.Hour))

	// Accepted at T+6d.
	got, err := repo.GetActiveByToken(dbc, s.Token, created.Add(6*24*time.Hour))
	if err != nil {
		t.Fatalf("GetActiveByToken at T+6d: %v", err)
	}
	if got.User == nil || got.User.ID != u.ID {
		t.Fatalf("GetActiveByToken: owning user not eager-loaded: %+v", got.User)
	}

	// Rejected at T+8d with no sweeper having run.
	_, err = repo.GetActiveByToken(dbc, s.Token, created.Add(8*24*time.Hour))
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("GetActiveByToken at T+8d: expected not_found, got %v", err)
	}

	// The expired row is still physically present.
	var count int64
	if err := tx.Table("user_sessions").Where("token = ?", s.Token).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expired session row should persist, found %d rows", count)
	}
}

func TestSessionRepoDelete(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewSessionRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx, "sessionrepo-del")
	s := testutil.SeedSession(t, dbc.Ctx, tx, u.ID, time.Now().UTC().Add(time.Hour))

	if err := repo.DeleteByToken(dbc, s.Token); err != nil {
		t.Fatalf("DeleteByToken: %v", err)
	}
	_, err := repo.GetActiveByToken(dbc, s.Token, time.Now().UTC())
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("deleted token should not authenticate, got %v", err)
	}

	// Deleting an unknown token still succeeds.
	if err := repo.DeleteByToken(dbc, "never-issued"); err != nil {
		t.Fatalf("DeleteByToken (unknown): %v", err)
	}
}
