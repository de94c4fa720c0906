package event

import (
	"context"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/data/repos/testutil"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
)

func TestRoundRepoNumbering(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewRoundRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx, "roundrepo-ann")
	ev := testutil.SeedEvent(t, dbc.Ctx, tx, u.ID, "Numbering Night")

	max, err := repo.MaxRoundNumber(dbc, ev.ID)
	if err != nil || max != 0 {
		t.Fatalf("MaxRoundNumber (fresh event): got (%d, %v), want (0, nil)", max, err)
	}

	for want := 1; want <= 3; want++ {
		max, err := repo.MaxRoundNumber(dbc, ev.ID)
		if err != nil {
			t.Fatalf("MaxRoundNumber: %v", err)
		}
		r := &types.Round{EventID: ev.ID, RoundNumber: max + 1, Name: "Round"}
		if err := repo.Create(dbc, r); err != nil {
			t.Fatalf("Create round %d: %v", want, err)
		}
		if r.RoundNumber != want {
			t.Fatalf("round %d assigned number %d", want, r.RoundNumber)
		}
	}

	// The composite unique index rejects a duplicate number.
	err = repo.Create(dbc, &types.Round{EventID: ev.ID, RoundNumber: 2, Name: "dup"})
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("duplicate round number: expected conflict, got %v", err)
	}
}

func TestRoundRepoSoftDelete(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewRoundRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx, "roundrepo-del")
	ev := testutil.SeedEvent(t, dbc.Ctx, tx, u.ID, "Delete Night")
	r1 := testutil.SeedRound(t, dbc.Ctx, tx, ev.ID, 1)
	testutil.SeedRound(t, dbc.Ctx, tx, ev.ID, 2)

	if err := repo.SoftDelete(dbc, r1.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	_, err := repo.GetByID(dbc, r1.ID)
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("soft-deleted round should read as not_found, got %v", err)
	}

	rounds, err := repo.ListByEvent(dbc, ev.ID)
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(rounds) != 1 || rounds[0].RoundNumber != 2 {
		t.Fatalf("ListByEvent should hide the deleted round: %+v", rounds)
	}

	// Deleted numbers are not reissued.
	max, err := repo.MaxRoundNumber(dbc, ev.ID)
	if err != nil || max != 2 {
		t.Fatalf("MaxRoundNumber after delete: got (%d, %v), want (2, nil)", max, err)
	}

	// Row persists in storage.
	var count int64
	if err := tx.Table("rounds").Where("id = ?", r1.ID).Count(&count).Error; err != nil {
		t.Fatalf("count rounds: %v", err)
	}
	if count != 1 {
		t.Fatalf("soft-deleted round row should persist, found %d", count)
	}
}
