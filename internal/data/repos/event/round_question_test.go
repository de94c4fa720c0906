package event

import (
	"context"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/data/repos/testutil"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
)

func TestRoundQuestionRepoSingleSourceInvariant(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewRoundQuestionRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx, "rqrepo-ann")
	ev := testutil.SeedEvent(t, dbc.Ctx, tx, u.ID, "Quiz Night")
	rd := testutil.SeedRound(t, dbc.Ctx, tx, ev.ID, 1)
	cq := testutil.SeedCatalogQuestion(t, dbc.Ctx, tx, nil, "Capital of France?", "Paris")
	uq := testutil.SeedUserQuestion(t, dbc.Ctx, tx, u.ID, "House drink?", "Negroni")

	// Neither source set.
	err := repo.Create(dbc, &types.RoundQuestion{RoundID: rd.ID, QuestionNumber: 1})
	if !apperr.IsCode(err, apperr.CodeValidation) {
		t.Fatalf("neither source: expected validation, got %v", err)
	}

	// Both sources set.
	err = repo.Create(dbc, &types.RoundQuestion{
		RoundID:          rd.ID,
		QuestionNumber:   1,
		TriviaQuestionID: &cq.ID,
		UserQuestionID:   &uq.ID,
	})
	if !apperr.IsCode(err, apperr.CodeValidation) {
		t.Fatalf("both sources: expected validation, got %v", err)
	}

	// Exactly one source is accepted for each branch.
	if err := repo.Create(dbc, &types.RoundQuestion{
		RoundID:          rd.ID,
		QuestionNumber:   1,
		TriviaQuestionID: &cq.ID,
	}); err != nil {
		t.Fatalf("catalog source: %v", err)
	}
	if err := repo.Create(dbc, &types.RoundQuestion{
		RoundID:        rd.ID,
		QuestionNumber: 2,
		UserQuestionID: &uq.ID,
	}); err != nil {
		t.Fatalf("user source: %v", err)
	}

	// Duplicate question number within the round conflicts.
	err = repo.Create(dbc, &types.RoundQuestion{
		RoundID:          rd.ID,
		QuestionNumber:   2,
		TriviaQuestionID: &cq.ID,
	})
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("duplicate question number: expected conflict, got %v", err)
	}
}

func TestRoundQuestionRepoNormalizedProjection(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewRoundQuestionRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx, "rqrepo-norm")
	cat := testutil.SeedCategory(t, dbc.Ctx, tx, "rqrepo-geography")
	ev := testutil.SeedEvent(t, dbc.Ctx, tx, u.ID, "Norm Night")
	rd := testutil.SeedRound(t, dbc.Ctx, tx, ev.ID, 1)
	cq := testutil.SeedCatalogQuestion(t, dbc.Ctx, tx, &cat.ID, "Longest river?", "The Nile")
	uq := testutil.SeedUserQuestion(t, dbc.Ctx, tx, u.ID, "Owner's cat?", "Misha")

	if err := repo.Create(dbc, &types.RoundQuestion{RoundID: rd.ID, QuestionNumber: 1, TriviaQuestionID: &cq.ID}); err != nil {
		t.Fatalf("attach catalog: %v", err)
	}
	if err := repo.Create(dbc, &types.RoundQuestion{RoundID: rd.ID, QuestionNumber: 2, UserQuestionID: &uq.ID}); err != nil {
		t.Fatalf("attach user: %v", err)
	}

	max, err := repo.MaxQuestionNumber(dbc, rd.ID)
	if err != nil || max != 2 {
		t.Fatalf("MaxQuestionNumber: got (%d, %v), want (2, nil)", max, err)
	}

	normalized, err := repo.ListNormalizedByRound(dbc, rd.ID)
	if err != nil {
		t.Fatalf("ListNormalizedByRound: %v", err)
	}
	if len(normalized) != 2 {
		t.Fatalf("ListNormalizedByRound: got %d rows, want 2", len(normalized))
	}

	first := normalized[0]
	if first.QuestionType != types.QuestionSourceCatalog || first.QuestionID != cq.ID {
		t.Fatalf("slot 1: unexpected source %s / id %d", first.QuestionType, first.QuestionID)
	}
	if first.Question != "Longest river?" || first.Answer != "The Nile" {
		t.Fatalf("slot 1: content not projected: %+v", first)
	}
	if first.CategoryName != "rqrepo-geography" {
		t.Fatalf("slot 1: category name = %q", first.CategoryName)
	}

	second := normalized[1]
	if second.QuestionType != types.QuestionSourceUser || second.QuestionID != uq.ID {
		t.Fatalf("slot 2: unexpected source %s / id %d", second.QuestionType, second.QuestionID)
	}
	if second.CategoryName != "" {
		t.Fatalf("slot 2: expected empty category name, got %q", second.CategoryName)
	}
}
