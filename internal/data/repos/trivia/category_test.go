package trivia

import (
	"context"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/data/repos/testutil"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
)

func TestCategoryRepoCaseInsensitiveIdentity(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewCategoryRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	seeded := testutil.SeedCategory(t, dbc.Ctx, tx, "History")

	got, err := repo.GetByNameFold(dbc, "  hIsToRy ")
	if err != nil {
		t.Fatalf("GetByNameFold: %v", err)
	}
	if got.ID != seeded.ID {
		t.Fatalf("GetByNameFold: got id %d, want %d", got.ID, seeded.ID)
	}
	// Stored casing is first-seen.
	if got.Name != "History" {
		t.Fatalf("GetByNameFold: stored name mutated to %q", got.Name)
	}

	// A differently-cased duplicate violates the LOWER(name) index.
	err = repo.Create(dbc, &types.Category{Name: "history"})
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("differently-cased duplicate: expected conflict, got %v", err)
	}
}

func TestCategoryRepoListWithMinQuestions(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewCategoryRepo(gdb, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	rich := testutil.SeedCategory(t, dbc.Ctx, tx, "catrepo-rich")
	poor := testutil.SeedCategory(t, dbc.Ctx, tx, "catrepo-poor")

	for i := 0; i < 3; i++ {
		testutil.SeedCatalogQuestion(t, dbc.Ctx, tx, &rich.ID, "q", "a")
	}
	testutil.SeedCatalogQuestion(t, dbc.Ctx, tx, &poor.ID, "q", "a")

	counts, err := repo.ListWithMinQuestions(dbc, 3)
	if err != nil {
		t.Fatalf("ListWithMinQuestions: %v", err)
	}
	foundRich, foundPoor := false, false
	for _, c := range counts {
		if c.ID == rich.ID {
			foundRich = true
			if c.QuestionCount != 3 {
				t.Fatalf("rich category count = %d, want 3", c.QuestionCount)
			}
		}
		if c.ID == poor.ID {
			foundPoor = true
		}
	}
	if !foundRich {
		t.Fatalf("category with 3 questions missing from min=3 listing")
	}
	if foundPoor {
		t.Fatalf("category with 1 question should not pass min=3")
	}
}
