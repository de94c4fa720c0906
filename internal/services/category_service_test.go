package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge-backend/internal/data/repos/testutil"
	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
)

func containsCategory(counts []*types.CategoryQuestionCount, id int64) bool {
	for _, cc := range counts {
		if cc.ID == id {
			return true
		}
	}
	return false
}

func TestCategoryServiceListActiveHonorsExplicitZero(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	svc := NewCategoryService(tx, log, triviarepo.NewCategoryRepo(tx, log))
	ctx := context.Background()

	sparse := testutil.SeedCategory(t, ctx, tx, "Sparse-"+uuid.NewString()[:8])
	testutil.SeedCatalogQuestion(t, ctx, tx, &sparse.ID, "Lone question?", "Yes")

	// min_questions=0 is a real threshold, not a request for the default 80.
	counts, err := svc.ListActive(ctx, 0)
	if err != nil {
		t.Fatalf("ListActive(0): %v", err)
	}
	if !containsCategory(counts, sparse.ID) {
		t.Fatalf("category with 1 question missing from ListActive(0): %+v", counts)
	}

	counts, err = svc.ListActive(ctx, 2)
	if err != nil {
		t.Fatalf("ListActive(2): %v", err)
	}
	if containsCategory(counts, sparse.ID) {
		t.Fatal("category with 1 question should not satisfy threshold 2")
	}

	// Negative values fall back to the default threshold.
	counts, err = svc.ListActive(ctx, -1)
	if err != nil {
		t.Fatalf("ListActive(-1): %v", err)
	}
	if containsCategory(counts, sparse.ID) {
		t.Fatal("negative threshold should apply the default of 80")
	}
}
