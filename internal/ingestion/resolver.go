package ingestion

import (
	"strings"

	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
)

// CategoryResolver is a per-run, case-insensitive name -> id cache with
// get-or-create semantics. Construct one per import run; it is not safe for
// concurrent use and must not outlive its transaction.
type CategoryResolver struct {
	repo    triviarepo.CategoryRepo
	cache   map[string]int64
	created int
}

func NewCategoryResolver(repo triviarepo.CategoryRepo) *CategoryResolver {
	return &CategoryResolver{repo: repo, cache: map[string]int64{}}
}

// Resolve returns the id for name, creating the category when it does not
// exist. A unique-violation race on create re-reads the winner's row.
func (cr *CategoryResolver) Resolve(dbc dbctx.Context, name string) (int64, error) {
	const op = "CategoryResolver.Resolve"

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, apperr.New(apperr.CodeValidation, op, "category name is required", nil)
	}
	key := strings.ToLower(trimmed)
	if id, ok := cr.cache[key]; ok {
		return id, nil
	}

	existing, err := cr.repo.GetByNameFold(dbc, trimmed)
	if err == nil {
		cr.cache[key] = existing.ID
		return existing.ID, nil
	}
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		return 0, err
	}

	category := &types.Category{Name: trimmed}
	if createErr := cr.repo.Create(dbc, category); createErr != nil {
		if !apperr.IsCode(createErr, apperr.CodeConflict) {
			return 0, createErr
		}
		winner, readErr := cr.repo.GetByNameFold(dbc, trimmed)
		if readErr != nil {
			return 0, readErr
		}
		cr.cache[key] = winner.ID
		return winner.ID, nil
	}
	cr.created++
	cr.cache[key] = category.ID
	return category.ID, nil
}

// Created reports how many categories this run inserted.
func (cr *CategoryResolver) Created() int { return cr.created }
