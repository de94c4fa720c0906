package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/quizforge/quizforge-backend/internal/domain"
)

// uniqueSuffix keeps fixture usernames/emails/categories from colliding when
// a test seeds more than once inside a shared transaction.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *types.User {
	tb.Helper()
	u := &types.User{
		Username:     username,
		Email:        fmt.Sprintf("%s-%s@example.com", username, uniqueSuffix()),
		PasswordHash: "$2a$10$fixturefixturefixturefixturefixt",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64, expiresAt time.Time) *types.Session {
	tb.Helper()
	s := &types.Session{
		UserID:    userID,
		Token:     "tok-" + uuid.New().String(),
		ExpiresAt: expiresAt,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := &types.Category{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedCatalogQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, categoryID *int64, question, answer string) *types.CatalogQuestion {
	tb.Helper()
	q := &types.CatalogQuestion{
		Question:   question,
		Answer:     answer,
		CategoryID: categoryID,
		Difficulty: types.DifficultyMedium,
		Status:     types.QuestionStatusActive,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed catalog question: %v", err)
	}
	return q
}

func SeedUserQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, createdBy int64, question, answer string) *types.UserGeneratedQuestion {
	tb.Helper()
	q := &types.UserGeneratedQuestion{
		Question:   question,
		Answer:     answer,
		Difficulty: types.DifficultyMedium,
		CreatedBy:  createdBy,
		Status:     types.QuestionStatusActive,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed user question: %v", err)
	}
	return q
}

func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, createdBy int64, name string) *types.Event {
	tb.Helper()
	e := &types.Event{
		Name:      name,
		Status:    types.EventStatusDraft,
		CreatedBy: createdBy,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return e
}

func SeedRound(tb testing.TB, ctx context.Context, tx *gorm.DB, eventID int64, number int) *types.Round {
	tb.Helper()
	r := &types.Round{
		EventID:     eventID,
		RoundNumber: number,
		Name:        fmt.Sprintf("Round %d", number),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed round: %v", err)
	}
	return r
}
