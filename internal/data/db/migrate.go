package db

import (
	"fmt"

	types "github.com/quizforge/quizforge-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Identity + sessions
		// =========================
		&types.User{},
		&types.Session{},

		// =========================
		// Question catalog
		// =========================
		&types.Category{},
		&types.CatalogQuestion{},
		&types.UserGeneratedQuestion{},
		&types.ImportRun{},

		// =========================
		// Events + rounds
		// =========================
		&types.Event{},
		&types.Round{},
		&types.RoundQuestion{},
	)
}

// EnsureTriviaIndexes installs the constraints AutoMigrate cannot express:
// case-insensitive category uniqueness, the round-question XOR CHECK, and
// partial indexes routing the is_deleted filters.
func EnsureTriviaIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_lower
		ON categories (LOWER(name));
	`).Error; err != nil {
		return fmt.Errorf("create idx_categories_name_lower: %w", err)
	}

	if err := db.Exec(`
		DO $$ BEGIN
			ALTER TABLE round_questions
			ADD CONSTRAINT chk_round_questions_single_source
			CHECK ((trivia_question_id IS NULL) <> (user_question_id IS NULL));
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$;
	`).Error; err != nil {
		return fmt.Errorf("create chk_round_questions_single_source: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_owner_active
		ON events (created_by, created_at DESC)
		WHERE is_deleted = false;
	`).Error; err != nil {
		return fmt.Errorf("create idx_events_owner_active: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_rounds_event_active
		ON rounds (event_id, round_number)
		WHERE is_deleted = false;
	`).Error; err != nil {
		return fmt.Errorf("create idx_rounds_event_active: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trivia_questions_category_active
		ON trivia_questions (category_id)
		WHERE status = 'active';
	`).Error; err != nil {
		return fmt.Errorf("create idx_trivia_questions_category_active: %w", err)
	}

	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureTriviaIndexes(s.db); err != nil {
		s.log.Error("Trivia index migration failed", "error", err)
		return err
	}
	return nil
}
