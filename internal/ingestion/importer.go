package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type Source string

const (
	SourceAnki     Source = "anki"
	SourceOpenTDB  Source = "opentdb"
	SourceJeopardy Source = "jeopardy"
)

func ParseSource(raw string) (Source, bool) {
	switch Source(strings.ToLower(strings.TrimSpace(raw))) {
	case SourceAnki:
		return SourceAnki, true
	case SourceOpenTDB:
		return SourceOpenTDB, true
	case SourceJeopardy:
		return SourceJeopardy, true
	default:
		return "", false
	}
}

// DefaultAnkiCategory applies when the -category flag is absent.
const DefaultAnkiCategory = "General Knowledge"

// Options carries the anki-only flags; the other sources embed category and
// difficulty per row.
type Options struct {
	Category   string
	Difficulty types.Difficulty
}

type Importer struct {
	db            *gorm.DB
	log           *logger.Logger
	categoryRepo  triviarepo.CategoryRepo
	catalogRepo   triviarepo.CatalogQuestionRepo
	importRunRepo triviarepo.ImportRunRepo
}

func NewImporter(
	db *gorm.DB,
	log *logger.Logger,
	categoryRepo triviarepo.CategoryRepo,
	catalogRepo triviarepo.CatalogQuestionRepo,
	importRunRepo triviarepo.ImportRunRepo,
) *Importer {
	importerLog := log.With("component", "Importer")
	return &Importer{
		db:            db,
		log:           importerLog,
		categoryRepo:  categoryRepo,
		catalogRepo:   catalogRepo,
		importRunRepo: importRunRepo,
	}
}

// ImportFile parses one file and loads it in a single transaction, writing
// the ImportRun audit row alongside the questions. A fresh CategoryResolver
// scopes the name cache to this run.
func (imp *Importer) ImportFile(ctx context.Context, source Source, path string, opts Options) (*types.ImportRun, error) {
	const op = "Importer.ImportFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.New(apperr.CodeValidation, op, fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	startedAt := time.Now().UTC()
	rows, skipped, parseErr := imp.parse(f, source, opts)
	if parseErr != nil {
		return nil, apperr.New(apperr.CodeValidation, op, fmt.Sprintf("cannot parse %s", path), parseErr)
	}

	run := &types.ImportRun{
		Source:    string(source),
		File:      path,
		Skipped:   skipped,
		StartedAt: startedAt,
	}
	err = imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		resolver := NewCategoryResolver(imp.categoryRepo)

		questions := make([]*types.CatalogQuestion, 0, len(rows))
		for _, row := range rows {
			categoryID, resolveErr := resolver.Resolve(dbc, row.Category)
			if resolveErr != nil {
				return resolveErr
			}
			catID := categoryID
			questions = append(questions, &types.CatalogQuestion{
				Question:      row.Question,
				Answer:        row.Answer,
				CategoryID:    &catID,
				Difficulty:    row.Difficulty,
				AirDate:       row.AirDate,
				OriginalValue: row.OriginalValue,
				OriginalRound: row.OriginalRound,
				Status:        types.QuestionStatusActive,
			})
		}
		if len(questions) > 0 {
			if createErr := imp.catalogRepo.CreateBatch(dbc, questions); createErr != nil {
				return createErr
			}
		}

		run.QuestionsAdded = len(questions)
		run.CategoriesAdded = resolver.Created()
		run.FinishedAt = time.Now().UTC()
		stats, _ := json.Marshal(map[string]any{
			"rows_parsed": len(rows) + skipped,
			"skipped":     skipped,
			"duration_ms": run.FinishedAt.Sub(startedAt).Milliseconds(),
		})
		run.Stats = stats
		return imp.importRunRepo.Create(dbc, run)
	})
	if err != nil {
		imp.log.Error("import failed", "source", source, "file", path, "error", err)
		return nil, err
	}
	imp.log.Info("import finished",
		"source", source,
		"file", path,
		"questions_added", run.QuestionsAdded,
		"categories_added", run.CategoriesAdded,
		"skipped", run.Skipped,
	)
	return run, nil
}

func (imp *Importer) parse(f *os.File, source Source, opts Options) ([]Row, int, error) {
	switch source {
	case SourceAnki:
		category := strings.TrimSpace(opts.Category)
		if category == "" {
			category = DefaultAnkiCategory
		}
		difficulty := opts.Difficulty
		if difficulty == "" {
			difficulty = types.DifficultyMedium
		}
		return ParseAnki(f, category, difficulty)
	case SourceOpenTDB:
		return ParseOpenTDB(f)
	case SourceJeopardy:
		return ParseJeopardy(f)
	default:
		return nil, 0, fmt.Errorf("unknown source %q", source)
	}
}
