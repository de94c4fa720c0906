package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/ingestion"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/utils"
)

func main() {
	sourceFlag := flag.String("source", "", "import source: anki, opentdb or jeopardy")
	categoryFlag := flag.String("category", ingestion.DefaultAnkiCategory, "fixed category for anki imports")
	difficultyFlag := flag.String("difficulty", string(types.DifficultyMedium), "fixed difficulty for anki imports")
	flag.Parse()

	files := flag.Args()
	if *sourceFlag == "" || len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ingest -source anki|opentdb|jeopardy [-category NAME] [-difficulty easy|medium|hard] file...")
		os.Exit(2)
	}
	source, ok := ingestion.ParseSource(*sourceFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown source %q\n", *sourceFlag)
		os.Exit(2)
	}
	difficulty, ok := types.ParseDifficulty(*difficultyFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", *difficultyFlag)
		os.Exit(2)
	}

	_ = godotenv.Load()

	log, err := logger.New(utils.GetEnv("LOG_MODE", "development", nil))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	gdb := pg.DB()

	importer := ingestion.NewImporter(
		gdb,
		log,
		triviarepo.NewCategoryRepo(gdb, log),
		triviarepo.NewCatalogQuestionRepo(gdb, log),
		triviarepo.NewImportRunRepo(gdb, log),
	)
	opts := ingestion.Options{Category: *categoryFlag, Difficulty: difficulty}

	// One goroutine per file; each file runs in its own transaction with its
	// own category cache.
	g, ctx := errgroup.WithContext(context.Background())
	for _, path := range files {
		path := path
		g.Go(func() error {
			run, importErr := importer.ImportFile(ctx, source, path, opts)
			if importErr != nil {
				return fmt.Errorf("%s: %w", path, importErr)
			}
			fmt.Printf("%s: %d questions, %d new categories, %d skipped\n",
				path, run.QuestionsAdded, run.CategoriesAdded, run.Skipped)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Import failed", "error", err)
		os.Exit(1)
	}
}
