package app

import (
	"github.com/quizforge/quizforge-backend/internal/data/db"
	"github.com/quizforge/quizforge-backend/internal/http/handlers"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Category *handlers.CategoryHandler
	Question *handlers.QuestionHandler
	Event    *handlers.EventHandler
	Round    *handlers.RoundHandler
	Health   *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, pg *db.PostgresService) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(log, serviceset.Auth),
		Category: handlers.NewCategoryHandler(log, serviceset.Category),
		Question: handlers.NewQuestionHandler(log, serviceset.Question),
		Event:    handlers.NewEventHandler(log, serviceset.Event),
		Round:    handlers.NewRoundHandler(log, serviceset.Round),
		Health:   handlers.NewHealthHandler(pg),
	}
}
