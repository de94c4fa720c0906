package app

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/repos"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Category services.CategoryService
	Question services.QuestionService
	Event    services.EventService
	Round    services.RoundService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet repos.Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(db, log, reposet.User, reposet.Session, cfg.SessionTTL),
		Category: services.NewCategoryService(db, log, reposet.Category),
		Question: services.NewQuestionService(db, log, reposet.CatalogQuestion, reposet.UserQuestion, reposet.Category),
		Event:    services.NewEventService(db, log, reposet.Event, reposet.Round, reposet.RoundQuestion),
		Round:    services.NewRoundService(db, log, reposet.Event, reposet.Round, reposet.RoundQuestion, reposet.CatalogQuestion, reposet.UserQuestion),
	}
}
