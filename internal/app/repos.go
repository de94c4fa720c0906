package app

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/repos"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

func wireRepos(db *gorm.DB, log *logger.Logger) repos.Repos {
	log.Info("Wiring repos...")
	return repos.New(db, log)
}
