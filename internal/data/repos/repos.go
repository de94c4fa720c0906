package repos

import (
	"gorm.io/gorm"

	authrepo "github.com/quizforge/quizforge-backend/internal/data/repos/auth"
	eventrepo "github.com/quizforge/quizforge-backend/internal/data/repos/event"
	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	userrepo "github.com/quizforge/quizforge-backend/internal/data/repos/user"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type Repos struct {
	User            userrepo.UserRepo
	Session         authrepo.SessionRepo
	Category        triviarepo.CategoryRepo
	CatalogQuestion triviarepo.CatalogQuestionRepo
	UserQuestion    triviarepo.UserQuestionRepo
	ImportRun       triviarepo.ImportRunRepo
	Event           eventrepo.EventRepo
	Round           eventrepo.RoundRepo
	RoundQuestion   eventrepo.RoundQuestionRepo
}

func New(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:            userrepo.NewUserRepo(db, log),
		Session:         authrepo.NewSessionRepo(db, log),
		Category:        triviarepo.NewCategoryRepo(db, log),
		CatalogQuestion: triviarepo.NewCatalogQuestionRepo(db, log),
		UserQuestion:    triviarepo.NewUserQuestionRepo(db, log),
		ImportRun:       triviarepo.NewImportRunRepo(db, log),
		Event:           eventrepo.NewEventRepo(db, log),
		Round:           eventrepo.NewRoundRepo(db, log),
		RoundQuestion:   eventrepo.NewRoundQuestionRepo(db, log),
	}
}
