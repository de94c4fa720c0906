package event

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-backend/internal/data/db"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type RoundQuestionRepo interface {
	Create(dbc dbctx.Context, rq *types.RoundQuestion) error
	MaxQuestionNumber(dbc dbctx.Context, roundID int64) (int, error)
	// ListNormalizedByRound resolves each slot to its playable content via a
	// read-only SQL projection over whichever question table is populated.
	ListNormalizedByRound(dbc dbctx.Context, roundID int64) ([]*types.NormalizedQuestion, error)
}

type roundQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoundQuestionRepo(gdb *gorm.DB, baseLog *logger.Logger) RoundQuestionRepo {
	repoLog := baseLog.With("repo", "RoundQuestionRepo")
	return &roundQuestionRepo{db: gdb, log: repoLog}
}

func (rq *roundQuestionRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return rq.db.WithContext(dbc.Ctx)
}

func (rq *roundQuestionRepo) Create(dbc dbctx.Context, row *types.RoundQuestion) error {
	// The DB CHECK backs this up, but reject invalid rows before they reach
	// the driver so the caller gets a validation error, not a mapped 23514.
	if _, err := types.QuestionRefOf(row); err != nil {
		return apperr.Wrap(apperr.CodeValidation, "RoundQuestionRepo.Create", err)
	}
	if err := rq.handle(dbc).Create(row).Error; err != nil {
		return db.MapError("RoundQuestionRepo.Create", err)
	}
	return nil
}

func (rq *roundQuestionRepo) MaxQuestionNumber(dbc dbctx.Context, roundID int64) (int, error) {
	var max int
	if err := rq.handle(dbc).
		Model(&types.RoundQuestion{}).
		Where("round_id = ?", roundID).
		Select("COALESCE(MAX(question_number), 0)").
		Scan(&max).Error; err != nil {
		return 0, db.MapError("RoundQuestionRepo.MaxQuestionNumber", err)
	}
	return max, nil
}

func (rq *roundQuestionRepo) ListNormalizedByRound(dbc dbctx.Context, roundID int64) ([]*types.NormalizedQuestion, error) {
	var results []*types.NormalizedQuestion
	if err := rq.handle(dbc).
		Raw(`
			SELECT
				rq.id AS round_question_id,
				rq.round_id,
				rq.question_number,
				COALESCE(tq.id, uq.id) AS question_id,
				CASE WHEN tq.id IS NOT NULL THEN 'catalog' ELSE 'user' END AS question_type,
				COALESCE(tq.question, uq.question) AS question,
				COALESCE(tq.answer, uq.answer) AS answer,
				COALESCE(tq.difficulty, uq.difficulty) AS difficulty,
				COALESCE(tq.category_id, uq.category_id) AS category_id,
				COALESCE(c.name, '') AS category_name
			FROM round_questions rq
			LEFT JOIN trivia_questions tq ON tq.id = rq.trivia_question_id
			LEFT JOIN user_generated_questions uq ON uq.id = rq.user_question_id
			LEFT JOIN categories c ON c.id = COALESCE(tq.category_id, uq.category_id)
			WHERE rq.round_id = ?
			ORDER BY rq.question_number ASC
		`, roundID).
		Scan(&results).Error; err != nil {
		return nil, db.MapError("RoundQuestionRepo.ListNormalizedByRound", err)
	}
	return results, nil
}
