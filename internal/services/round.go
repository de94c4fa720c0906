package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	eventrepo "github.com/quizforge/quizforge-backend/internal/data/repos/event"
	triviarepo "github.com/quizforge/quizforge-backend/internal/data/repos/trivia"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type CreateRoundInput struct {
	EventID     int64
	Name        string
	Description string
	CategoryID  *int64
}

type RoundService interface {
	// Create assigns round_number = max+1 within the request transaction; a
	// concurrent duplicate surfaces as a retryable conflict.
	Create(ctx context.Context, input CreateRoundInput) (*RoundDetail, error)
	Get(ctx context.Context, roundID int64) (*RoundDetail, error)
	Questions(ctx context.Context, roundID int64) ([]*types.NormalizedQuestion, error)
	// Attach adds a question to the round at the next slot number.
	Attach(ctx context.Context, roundID int64, ref types.QuestionRef) (*types.RoundQuestion, error)
	Delete(ctx context.Context, roundID int64) error
}

type roundService struct {
	db          *gorm.DB
	log         *logger.Logger
	eventRepo   eventrepo.EventRepo
	roundRepo   eventrepo.RoundRepo
	rqRepo      eventrepo.RoundQuestionRepo
	catalogRepo triviarepo.CatalogQuestionRepo
	userQRepo   triviarepo.UserQuestionRepo
}

func NewRoundService(
	db *gorm.DB,
	log *logger.Logger,
	eventRepo eventrepo.EventRepo,
	roundRepo eventrepo.RoundRepo,
	rqRepo eventrepo.RoundQuestionRepo,
	catalogRepo triviarepo.CatalogQuestionRepo,
	userQRepo triviarepo.UserQuestionRepo,
) RoundService {
	serviceLog := log.With("service", "RoundService")
	return &roundService{
		db:          db,
		log:         serviceLog,
		eventRepo:   eventRepo,
		roundRepo:   roundRepo,
		rqRepo:      rqRepo,
		catalogRepo: catalogRepo,
		userQRepo:   userQRepo,
	}
}

// ownedRound loads a live round and authorizes the principal through the
// parent event. Existence reads as 404 before ownership reads as 403.
func (rs *roundService) ownedRound(dbc dbctx.Context, roundID, userID int64, op string) (*types.Round, error) {
	round, err := rs.roundRepo.GetByID(dbc, roundID)
	if err != nil {
		return nil, err
	}
	ev, err := rs.eventRepo.GetByID(dbc, round.EventID)
	if err != nil {
		return nil, err
	}
	if ev.CreatedBy != userID {
		return nil, apperr.New(apperr.CodeForbidden, op, "round belongs to another user's event", nil)
	}
	return round, nil
}

func (rs *roundService) Create(ctx context.Context, input CreateRoundInput) (*RoundDetail, error) {
	const op = "RoundService.Create"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, err
	}
	if input.EventID <= 0 {
		return nil, apperr.New(apperr.CodeValidation, op, "event_id is required", nil)
	}

	var round *types.Round
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		ev, err := rs.eventRepo.GetByID(dbc, input.EventID)
		if err != nil {
			return err
		}
		if ev.CreatedBy != rd.UserID {
			return apperr.New(apperr.CodeForbidden, op, "event belongs to another user", nil)
		}

		max, err := rs.roundRepo.MaxRoundNumber(dbc, ev.ID)
		if err != nil {
			return err
		}
		number := max + 1
		name := strings.TrimSpace(input.Name)
		if name == "" {
			name = fmt.Sprintf("Round %d", number)
		}
		round = &types.Round{
			EventID:     ev.ID,
			RoundNumber: number,
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			CategoryID:  input.CategoryID,
		}
		return rs.roundRepo.Create(dbc, round)
	}); err != nil {
		return nil, err
	}

	return &RoundDetail{Round: round, Questions: []*types.NormalizedQuestion{}}, nil
}

func (rs *roundService) Get(ctx context.Context, roundID int64) (*RoundDetail, error) {
	const op = "RoundService.Get"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, err
	}
	dbc := dbctx.Context{Ctx: ctx}
	round, err := rs.ownedRound(dbc, roundID, rd.UserID, op)
	if err != nil {
		return nil, err
	}
	questions, err := rs.rqRepo.ListNormalizedByRound(dbc, round.ID)
	if err != nil {
		return nil, err
	}
	return &RoundDetail{Round: round, Questions: questions}, nil
}

func (rs *roundService) Questions(ctx context.Context, roundID int64) ([]*types.NormalizedQuestion, error) {
	detail, err := rs.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}
	return detail.Questions, nil
}

func (rs *roundService) Attach(ctx context.Context, roundID int64, ref types.QuestionRef) (*types.RoundQuestion, error) {
	const op = "RoundService.Attach"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, err
	}
	if !ref.Valid() {
		return nil, apperr.Wrap(apperr.CodeValidation, op, types.ErrAmbiguousQuestionRef)
	}

	var row *types.RoundQuestion
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		round, err := rs.ownedRound(dbc, roundID, rd.UserID, op)
		if err != nil {
			return err
		}

		// The referenced question must exist; a dangling id is caller error.
		switch ref.Source {
		case types.QuestionSourceCatalog:
			if _, err := rs.catalogRepo.GetByID(dbc, ref.ID); err != nil {
				if apperr.IsCode(err, apperr.CodeNotFound) {
					return apperr.New(apperr.CodeValidation, op, "catalog question does not exist", nil)
				}
				return err
			}
		case types.QuestionSourceUser:
			if _, err := rs.userQRepo.GetByID(dbc, ref.ID); err != nil {
				if apperr.IsCode(err, apperr.CodeNotFound) {
					return apperr.New(apperr.CodeValidation, op, "user question does not exist", nil)
				}
				return err
			}
		}

		max, err := rs.rqRepo.MaxQuestionNumber(dbc, round.ID)
		if err != nil {
			return err
		}
		row = &types.RoundQuestion{
			RoundID:        round.ID,
			QuestionNumber: max + 1,
		}
		if err := ref.Apply(row); err != nil {
			return apperr.Wrap(apperr.CodeValidation, op, err)
		}
		return rs.rqRepo.Create(dbc, row)
	}); err != nil {
		return nil, err
	}

	return row, nil
}

func (rs *roundService) Delete(ctx context.Context, roundID int64) error {
	const op = "RoundService.Delete"

	rd, err := principal(ctx, op)
	if err != nil {
		return err
	}
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		round, err := rs.ownedRound(dbc, roundID, rd.UserID, op)
		if err != nil {
			return err
		}
		return rs.roundRepo.SoftDelete(dbc, round.ID)
	})
}
