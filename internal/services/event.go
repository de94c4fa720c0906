package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	eventrepo "github.com/quizforge/quizforge-backend/internal/data/repos/event"
	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/dbctx"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

// SaveEventInput drives POST /api/events: create when ID is nil, partial
// update otherwise. Pointer fields distinguish "absent" from "clear".
type SaveEventInput struct {
	ID          *int64
	Name        *string
	Description *string
	Venue       *string
	EventDate   *string // ISO-8601; empty string clears the date
	Status      *string
}

// RoundDetail pairs a round with its normalized question slots.
type RoundDetail struct {
	Round     *types.Round
	Questions []*types.NormalizedQuestion
}

// EventDetail is an event with its non-deleted rounds in play order.
type EventDetail struct {
	Event  *types.Event
	Rounds []*RoundDetail
}

type EventService interface {
	ListMine(ctx context.Context, status string) ([]*types.Event, error)
	Save(ctx context.Context, input SaveEventInput) (*types.Event, bool, error)
	Get(ctx context.Context, eventID int64) (*EventDetail, error)
	Delete(ctx context.Context, eventID int64) error
}

type eventService struct {
	db        *gorm.DB
	log       *logger.Logger
	eventRepo eventrepo.EventRepo
	roundRepo eventrepo.RoundRepo
	rqRepo    eventrepo.RoundQuestionRepo
}

func NewEventService(
	db *gorm.DB,
	log *logger.Logger,
	eventRepo eventrepo.EventRepo,
	roundRepo eventrepo.RoundRepo,
	rqRepo eventrepo.RoundQuestionRepo,
) EventService {
	serviceLog := log.With("service", "EventService")
	return &eventService{
		db:        db,
		log:       serviceLog,
		eventRepo: eventRepo,
		roundRepo: roundRepo,
		rqRepo:    rqRepo,
	}
}

// eventDateLayouts accepts full RFC 3339 plus the tz-less forms clients send;
// tz-less input is interpreted as UTC.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseEventDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, apperr.New(apperr.CodeValidation, "EventService.parseEventDate", "event_date must be an ISO-8601 timestamp", nil)
}

// ownedEvent loads a live event and authorizes the principal against it.
// Nonexistent or soft-deleted rows read as not_found before ownership is
// ever considered, so 404 and 403 are never conflated.
func (es *eventService) ownedEvent(dbc dbctx.Context, eventID, userID int64, op string) (*types.Event, error) {
	ev, err := es.eventRepo.GetByID(dbc, eventID)
	if err != nil {
		return nil, err
	}
	if ev.CreatedBy != userID {
		return nil, apperr.New(apperr.CodeForbidden, op, "event belongs to another user", nil)
	}
	return ev, nil
}

func (es *eventService) ListMine(ctx context.Context, status string) ([]*types.Event, error) {
	const op = "EventService.ListMine"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, err
	}
	var filter types.EventStatus
	if strings.TrimSpace(status) != "" {
		parsed, ok := types.ParseEventStatus(status)
		if !ok {
			return nil, apperr.New(apperr.CodeValidation, op, "status must be draft, published, or archived", nil)
		}
		filter = parsed
	}
	return es.eventRepo.ListByOwner(dbctx.Context{Ctx: ctx}, rd.UserID, filter)
}

func (es *eventService) Save(ctx context.Context, input SaveEventInput) (*types.Event, bool, error) {
	const op = "EventService.Save"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, false, err
	}

	var ev *types.Event
	created := false
	if err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		if input.ID == nil {
			if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
				return apperr.New(apperr.CodeValidation, op, "name is required", nil)
			}
			ev = &types.Event{
				Name:      strings.TrimSpace(*input.Name),
				Status:    types.EventStatusDraft,
				CreatedBy: rd.UserID,
			}
			created = true
		} else {
			existing, err := es.ownedEvent(dbc, *input.ID, rd.UserID, op)
			if err != nil {
				return err
			}
			ev = existing
			if input.Name != nil {
				name := strings.TrimSpace(*input.Name)
				if name == "" {
					return apperr.New(apperr.CodeValidation, op, "name cannot be blank", nil)
				}
				ev.Name = name
			}
		}

		if input.Description != nil {
			ev.Description = strings.TrimSpace(*input.Description)
		}
		if input.Venue != nil {
			ev.Venue = strings.TrimSpace(*input.Venue)
		}
		if input.EventDate != nil {
			date, err := parseEventDate(*input.EventDate)
			if err != nil {
				return err
			}
			ev.EventDate = date
		}
		if input.Status != nil {
			parsed, ok := types.ParseEventStatus(*input.Status)
			if !ok {
				return apperr.New(apperr.CodeValidation, op, "status must be draft, published, or archived", nil)
			}
			ev.Status = parsed
		}

		ev.UpdatedAt = time.Now().UTC()
		if created {
			return es.eventRepo.Create(dbc, ev)
		}
		return es.eventRepo.Save(dbc, ev)
	}); err != nil {
		return nil, false, err
	}

	return ev, created, nil
}

func (es *eventService) Get(ctx context.Context, eventID int64) (*EventDetail, error) {
	const op = "EventService.Get"

	rd, err := principal(ctx, op)
	if err != nil {
		return nil, err
	}
	dbc := dbctx.Context{Ctx: ctx}
	ev, err := es.ownedEvent(dbc, eventID, rd.UserID, op)
	if err != nil {
		return nil, err
	}
	rounds, err := es.roundRepo.ListByEvent(dbc, ev.ID)
	if err != nil {
		return nil, err
	}
	detail := &EventDetail{Event: ev, Rounds: make([]*RoundDetail, 0, len(rounds))}
	for _, round := range rounds {
		questions, err := es.rqRepo.ListNormalizedByRound(dbc, round.ID)
		if err != nil {
			return nil, err
		}
		detail.Rounds = append(detail.Rounds, &RoundDetail{Round: round, Questions: questions})
	}
	return detail, nil
}

func (es *eventService) Delete(ctx context.Context, eventID int64) error {
	const op = "EventService.Delete"

	rd, err := principal(ctx, op)
	if err != nil {
		return err
	}
	return es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		ev, err := es.ownedEvent(dbc, eventID, rd.UserID, op)
		if err != nil {
			return err
		}
		return es.eventRepo.SoftDelete(dbc, ev.ID)
	})
}
