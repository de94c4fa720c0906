package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/quizforge-backend/internal/http/response"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type EventHandler struct {
	log          *logger.Logger
	eventService services.EventService
}

func NewEventHandler(log *logger.Logger, eventService services.EventService) *EventHandler {
	handlerLog := log.With("handler", "EventHandler")
	return &EventHandler{log: handlerLog, eventService: eventService}
}

func (eh *EventHandler) ListMine(c *gin.Context) {
	events, err := eh.eventService.ListMine(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.RespondAppError(c, eh.log, err)
		return
	}
	response.RespondOK(c, newEventViews(events))
}

// Save creates an event, or partial-updates one when id is present. Updates
// answer 200, creates 201.
func (eh *EventHandler) Save(c *gin.Context) {
	var req struct {
		ID          *int64  `json:"id"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Venue       *string `json:"venue"`
		EventDate   *string `json:"event_date"`
		Status      *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	event, created, err := eh.eventService.Save(c.Request.Context(), services.SaveEventInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		EventDate:   req.EventDate,
		Status:      req.Status,
	})
	if err != nil {
		response.RespondAppError(c, eh.log, err)
		return
	}
	if created {
		response.RespondCreated(c, newEventView(event))
		return
	}
	response.RespondOK(c, newEventView(event))
}

func (eh *EventHandler) Get(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	detail, err := eh.eventService.Get(c.Request.Context(), eventID)
	if err != nil {
		response.RespondAppError(c, eh.log, err)
		return
	}
	response.RespondOK(c, newEventDetailView(detail))
}

func (eh *EventHandler) Delete(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := eh.eventService.Delete(c.Request.Context(), eventID); err != nil {
		response.RespondAppError(c, eh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "event deleted"})
}
