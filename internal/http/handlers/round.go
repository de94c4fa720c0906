package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/http/response"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type RoundHandler struct {
	log          *logger.Logger
	roundService services.RoundService
}

func NewRoundHandler(log *logger.Logger, roundService services.RoundService) *RoundHandler {
	handlerLog := log.With("handler", "RoundHandler")
	return &RoundHandler{log: handlerLog, roundService: roundService}
}

func (rh *RoundHandler) Create(c *gin.Context) {
	var req struct {
		EventID     int64  `json:"event_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		CategoryID  *int64 `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	detail, err := rh.roundService.Create(c.Request.Context(), services.CreateRoundInput{
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		response.RespondAppError(c, rh.log, err)
		return
	}
	response.RespondCreated(c, newRoundDetailView(detail))
}

func (rh *RoundHandler) Get(c *gin.Context) {
	roundID, err := pathID(c, "round_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	detail, err := rh.roundService.Get(c.Request.Context(), roundID)
	if err != nil {
		response.RespondAppError(c, rh.log, err)
		return
	}
	response.RespondOK(c, newRoundDetailView(detail))
}

func (rh *RoundHandler) Questions(c *gin.Context) {
	roundID, err := pathID(c, "round_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	questions, err := rh.roundService.Questions(c.Request.Context(), roundID)
	if err != nil {
		response.RespondAppError(c, rh.log, err)
		return
	}
	response.RespondOK(c, newNormalizedQuestionViews(questions))
}

// AttachQuestion adds a question to the round. The body must carry exactly
// one of question_id (catalog) or user_question_id.
func (rh *RoundHandler) AttachQuestion(c *gin.Context) {
	roundID, err := pathID(c, "round_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var req struct {
		QuestionID     *int64 `json:"question_id"`
		UserQuestionID *int64 `json:"user_question_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	ref, err := types.NewQuestionRef(req.QuestionID, req.UserQuestionID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	rq, err := rh.roundService.Attach(c.Request.Context(), roundID, ref)
	if err != nil {
		response.RespondAppError(c, rh.log, err)
		return
	}
	response.RespondCreated(c, newRoundQuestionView(rq))
}

func (rh *RoundHandler) Delete(c *gin.Context) {
	roundID, err := pathID(c, "round_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := rh.roundService.Delete(c.Request.Context(), roundID); err != nil {
		response.RespondAppError(c, rh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "round deleted"})
}
