package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/http/response"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type QuestionHandler struct {
	log             *logger.Logger
	questionService services.QuestionService
}

func NewQuestionHandler(log *logger.Logger, questionService services.QuestionService) *QuestionHandler {
	handlerLog := log.With("handler", "QuestionHandler")
	return &QuestionHandler{log: handlerLog, questionService: questionService}
}

// Random serves GET /question?difficulty=&category_id=.
func (qh *QuestionHandler) Random(c *gin.Context) {
	var filter types.QuestionFilter
	if raw := c.Query("difficulty"); raw != "" {
		d, ok := types.ParseDifficulty(raw)
		if !ok {
			response.RespondError(c, http.StatusBadRequest, "validation",
				fmt.Errorf("difficulty must be one of easy, medium, hard"))
			return
		}
		filter.Difficulty = d
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.RespondError(c, http.StatusBadRequest, "validation",
				fmt.Errorf("category_id must be a positive integer"))
			return
		}
		filter.CategoryID = &id
	}
	q, err := qh.questionService.Random(c.Request.Context(), filter)
	if err != nil {
		response.RespondAppError(c, qh.log, err)
		return
	}
	response.RespondOK(c, newQuestionView(q))
}

// ByCategory serves GET /category/:category_id/questions?count=.
func (qh *QuestionHandler) ByCategory(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	count := services.DefaultCategorySampleCount
	if raw := c.Query("count"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n <= 0 {
			response.RespondError(c, http.StatusBadRequest, "validation",
				fmt.Errorf("count must be a positive integer"))
			return
		}
		count = n
	}
	qs, err := qh.questionService.CategoryQuestions(c.Request.Context(), categoryID, count)
	if err != nil {
		response.RespondAppError(c, qh.log, err)
		return
	}
	response.RespondOK(c, newQuestionViews(qs))
}

func (qh *QuestionHandler) CheckAnswer(c *gin.Context) {
	var req struct {
		QuestionID int64  `json:"question_id"`
		Answer     string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	result, err := qh.questionService.CheckAnswer(c.Request.Context(), req.QuestionID, req.Answer)
	if err != nil {
		response.RespondAppError(c, qh.log, err)
		return
	}
	response.RespondOK(c, gin.H{
		"correct":       result.Correct,
		"score":         result.Score,
		"correctAnswer": result.CorrectAnswer,
	})
}

func (qh *QuestionHandler) CreateUserQuestion(c *gin.Context) {
	var req struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Difficulty string `json:"difficulty"`
		CategoryID *int64 `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	q, err := qh.questionService.CreateUserQuestion(c.Request.Context(), services.CreateUserQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.RespondAppError(c, qh.log, err)
		return
	}
	response.RespondCreated(c, gin.H{
		"id":      q.ID,
		"message": "question created",
	})
}
