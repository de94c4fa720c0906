package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/quizforge-backend/internal/http/response"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type CategoryHandler struct {
	log             *logger.Logger
	categoryService services.CategoryService
}

func NewCategoryHandler(log *logger.Logger, categoryService services.CategoryService) *CategoryHandler {
	handlerLog := log.With("handler", "CategoryHandler")
	return &CategoryHandler{log: handlerLog, categoryService: categoryService}
}

func (ch *CategoryHandler) List(c *gin.Context) {
	cats, err := ch.categoryService.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, ch.log, err)
		return
	}
	response.RespondOK(c, newCategoryViews(cats))
}

func (ch *CategoryHandler) ListActive(c *gin.Context) {
	minQuestions := services.DefaultActiveMinQuestions
	if raw := c.Query("min_questions"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.RespondError(c, http.StatusBadRequest, "validation",
				fmt.Errorf("min_questions must be a non-negative integer"))
			return
		}
		minQuestions = n
	}
	counts, err := ch.categoryService.ListActive(c.Request.Context(), minQuestions)
	if err != nil {
		response.RespondAppError(c, ch.log, err)
		return
	}
	response.RespondOK(c, newCategoryCountViews(counts))
}
