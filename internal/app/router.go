package app

import (
	"github.com/gin-gonic/gin"

	qhttp "github.com/quizforge/quizforge-backend/internal/http"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return qhttp.NewRouter(qhttp.RouterConfig{
		Log:            log,
		AuthMiddleware: mw.Auth,

		AuthHandler:     handlerset.Auth,
		CategoryHandler: handlerset.Category,
		QuestionHandler: handlerset.Question,
		EventHandler:    handlerset.Event,
		RoundHandler:    handlerset.Round,
		HealthHandler:   handlerset.Health,

		CORSOrigins: cfg.CORSOrigins,
		EnablePprof: cfg.EnablePprof,
	})
}
