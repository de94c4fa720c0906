package http

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/quizforge/quizforge-backend/internal/http/handlers"
	httpMW "github.com/quizforge/quizforge-backend/internal/http/middleware"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler     *httpH.AuthHandler
	CategoryHandler *httpH.CategoryHandler
	QuestionHandler *httpH.QuestionHandler
	EventHandler    *httpH.EventHandler
	RoundHandler    *httpH.RoundHandler
	HealthHandler   *httpH.HealthHandler

	CORSOrigins string
	EnablePprof bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("quizforge"))
	r.Use(httpMW.AttachTraceContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	if cfg.EnablePprof {
		pprof.Register(r)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Play surface (public)
	if cfg.CategoryHandler != nil {
		r.GET("/categories", cfg.CategoryHandler.List)
		r.GET("/categories/active", cfg.CategoryHandler.ListActive)
	}
	if cfg.QuestionHandler != nil {
		r.GET("/question", cfg.QuestionHandler.Random)
		r.GET("/category/:category_id/questions", cfg.QuestionHandler.ByCategory)
		r.POST("/check-answer", cfg.QuestionHandler.CheckAnswer)
	}

	// Auth (public)
	if cfg.AuthHandler != nil {
		r.POST("/auth/register", cfg.AuthHandler.Register)
		r.POST("/auth/login", cfg.AuthHandler.Login)
	}

	protected := r.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)
			protected.GET("/auth/me", cfg.AuthHandler.Me)
		}

		// Events. gin's tree rejects a static "my" sibling of :event_id, so
		// the two GETs share one route.
		if cfg.EventHandler != nil {
			protected.POST("/api/events", cfg.EventHandler.Save)
			protected.GET("/api/events/:event_id", func(c *gin.Context) {
				if c.Param("event_id") == "my" {
					cfg.EventHandler.ListMine(c)
					return
				}
				cfg.EventHandler.Get(c)
			})
			protected.DELETE("/api/events/:event_id", cfg.EventHandler.Delete)
		}

		// Rounds
		if cfg.RoundHandler != nil {
			protected.POST("/rounds", cfg.RoundHandler.Create)
			protected.GET("/rounds/:round_id", cfg.RoundHandler.Get)
			protected.GET("/rounds/:round_id/questions", cfg.RoundHandler.Questions)
			protected.POST("/rounds/:round_id/questions", cfg.RoundHandler.AttachQuestion)
			protected.DELETE("/rounds/:round_id", cfg.RoundHandler.Delete)
		}

		// User-generated questions
		if cfg.QuestionHandler != nil {
			protected.POST("/questions/user-generated", cfg.QuestionHandler.CreateUserQuestion)
		}
	}

	return r
}
