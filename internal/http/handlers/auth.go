package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/quizforge-backend/internal/http/response"
	"github.com/quizforge/quizforge-backend/internal/pkg/ctxutil"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	handlerLog := log.With("handler", "AuthHandler")
	return &AuthHandler{log: handlerLog, authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	session, err := ah.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		response.RespondAppError(c, ah.log, err)
		return
	}
	response.RespondCreated(c, gin.H{
		"message":      "user registered",
		"sessionToken": session.Token,
		"user":         newUserView(session.User),
	})
}

// Login accepts the identifier under either the email or the username key.
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	session, err := ah.authService.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		response.RespondAppError(c, ah.log, err)
		return
	}
	response.RespondOK(c, gin.H{
		"sessionToken": session.Token,
		"user":         newUserView(session.User),
	})
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondOK(c, gin.H{"message": "logged out"})
		return
	}
	if err := ah.authService.Logout(c.Request.Context(), rd.Token); err != nil {
		response.RespondAppError(c, ah.log, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "logged out"})
}

func (ah *AuthHandler) Me(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.User == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errMissingPrincipal)
		return
	}
	response.RespondOK(c, newUserView(rd.User))
}
