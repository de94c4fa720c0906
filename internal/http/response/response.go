package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAppError maps the apperr taxonomy onto HTTP statuses. Internal
// failures are logged with their cause and answered with a generic message
// so driver detail never leaks to the client.
func RespondAppError(c *gin.Context, log *logger.Logger, err error) {
	code := apperr.CodeOf(err)
	status, ok := statusFor(code)
	if !ok || code == apperr.CodeInternal {
		if log != nil {
			log.Error("internal error", "path", c.FullPath(), "error", err)
		}
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Error: APIError{Message: "internal server error", Code: string(apperr.CodeInternal)},
		})
		return
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{Message: apperr.MessageOf(err), Code: string(code)},
	})
}

func statusFor(code apperr.Code) (int, bool) {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest, true
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized, true
	case apperr.CodeForbidden:
		return http.StatusForbidden, true
	case apperr.CodeNotFound:
		return http.StatusNotFound, true
	case apperr.CodeConflict:
		return http.StatusConflict, true
	case apperr.CodeInternal:
		return http.StatusInternalServerError, true
	default:
		return 0, false
	}
}
