package services

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/pkg/apperr"
	"github.com/quizforge/quizforge-backend/internal/pkg/ctxutil"
)

// principal returns the authenticated request data or an unauthorized error.
func principal(ctx context.Context, op string) (*ctxutil.RequestData, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == 0 {
		return nil, apperr.New(apperr.CodeUnauthorized, op, "no authenticated user in context", nil)
	}
	return rd, nil
}
