package ctxutil

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/domain/user"
)

type requestDataKey struct{}

// RequestData carries the authenticated principal for the current request.
type RequestData struct {
	UserID    int64
	SessionID int64
	Token     string
	User      *user.User
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey{})
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}
