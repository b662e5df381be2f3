package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const (
	rqIDKey ctxKey = "rqID"

	// RqIDTeleKey is the key the telegram logger middleware stores the request id under.
	RqIDTeleKey = "rqID"
)

func NewRequestID() string {
	return uuid.NewString()
}

func ContextWithRqID(ctx context.Context, rqID string) context.Context {
	return context.WithValue(ctx, rqIDKey, rqID)
}

// CreateCtxWithRqID reuses the request id set by the middleware, if any.
func CreateCtxWithRqID(c tele.Context) context.Context {
	rqID, ok := c.Get(RqIDTeleKey).(string)
	if !ok || rqID == "" {
		rqID = NewRequestID()
		c.Set(RqIDTeleKey, rqID)
	}
	return ContextWithRqID(context.Background(), rqID)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rqID, _ := ctx.Value(rqIDKey).(string)
	return rqID
}
