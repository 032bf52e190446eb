package context

import (
	"context"

	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
)

func GetBuyerID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.BuyerIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetBuyerEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.BuyerEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// GetBuyer assembles the buyer identity from context values set by the auth
// middleware. Returns false when the request is unauthenticated.
func GetBuyer(ctx context.Context) (*model.Buyer, bool) {
	id, ok := GetBuyerID(ctx)
	if !ok {
		return nil, false
	}
	email, _ := GetBuyerEmail(ctx)
	return &model.Buyer{ID: id, Email: email}, true
}

// GetBackendToken returns the backend-issued token for upstream calls.
func GetBackendToken(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.BackendTokenKey)
	if v == nil {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// WithSession embeds the session identity into the request context.
func WithSession(ctx context.Context, session *model.Session) context.Context {
	ctx = context.WithValue(ctx, constant.BuyerIDKey, session.BuyerID)
	ctx = context.WithValue(ctx, constant.BuyerEmailKey, session.Email)
	ctx = context.WithValue(ctx, constant.BackendTokenKey, session.BackendToken)
	return ctx
}
