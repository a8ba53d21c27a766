package appctx

import (
	"context"
)

// UserContext contains authenticated user information.
// The service is single-tenant with one configured operator account,
// so only identity fields are carried.
type UserContext struct {
	Subject string
	Email   string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetSubject returns the authenticated subject from context or empty string.
func GetSubject(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.Subject
	}
	return ""
}
