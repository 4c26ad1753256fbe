package middleware

import "context"

type ctxKey string

const (
	ContextRequestID ctxKey = "request_id"
	ContextEmail     ctxKey = "email"
	ContextRole      ctxKey = "role"

	// Этот флаг ставится админам, чтобы пропускать все проверки.
	ContextSkipGuards ctxKey = "skip_guards"
)

func WithSkipGuards(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextSkipGuards, true)
}

func SkipGuards(ctx context.Context) bool {
	v := ctx.Value(ContextSkipGuards)
	b, _ := v.(bool)
	return b
}
