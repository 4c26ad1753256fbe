package middleware

import (
	"context"
	"net/http"

	"techtomorrow/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID присваивает каждому запросу uuid; клиентский X-Request-ID
// уважается, чтобы связывать логи между сервисами.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), ContextRequestID, rid)
		ctx = reqctx.WithRequestID(ctx, rid)
		w.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
