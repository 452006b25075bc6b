package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	SubjectKey   contextKey = "subject"
)

// RequestIDHeader is echoed back so clients can quote it when reporting a problem.
const RequestIDHeader = "X-Request-ID"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// RequestID tags every request with an id, reusing a valid one sent by the client.
func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIDHeader)
		if uuid.Validate(requestId) != nil {
			requestId = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestId)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the id stored by the request id middleware or an empty string.
func RequestID(ctx context.Context) string {
	requestId, _ := ctx.Value(RequestIDKey).(string)
	return requestId
}

// Subject returns the token subject stored by the auth middleware or an empty string.
func Subject(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)
	return subject
}
