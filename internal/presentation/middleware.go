package presentation

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pizza-orders/internal/logger"
)

type requestIDKey struct{}

// RequestID tags every request with a UUID and echoes it back on the
// response. A client-sent X-Request-Id is reused instead of minted.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type responseData struct {
	statusCode int
	size       int
}

type logResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *logResponseWriter) Write(b []byte) (int, error) {
	if w.responseData.statusCode == 0 {
		w.responseData.statusCode = http.StatusOK
	}
	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size
	return size, err
}

func (w *logResponseWriter) WriteHeader(statusCode int) {
	w.responseData.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// RequestLogger logs one line per request with the outcome.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		respData := &responseData{}
		writer := logResponseWriter{
			ResponseWriter: w,
			responseData:   respData,
		}
		next.ServeHTTP(&writer, r)

		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", respData.statusCode,
			"size", respData.size,
			"duration", time.Since(start),
			"request_id", requestIDFrom(r.Context()),
		)
	})
}
