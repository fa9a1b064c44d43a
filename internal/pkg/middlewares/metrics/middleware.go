package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Middleware пишет per-route метрики запросов и access-лог.
// Лейбл route берется из шаблона mux, чтобы не плодить кардинальность
// по конкретным id в пути.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			status := strconv.Itoa(rw.status)
			routeTemplate := templateOrPath(r)

			HTTPRequestDuration.WithLabelValues(r.Method, routeTemplate, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, routeTemplate, status).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", routeTemplate),
				logger.NewField("status", status),
				logger.NewField("duration", elapsed.String()),
			).Info("HTTP request")
		})
	}
}

func templateOrPath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
