package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/carhive/FleetTimeline-Service/pkg/metrics"
)

// Metrics middleware, записывающее HTTP-метрики каждого запроса
//
// В качестве пути берётся шаблон маршрута ("/api/vehicles/{vehicleId}"),
// а не фактический URL, чтобы не раздувать кардинальность метрик
func Metrics(collector *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collector == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			collector.IncHTTPInFlight()
			defer collector.DecHTTPInFlight()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			collector.ObserveHTTPRequest(r.Method, path, recorder.status, time.Since(start))
		})
	}
}

// statusRecorder перехватывает статус ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
