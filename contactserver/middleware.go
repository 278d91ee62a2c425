package contactserver

import (
	"net/http"
	"strings"

	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/helpers/handlers"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/rs/cors"
)

type RequestLogger struct {
	clock  clock.Clock
	logger lager.Logger
}

func NewRequestLogger(clock clock.Clock, logger lager.Logger) *RequestLogger {
	return &RequestLogger{clock: clock, logger: logger.Session("request")}
}

func (l *RequestLogger) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := l.clock.Now()
		rec := handlers.NewResponseRecorder(w)
		next.ServeHTTP(rec, r)

		data := lager.Data{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.StatusCode(),
			"duration_ms": l.clock.Since(start).Milliseconds(),
			"bytes":       rec.BytesWritten(),
		}
		helpers.AddTraceID(r.Context(), data)
		l.logger.Info("served", data)
	})
}

var allowedOriginSuffixes = []string{".vercel.app", ".netlify.app"}

// NewCORS allows the configured origins plus any Vercel or Netlify preview
// deployment. Requests without an Origin header are not CORS requests and pass.
func NewCORS(allowedOrigins []string, logger lager.Logger) *cors.Cors {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = struct{}{}
		}
	}
	logger = logger.Session("cors")

	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}
			for _, suffix := range allowedOriginSuffixes {
				if strings.HasSuffix(origin, suffix) {
					return true
				}
			}
			logger.Info("origin-not-allowed", lager.Data{"origin": origin})
			return false
		},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})
}
