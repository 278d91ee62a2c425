package contactserver

import (
	"net/http"

	"github.com/contactform/contactapi/config"
	"github.com/contactform/contactapi/healthendpoint"
	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/ratelimiter"
	"github.com/contactform/contactapi/routes"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const serviceName = "contactapi"

func NewServer(logger lager.Logger, conf *config.Config, submitter Submitter, dispatcher Dispatcher, rateLimiter ratelimiter.Limiter, httpStatusCollector healthendpoint.HTTPStatusCollector, clock clock.Clock, stats ...ratelimiter.StatsStore) (ifrit.Runner, error) {
	handler := NewHandler(logger, conf, submitter, dispatcher, rateLimiter, httpStatusCollector, clock, stats...)
	return helpers.NewHTTPServer(logger, conf.Server, handler)
}

// NewHandler wires the public API. Only POST /api/contact is rate limited.
func NewHandler(logger lager.Logger, conf *config.Config, submitter Submitter, dispatcher Dispatcher, rateLimiter ratelimiter.Limiter, httpStatusCollector healthendpoint.HTTPStatusCollector, clock clock.Clock, stats ...ratelimiter.StatsStore) http.Handler {
	errorResponder := NewErrorResponder(conf.Environment, logger)
	contactHandler := NewContactHandler(submitter, dispatcher, errorResponder, conf.MaxBodyBytes, logger)
	healthHandler := NewHealthHandler(conf.Environment, clock)
	rateLimiterMiddleware := ratelimiter.NewRateLimiterMiddleware(
		ratelimiter.ClientIPKeyFunc(conf.RateLimit.TrustXForwardedFor),
		rateLimiter,
		clock,
		logger.Session("contact-ratelimiter-middleware"),
		stats...,
	)

	router := routes.ContactAPIRoutes()
	router.Use(otelmux.Middleware(serviceName))
	router.Get(routes.PostContactRouteName).Handler(rateLimiterMiddleware.CheckRateLimit(http.HandlerFunc(contactHandler.PostContact)))
	router.Get(routes.GetHealthRouteName).HandlerFunc(healthHandler.GetHealth)
	router.NotFoundHandler = http.HandlerFunc(NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(NotFound)

	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)
	requestLogger := NewRequestLogger(clock, logger)
	corsHandler := NewCORS(conf.CORS.AllowedOrigins, logger)

	return requestLogger.Log(httpStatusCollectMiddleware.Collect(corsHandler.Handler(router)))
}
