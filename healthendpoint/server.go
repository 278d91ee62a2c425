package healthendpoint

import (
	"net/http"
	"net/http/pprof"

	"github.com/contactform/contactapi/helpers"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
)

// Endpoint is an extra handler served behind basic auth on the health port.
type Endpoint struct {
	Path    string
	Handler http.Handler
}

// NewServerWithBasicAuth serves readiness, metrics and, when credentials are
// configured, pprof on the health port.
func NewServerWithBasicAuth(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer, clock clock.Clock, endpoints ...Endpoint) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, healthCheckers, logger, gatherer, clock, endpoints...)
	if err != nil {
		return nil, err
	}
	logger.Info("new-health-server", lager.Data{"addr": conf.ServerConfig.Addr(), "basic-auth": !conf.BasicAuth.IsEmpty()})
	return helpers.NewHTTPServer(logger, conf.ServerConfig, healthRouter)
}

func NewHealthRouter(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer, clock clock.Clock, endpoints ...Endpoint) (*mux.Router, error) {
	basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	// unauthenticated paths
	if conf.ReadinessCheckEnabled {
		router.Handle("/health/readiness", newReadinessHandler(healthCheckers, clock)).Methods(http.MethodGet)
	}

	// authenticated paths
	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.BasicAuthenticationMiddleware)
	if !conf.BasicAuth.IsEmpty() {
		addPprofHandlers(everything)
	}
	for _, endpoint := range endpoints {
		everything.Handle(endpoint.Path, endpoint.Handler).Methods(http.MethodGet)
	}
	everything.PathPrefix("").Handler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return router, nil
}

func addPprofHandlers(router *mux.Router) {
	pprofRouter := router.PathPrefix("/debug/pprof").Subrouter()
	pprofRouter.HandleFunc("/cmdline", pprof.Cmdline)
	pprofRouter.HandleFunc("/profile", pprof.Profile)
	pprofRouter.HandleFunc("/symbol", pprof.Symbol)
	pprofRouter.HandleFunc("/trace", pprof.Trace)
	pprofRouter.PathPrefix("").HandlerFunc(pprof.Index)
}
