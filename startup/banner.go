package startup

import (
	"github.com/contactform/contactapi/config"

	"code.cloudfoundry.org/lager/v3"
)

// LogBanner reports what the service was started with. Credentials and the
// database URL are never logged, only whether they are present.
func LogBanner(logger lager.Logger, conf *config.Config) {
	logger.Info("configuration", lager.Data{
		"port":                conf.Server.Port,
		"health_port":         conf.Health.ServerConfig.Port,
		"environment":         conf.Environment,
		"email_configured":    conf.EmailConfigured(),
		"database_configured": conf.Db.URL != "",
		"cors_origins":        len(conf.CORS.AllowedOrigins),
		"rate_limit": lager.Data{
			"max_requests": conf.RateLimit.MaxRequests,
			"window":       conf.RateLimit.WindowDuration.String(),
			"store":        conf.RateLimit.Store,
			"stats_store":  conf.RateLimit.Stats.Store,
		},
	})
}
