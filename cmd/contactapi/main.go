package main

import (
	"context"

	"github.com/contactform/contactapi/config"
	"github.com/contactform/contactapi/contactserver"
	"github.com/contactform/contactapi/healthendpoint"
	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/models"
	"github.com/contactform/contactapi/notification"
	"github.com/contactform/contactapi/ratelimiter"
	"github.com/contactform/contactapi/startup"
	"github.com/contactform/contactapi/submission"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/tedsuo/ifrit"
)

const serviceName = "contactapi"

func main() {
	conf, logger, shutdownTracing := startup.Bootstrap(serviceName, config.LoadConfig)
	defer func() { _ = shutdownTracing(context.Background()) }()

	startup.LogBanner(logger, conf)
	apiClock := clock.NewClock()

	submissionDB := startup.CreateSubmissionDB(context.Background(), conf.Db, apiClock, logger)
	defer startup.CleanupDatabases(logger, submissionDB)

	store := createRateLimitStore(conf.RateLimit)
	rateLimiter := ratelimiter.NewRateLimiter(store, conf.RateLimit.MaxRequests, conf.RateLimit.WindowDuration, apiClock, logger.Session("ratelimiter"))
	sweeper := ratelimiter.NewSweeper(store, conf.RateLimit.SweepInterval, apiClock, logger.Session("ratelimiter-sweeper"))

	admissionCollector := healthendpoint.NewAdmissionCollector(serviceName, "ratelimiter")
	stats := []ratelimiter.StatsStore{admissionCollector}
	sink := createStatsStore(conf.RateLimit.Stats, logger)
	defer sink.close()
	if sink.store != nil {
		stats = append(stats, sink.store)
	}

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector(serviceName, "http")
	notificationCollector := healthendpoint.NewNotificationCollector(serviceName, "notification")
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewDatabaseStatusCollector(serviceName, "contactserver", "submissionDB", submissionDB.DB),
		httpStatusCollector,
		admissionCollector,
		notificationCollector,
	}, true, logger.Session("contactapi-prometheus"))

	if !conf.EmailConfigured() {
		logger.Info("email-not-configured")
	}
	transport := helpers.NewLazy(func() (notification.Transport, error) {
		return notification.NewSMTPTransport(conf.Notification.SMTP)
	})
	composer := notification.NewComposer(conf.Notification.SMTP.Username)
	dispatcher := notification.NewDispatcher(conf.Notification.Dispatcher, transport, composer, notificationCollector, logger)

	submissionService := submission.NewService(submissionDB.DB, logger)

	members := []startup.ServerBuilder{
		startup.Runner("ratelimiter_sweeper", sweeper),
		startup.Runner("notification_dispatcher", dispatcher),
	}
	if sink.runner != nil {
		members = append(members, startup.Runner("stats_recorder", sink.runner))
	}
	members = append(members,
		startup.Server("contact_server", func() (ifrit.Runner, error) {
			return contactserver.NewServer(logger.Session("contact_server"), conf, submissionService, dispatcher, rateLimiter, httpStatusCollector, apiClock, stats...)
		}),
		startup.Server("health_server", func() (ifrit.Runner, error) {
			checkers := []healthendpoint.Checker{healthendpoint.DbChecker("submission_db", submissionDB.DB)}
			return healthendpoint.NewServerWithBasicAuth(conf.Health, checkers, logger.Session("health_server"), promRegistry, apiClock, sink.endpoints...)
		}),
	)
	startup.StartService(logger, members...)
}

func createRateLimitStore(conf models.RateLimitConfig) ratelimiter.Store {
	if conf.Store == models.RateLimitStoreCache {
		return ratelimiter.NewCacheStore()
	}
	return ratelimiter.NewStore()
}

// statsSink is the optional admission statistics store together with what it
// needs at runtime: a background recorder, endpoints on the health server and
// a release function.
type statsSink struct {
	store     ratelimiter.StatsStore
	runner    ifrit.Runner
	endpoints []healthendpoint.Endpoint
	close     func()
}

func createStatsStore(conf models.RateLimitStatsConfig, logger lager.Logger) statsSink {
	switch conf.Store {
	case models.StatsStoreMemory:
		store := ratelimiter.NewMemoryStatsStore(conf.TrackKeys).WithMaxTrackedKeys(conf.MaxTrackedKeys)
		return statsSink{
			store:     store,
			endpoints: []healthendpoint.Endpoint{{Path: "/stats", Handler: store}},
			close:     func() {},
		}
	case models.StatsStoreRedis:
		timeout := conf.RecordTimeout
		if timeout <= 0 {
			timeout = ratelimiter.DefaultStatsRecordTimeout
		}
		rdb := redis.NewClient(&redis.Options{
			Addr:                  conf.RedisAddr,
			DialTimeout:           timeout,
			ReadTimeout:           timeout,
			WriteTimeout:          timeout,
			ContextTimeoutEnabled: true,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Error("redis-stats-store-unreachable", err, lager.Data{"addr": conf.RedisAddr})
		}
		recorder := ratelimiter.NewAsyncStatsStore(
			ratelimiter.NewRedisStatsStore(rdb, conf.Prefix, conf.TTL, conf.TrackKeys),
			conf.BufferSize, timeout, logger)
		return statsSink{
			store:  recorder,
			runner: recorder,
			close: func() {
				if err := rdb.Close(); err != nil {
					logger.Error("failed-to-close-redis", err)
				}
			},
		}
	default:
		return statsSink{close: func() {}}
	}
}
