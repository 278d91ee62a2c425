package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/contactform/contactapi/db"
	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/models"
	"github.com/contactform/contactapi/notification"
	"github.com/contactform/contactapi/ratelimiter"
)

const (
	DefaultEnvironment = "development"
	DefaultServerPort  = 5000
	DefaultHealthPort  = 8081
)

var ErrInvalidEnvironmentValue = errors.New("invalid environment variable")

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type NotificationConfig struct {
	SMTP       notification.SMTPConfig       `yaml:"smtp"`
	Dispatcher notification.DispatcherConfig `yaml:"dispatcher"`
}

type Config struct {
	Logging      helpers.LoggingConfig  `yaml:"logging"`
	Server       helpers.ServerConfig   `yaml:"server"`
	Health       helpers.HealthConfig   `yaml:"health"`
	Environment  string                 `yaml:"environment"`
	MaxBodyBytes int64                  `yaml:"max_body_bytes"`
	Db           db.DatabaseConfig      `yaml:"db"`
	RateLimit    models.RateLimitConfig `yaml:"rate_limit"`
	Notification NotificationConfig     `yaml:"notification"`
	CORS         CORSConfig             `yaml:"cors"`
}

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// LoadConfig reads the optional yaml file at filepath, then applies environment
// overrides on top of it.
func LoadConfig(filepath string, lookupEnv LookupEnv) (*Config, error) {
	conf := defaultConfig()

	if err := helpers.LoadYamlFile(filepath, &conf); err != nil {
		return nil, err
	}

	if err := loadEnvConfig(&conf, lookupEnv); err != nil {
		return nil, err
	}

	return &conf, nil
}

func defaultConfig() Config {
	return Config{
		Server:       helpers.ServerConfig{Port: DefaultServerPort},
		Logging:      helpers.LoggingConfig{Level: "info"},
		Health:       helpers.HealthConfig{ServerConfig: helpers.ServerConfig{Port: DefaultHealthPort}, ReadinessCheckEnabled: true},
		Environment:  DefaultEnvironment,
		MaxBodyBytes: 10 * 1024,
		Db: db.DatabaseConfig{
			MaxOpenConnections:    10,
			MaxIdleConnections:    5,
			ConnectionMaxLifetime: 60 * time.Minute,
		},
		RateLimit: models.RateLimitConfig{
			MaxRequests:    ratelimiter.DefaultMaxRequests,
			WindowDuration: ratelimiter.DefaultWindowDuration,
			SweepInterval:  ratelimiter.DefaultSweepInterval,
			Store:          models.RateLimitStoreMemory,
			Stats: models.RateLimitStatsConfig{
				MaxTrackedKeys: ratelimiter.DefaultMaxTrackedKeys,
				BufferSize:     ratelimiter.DefaultStatsBufferSize,
				RecordTimeout:  ratelimiter.DefaultStatsRecordTimeout,
			},
		},
		Notification: NotificationConfig{
			SMTP: notification.SMTPConfig{
				Host:    notification.DefaultSMTPHost,
				Port:    notification.DefaultSMTPPort,
				Timeout: notification.DefaultSMTPTimeout,
			},
			Dispatcher: notification.DispatcherConfig{
				QueueSize:   notification.DefaultQueueSize,
				Workers:     notification.DefaultWorkers,
				SendTimeout: notification.DefaultSendTimeout,
				CircuitBreaker: notification.CircuitBreakerConfig{
					ConsecutiveFailureCount: notification.DefaultBreakerConsecutiveFailureCount,
					BackOffInitialInterval:  notification.DefaultBackOffInitialInterval,
					BackOffMaxInterval:      notification.DefaultBackOffMaxInterval,
				},
			},
		},
	}
}

func loadEnvConfig(conf *Config, lookupEnv LookupEnv) error {
	if lookupEnv == nil {
		return nil
	}
	lookup := func(keys ...string) (string, bool) {
		for _, key := range keys {
			if value, ok := lookupEnv(key); ok && value != "" {
				return value, true
			}
		}
		return "", false
	}

	if url, ok := lookup("DATABASE_URL", "MONGO_URI"); ok {
		conf.Db.URL = url
	}
	if user, ok := lookup("EMAIL_USER"); ok {
		conf.Notification.SMTP.Username = user
	}
	if pass, ok := lookup("EMAIL_PASS"); ok {
		conf.Notification.SMTP.Password = pass
	}
	if host, ok := lookup("EMAIL_HOST"); ok {
		conf.Notification.SMTP.Host = host
	}
	if port, ok := lookup("EMAIL_PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: EMAIL_PORT %q is not a number", ErrInvalidEnvironmentValue, port)
		}
		conf.Notification.SMTP.Port = p
	}
	if origins, ok := lookup("CORS_ORIGIN"); ok {
		conf.CORS.AllowedOrigins = splitList(origins)
	}
	if port, ok := lookup("PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: PORT %q is not a number", ErrInvalidEnvironmentValue, port)
		}
		conf.Server.Port = p
	}
	if env, ok := lookup("ENVIRONMENT", "NODE_ENV"); ok {
		conf.Environment = env
	}
	if addr, ok := lookup("REDIS_ADDR"); ok {
		conf.RateLimit.Stats.RedisAddr = addr
		if conf.RateLimit.Stats.Store == models.StatsStoreNone {
			conf.RateLimit.Stats.Store = models.StatsStoreRedis
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.Db.URL == "" {
		return errors.New("configuration error: db.url is empty, set DATABASE_URL")
	}
	if err := c.validateRateLimit(); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuration error: server port %d is out of range", c.Server.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("configuration error: max_body_bytes is less than or equal to zero")
	}
	return c.Health.Validate()
}

func (c *Config) validateRateLimit() error {
	if c.RateLimit.MaxRequests <= 0 {
		return errors.New("RateLimit.MaxRequests is less than or equal to zero")
	}
	if c.RateLimit.WindowDuration <= 0 {
		return errors.New("RateLimit.WindowDuration is less than or equal to zero")
	}
	if c.RateLimit.SweepInterval <= 0 {
		return errors.New("RateLimit.SweepInterval is less than or equal to zero")
	}
	switch c.RateLimit.Store {
	case models.RateLimitStoreMemory, models.RateLimitStoreCache:
	default:
		return fmt.Errorf("RateLimit.Store %q is not one of %q, %q", c.RateLimit.Store, models.RateLimitStoreMemory, models.RateLimitStoreCache)
	}
	switch c.RateLimit.Stats.Store {
	case models.StatsStoreNone, models.StatsStoreMemory:
	case models.StatsStoreRedis:
		if c.RateLimit.Stats.RedisAddr == "" {
			return errors.New("RateLimit.Stats.RedisAddr is empty")
		}
	default:
		return fmt.Errorf("RateLimit.Stats.Store %q is not supported", c.RateLimit.Stats.Store)
	}
	return nil
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

// EmailConfigured reports whether notification credentials are present. Missing
// credentials only surface when the first notification is attempted.
func (c *Config) EmailConfigured() bool {
	return c.Notification.SMTP.Configured()
}
