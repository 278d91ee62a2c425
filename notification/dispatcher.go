package notification

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
	"golang.org/x/time/rate"
)

const (
	DefaultQueueSize   = 100
	DefaultWorkers     = 2
	DefaultSendTimeout = 30 * time.Second

	DefaultBreakerConsecutiveFailureCount = 5
	DefaultBackOffInitialInterval         = 30 * time.Second
	DefaultBackOffMaxInterval             = 10 * time.Minute
)

// CircuitBreakerConfig stops sends after consecutive transport failures. While
// open, tasks fail without contacting the mail server until the back off ends.
type CircuitBreakerConfig struct {
	ConsecutiveFailureCount int64         `yaml:"consecutive_failure_count" json:"consecutive_failure_count"`
	BackOffInitialInterval  time.Duration `yaml:"back_off_initial_interval" json:"back_off_initial_interval"`
	BackOffMaxInterval      time.Duration `yaml:"back_off_max_interval" json:"back_off_max_interval"`
}

type DispatcherConfig struct {
	QueueSize   int           `yaml:"queue_size" json:"queue_size"`
	Workers     int           `yaml:"workers" json:"workers"`
	SendTimeout time.Duration `yaml:"send_timeout" json:"send_timeout"`
	// SendsPerSecond throttles outgoing mail across all workers. Zero disables the throttle.
	SendsPerSecond float64 `yaml:"sends_per_second" json:"sends_per_second"`
	Burst          int     `yaml:"burst" json:"burst"`

	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker" json:"circuit_breaker"`
}

// Metrics receives the outcome of every task.
type Metrics interface {
	NotificationSent()
	NotificationFailed()
	NotificationDropped()
	QueueLength(length int)
}

type noopMetrics struct{}

func (noopMetrics) NotificationSent()    {}
func (noopMetrics) NotificationFailed()  {}
func (noopMetrics) NotificationDropped() {}
func (noopMetrics) QueueLength(int)      {}

type Dispatcher struct {
	queue       chan models.NotificationTask
	workers     int
	sendTimeout time.Duration
	transport   *helpers.Lazy[Transport]
	composer    Composer
	throttle    *rate.Limiter
	breaker     *circuit.Breaker
	metrics     Metrics
	logger      lager.Logger
}

// NewDispatcher queues notifications for background delivery. Nothing is sent
// until the dispatcher is started as an ifrit runner.
func NewDispatcher(conf DispatcherConfig, transport *helpers.Lazy[Transport], composer Composer, metrics Metrics, logger lager.Logger) *Dispatcher {
	queueSize := conf.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	workers := conf.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	sendTimeout := conf.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	throttle := rate.NewLimiter(rate.Inf, 0)
	if conf.SendsPerSecond > 0 {
		burst := conf.Burst
		if burst <= 0 {
			burst = 1
		}
		throttle = rate.NewLimiter(rate.Limit(conf.SendsPerSecond), burst)
	}

	return &Dispatcher{
		queue:       make(chan models.NotificationTask, queueSize),
		workers:     workers,
		sendTimeout: sendTimeout,
		transport:   transport,
		composer:    composer,
		throttle:    throttle,
		breaker:     newBreaker(conf.CircuitBreaker),
		metrics:     metrics,
		logger:      logger.Session("notification-dispatcher"),
	}
}

func newBreaker(conf CircuitBreakerConfig) *circuit.Breaker {
	failures := conf.ConsecutiveFailureCount
	if failures <= 0 {
		failures = DefaultBreakerConsecutiveFailureCount
	}
	bf := backoff.NewExponentialBackOff()
	bf.InitialInterval = conf.BackOffInitialInterval
	if bf.InitialInterval <= 0 {
		bf.InitialInterval = DefaultBackOffInitialInterval
	}
	bf.MaxInterval = conf.BackOffMaxInterval
	if bf.MaxInterval <= 0 {
		bf.MaxInterval = DefaultBackOffMaxInterval
	}
	bf.MaxElapsedTime = 0
	bf.Reset()

	return circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    bf,
		ShouldTrip: circuit.ConsecutiveTripFunc(failures),
	})
}

// Dispatch enqueues the task and returns immediately. A full queue drops the task.
func (d *Dispatcher) Dispatch(task models.NotificationTask) {
	select {
	case d.queue <- task:
		d.metrics.QueueLength(len(d.queue))
	default:
		d.metrics.NotificationDropped()
		d.logger.Error("notification-dropped", ErrQueueFull, lager.Data{"email": task.Email, "queue_size": cap(d.queue)})
	}
}

// Run starts the workers and blocks until signalled. Shutdown cancels sends that
// are in flight and discards queued tasks, so each task is delivered at most once.
func (d *Dispatcher) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func(worker int) {
			defer wg.Done()
			d.work(ctx, worker)
		}(i)
	}
	close(ready)
	d.logger.Info("started", lager.Data{"workers": d.workers, "queue_size": cap(d.queue)})

	<-signals
	cancel()
	wg.Wait()
	if pending := len(d.queue); pending > 0 {
		d.logger.Info("discarding-pending-notifications", lager.Data{"pending": pending})
	}
	d.logger.Info("stopped")
	return nil
}

func (d *Dispatcher) work(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-d.queue:
			d.metrics.QueueLength(len(d.queue))
			d.deliver(ctx, worker, task)
		}
	}
}

// deliver makes exactly one attempt. Failures end up in the log and the metrics.
func (d *Dispatcher) deliver(ctx context.Context, worker int, task models.NotificationTask) {
	logger := d.logger.Session("deliver", lager.Data{"worker": worker, "email": task.Email})

	if err := d.throttle.Wait(ctx); err != nil {
		logger.Info("abandoned", lager.Data{"reason": err.Error()})
		return
	}

	transport, err := d.transport.Get()
	if err != nil {
		d.metrics.NotificationFailed()
		logger.Error("failed-to-initialize-transport", err)
		return
	}

	email, err := d.composer.Compose(task)
	if err != nil {
		d.metrics.NotificationFailed()
		logger.Error("failed-to-compose-email", err)
		return
	}

	var messageID string
	err = d.breaker.Call(func() error {
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
		var sendErr error
		messageID, sendErr = transport.Send(sendCtx, email)
		return sendErr
	}, 0)
	if errors.Is(err, circuit.ErrBreakerOpen) {
		d.metrics.NotificationFailed()
		logger.Error("circuit-open", err, lager.Data{"consecutive_failures": d.breaker.ConsecFailures()})
		return
	}
	if err != nil {
		d.metrics.NotificationFailed()
		logger.Error("failed-to-send-email", err, lager.Data{"kind": models.NotificationFailed})
		return
	}
	d.metrics.NotificationSent()
	logger.Info("sent", lager.Data{"message_id": messageID})
}
