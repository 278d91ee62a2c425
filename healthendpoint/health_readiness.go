package healthendpoint

import (
	"net/http"
	"sync"
	"time"

	"github.com/contactform/contactapi/helpers/handlers"

	"code.cloudfoundry.org/clock"
)

type (
	Pinger interface {
		Ping() error
	}

	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"

	readinessCacheTTL = 30 * time.Second
)

// readinessHandler runs the checkers at most once per readinessCacheTTL.
// Concurrent callers wait for the running round instead of starting their own.
type readinessHandler struct {
	checkers []Checker
	clock    clock.Clock

	mu        sync.Mutex
	cached    *readinessResponse
	checkedAt time.Time
}

func newReadinessHandler(checkers []Checker, clock clock.Clock) *readinessHandler {
	return &readinessHandler{checkers: checkers, clock: clock}
}

func (h *readinessHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSONResponse(w, http.StatusOK, h.check())
}

func (h *readinessHandler) check() readinessResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.clock.Now()
	if h.cached != nil && now.Sub(h.checkedAt) < readinessCacheTTL {
		return *h.cached
	}

	checks := make([]ReadinessCheck, 0, len(h.checkers))
	overallStatus := statusUp
	for _, checker := range h.checkers {
		check := checker()
		checks = append(checks, check)
		if check.Status == statusDown {
			overallStatus = statusDown
		}
	}
	h.cached = &readinessResponse{OverallStatus: overallStatus, Checks: checks}
	h.checkedAt = now
	return *h.cached
}

func DbChecker(dbName string, pinger Pinger) Checker {
	if pinger == nil {
		return func() ReadinessCheck {
			return ReadinessCheck{Name: dbName, Type: "database", Status: statusUp}
		}
	}
	return func() ReadinessCheck {
		status := statusUp
		if err := pinger.Ping(); err != nil {
			status = statusDown
		}
		return ReadinessCheck{Name: dbName, Type: "database", Status: status}
	}
}
