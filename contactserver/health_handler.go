package contactserver

import (
	"net/http"

	"github.com/contactform/contactapi/helpers/handlers"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/clock"
)

const isoTimestampLayout = "2006-01-02T15:04:05.000Z"

type HealthHandler struct {
	environment string
	clock       clock.Clock
}

func NewHealthHandler(environment string, clock clock.Clock) *HealthHandler {
	return &HealthHandler{environment: environment, clock: clock}
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:      "ok",
		Environment: h.environment,
		Timestamp:   h.clock.Now().UTC().Format(isoTimestampLayout),
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteErrorResponse(w, http.StatusNotFound, "Route "+r.Method+" "+r.URL.Path+" not found")
}
