package contactserver

import (
	"fmt"
	"net/http"

	"github.com/contactform/contactapi/helpers/handlers"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/lager/v3"
)

const ProductionEnvironment = "production"

// ErrorResponder writes the error envelope for every failed request.
type ErrorResponder struct {
	environment string
	logger      lager.Logger
}

func NewErrorResponder(environment string, logger lager.Logger) *ErrorResponder {
	return &ErrorResponder{environment: environment, logger: logger.Session("error-responder")}
}

func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	httpErr, ok := models.AsHTTPError(err)
	if !ok {
		httpErr = models.NewHTTPError(models.PersistenceFailed, http.StatusInternalServerError, models.InternalServerErrorMessage, err)
	}

	data := lager.Data{"method": r.Method, "path": r.URL.Path, "status": httpErr.StatusCode, "kind": httpErr.Kind}
	if httpErr.StatusCode >= http.StatusInternalServerError {
		e.logger.Error("request-failed", err, data)
	} else {
		data["reason"] = err.Error()
		e.logger.Info("request-rejected", data)
	}

	resp := models.ErrorResponse{
		Success: false,
		Message: httpErr.Message,
		Errors:  httpErr.Details,
	}
	if e.environment != ProductionEnvironment && httpErr.StatusCode >= http.StatusInternalServerError {
		resp.Stack = stackOf(httpErr)
	}
	handlers.WriteJSONResponse(w, httpErr.StatusCode, resp)
}

// stackOf renders the cause with %+v so errors created by github.com/pkg/errors
// carry their stack trace.
func stackOf(httpErr *models.HTTPError) string {
	if cause := httpErr.Unwrap(); cause != nil {
		return fmt.Sprintf("%+v", cause)
	}
	return httpErr.Error()
}
