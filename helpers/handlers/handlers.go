package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/lager/v3"
)

var handlersLogger = helpers.InitLoggerFromConfig(&helpers.LoggingConfig{Level: "error"}, "helpers.handlers")

var internalServerErrorBody = []byte(`{"success":false,"message":"Internal Server Error"}`)

func WriteJSONResponse(w http.ResponseWriter, statusCode int, jsonObj interface{}) {
	jsonBytes, err := json.Marshal(jsonObj)
	if err != nil {
		handlersLogger.Error("marshal-json-response", err, lager.Data{"statusCode": statusCode})
		statusCode, jsonBytes = http.StatusInternalServerError, internalServerErrorBody
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonBytes)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(jsonBytes); err != nil {
		handlersLogger.Error("write-json-response", err, lager.Data{"statusCode": statusCode})
	}
}

// WriteErrorResponse writes the envelope every failed request answers with.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details ...string) {
	WriteJSONResponse(w, statusCode, models.ErrorResponse{
		Success: false,
		Message: message,
		Errors:  details,
	})
}
