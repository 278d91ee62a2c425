package contactserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/helpers/handlers"
	"github.com/contactform/contactapi/models"
	"github.com/contactform/contactapi/validator"

	"code.cloudfoundry.org/lager/v3"
)

const (
	DefaultMaxBodyBytes int64 = 10 * 1024

	ContactSavedMessage    = "Contact message received and saved"
	InvalidJSONMessage     = "Invalid JSON payload"
	PayloadTooLargeMessage = "Request entity too large"
)

type Submitter interface {
	Submit(ctx context.Context, submission models.ContactSubmission) (*models.SubmissionRecord, error)
}

type Dispatcher interface {
	Dispatch(task models.NotificationTask)
}

type ContactHandler struct {
	submitter    Submitter
	dispatcher   Dispatcher
	errors       *ErrorResponder
	maxBodyBytes int64
	logger       lager.Logger
}

func NewContactHandler(submitter Submitter, dispatcher Dispatcher, errorResponder *ErrorResponder, maxBodyBytes int64, logger lager.Logger) *ContactHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &ContactHandler{
		submitter:    submitter,
		dispatcher:   dispatcher,
		errors:       errorResponder,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.Session("contact-handler"),
	}
}

func (h *ContactHandler) PostContact(w http.ResponseWriter, r *http.Request) {
	raw, err := h.decodeBody(w, r)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	submission, err := validator.Validate(raw)
	if err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			err = validationErr.HTTPError()
		}
		h.errors.Respond(w, r, err)
		return
	}

	record, err := h.submitter.Submit(r.Context(), submission)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	logData := lager.Data{"id": record.ID}
	helpers.AddTraceID(r.Context(), logData)
	h.logger.Info("contact-saved", logData)

	handlers.WriteJSONResponse(w, http.StatusCreated, models.SuccessResponse{
		Success: true,
		Message: ContactSavedMessage,
		Data:    record.PublicData(),
	})

	h.dispatcher.Dispatch(record.NotificationTask())
}

// decodeBody reads at most maxBodyBytes. A body that is valid JSON but not an
// object decodes to an empty map and fails validation as missing fields.
func (h *ContactHandler) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, models.NewHTTPError(models.ValidationFailed, http.StatusRequestEntityTooLarge, PayloadTooLargeMessage, err)
		}
		return nil, models.NewHTTPError(models.ValidationFailed, http.StatusBadRequest, InvalidJSONMessage, err)
	}

	var decoded interface{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, models.NewHTTPError(models.ValidationFailed, http.StatusBadRequest, InvalidJSONMessage, err)
		}
	}
	raw, ok := decoded.(map[string]interface{})
	if !ok {
		raw = map[string]interface{}{}
	}
	return raw, nil
}
