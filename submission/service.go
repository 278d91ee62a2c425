package submission

import (
	"context"
	"errors"

	"github.com/contactform/contactapi/db"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/lager/v3"
)

// Service stores validated submissions and translates storage failures into
// errors the HTTP layer can present.
type Service struct {
	submissionDB db.SubmissionDB
	logger       lager.Logger
}

func NewService(submissionDB db.SubmissionDB, logger lager.Logger) *Service {
	return &Service{
		submissionDB: submissionDB,
		logger:       logger.Session("submission-service"),
	}
}

// Submit persists the submission once. Failures are never retried.
func (s *Service) Submit(ctx context.Context, submission models.ContactSubmission) (*models.SubmissionRecord, error) {
	logger := s.logger.Session("submit", lager.Data{"email": submission.Email})

	record, err := s.submissionDB.SaveSubmission(ctx, submission)
	if err == nil {
		logger.Debug("saved", lager.Data{"id": record.ID})
		return record, nil
	}

	switch {
	case errors.Is(err, db.ErrAlreadyExists):
		logger.Info("duplicate-submission", lager.Data{"reason": err.Error()})
		return nil, models.NewDuplicateSubmissionError(err)
	case errors.Is(err, db.ErrConstraintViolation):
		logger.Info("submission-rejected-by-store", lager.Data{"reason": err.Error()})
		httpErr := models.NewValidationFailedError(models.ValidationFailedMessage, err)
		if violation, ok := db.AsConstraintViolation(err); ok {
			httpErr = httpErr.WithDetails(violation.Details()...)
		}
		return nil, httpErr
	default:
		logger.Error("failed-to-save-submission", err)
		return nil, models.NewPersistenceFailedError(err)
	}
}
