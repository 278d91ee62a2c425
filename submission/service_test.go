package submission_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/contactform/contactapi/db"
	"github.com/contactform/contactapi/fakes"
	"github.com/contactform/contactapi/models"
	"github.com/contactform/contactapi/submission"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
)

var _ = Describe("Service", func() {
	var (
		submissionDB *fakes.FakeSubmissionDB
		logger       *lagertest.TestLogger
		service      *submission.Service
		input        models.ContactSubmission
		record       *models.SubmissionRecord
		err          error
	)

	BeforeEach(func() {
		submissionDB = &fakes.FakeSubmissionDB{}
		logger = lagertest.NewTestLogger("submission")
		service = submission.NewService(submissionDB, logger)
		input = models.ContactSubmission{Name: "Bob", Email: "bob@example.com", Message: "Hello there, world"}
	})

	JustBeforeEach(func() {
		record, err = service.Submit(context.Background(), input)
	})

	Context("when the submission is stored", func() {
		var stored *models.SubmissionRecord

		BeforeEach(func() {
			stored = &models.SubmissionRecord{
				ContactSubmission: input,
				ID:                "3b241101-e2bb-4255-8caf-4136c566a962",
				CreatedAt:         time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			}
			submissionDB.SaveSubmissionReturns(stored, nil)
		})

		It("returns the stored record", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record).To(Equal(stored))
		})

		It("saves the submission exactly once", func() {
			Expect(submissionDB.SaveSubmissionCallCount()).To(Equal(1))
			_, saved := submissionDB.SaveSubmissionArgsForCall(0)
			Expect(saved).To(Equal(input))
		})
	})

	Context("when the store reports a duplicate", func() {
		BeforeEach(func() {
			submissionDB.SaveSubmissionReturns(nil, fmt.Errorf("%w: duplicate key value", db.ErrAlreadyExists))
		})

		It("returns a duplicate submission error", func() {
			httpErr, ok := models.AsHTTPError(err)
			Expect(ok).To(BeTrue())
			Expect(httpErr.Kind).To(Equal(models.DuplicateSubmission))
			Expect(httpErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(httpErr.Message).To(Equal("Duplicate field value entered"))
			Expect(record).To(BeNil())
		})

		It("keeps the cause in the chain", func() {
			Expect(errors.Is(err, db.ErrAlreadyExists)).To(BeTrue())
		})
	})

	Context("when the store rejects a column", func() {
		BeforeEach(func() {
			submissionDB.SaveSubmissionReturns(nil, &db.ConstraintViolationError{
				Constraint: "contact_submissions_name_length",
				Message:    "new row violates check constraint",
			})
		})

		It("returns a validation error with details", func() {
			httpErr, ok := models.AsHTTPError(err)
			Expect(ok).To(BeTrue())
			Expect(httpErr.Kind).To(Equal(models.ValidationFailed))
			Expect(httpErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(httpErr.Message).To(Equal("Validation failed"))
			Expect(httpErr.Details).To(ConsistOf("name must be at least 2 characters"))
		})
	})

	Context("when the store fails for any other reason", func() {
		BeforeEach(func() {
			submissionDB.SaveSubmissionReturns(nil, errors.New("connection refused"))
		})

		It("returns a persistence error with a generic message", func() {
			httpErr, ok := models.AsHTTPError(err)
			Expect(ok).To(BeTrue())
			Expect(httpErr.Kind).To(Equal(models.PersistenceFailed))
			Expect(httpErr.StatusCode).To(Equal(http.StatusInternalServerError))
			Expect(httpErr.Message).To(Equal("Internal Server Error"))
		})

		It("logs the full failure", func() {
			Expect(logger.LogMessages()).To(ContainElement("submission.submission-service.submit.failed-to-save-submission"))
			Eventually(logger.Buffer()).Should(Say("connection refused"))
			Expect(logger.Logs()[0].LogLevel).To(Equal(lager.ERROR))
		})
	})
})
