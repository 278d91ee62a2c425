package contactserver_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/contactform/contactapi/contactserver"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
	pkgerrors "github.com/pkg/errors"
)

var _ = Describe("ErrorResponder", func() {
	var (
		logger    *lagertest.TestLogger
		responder *contactserver.ErrorResponder
		rec       *httptest.ResponseRecorder
		req       *http.Request
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("errors")
		responder = contactserver.NewErrorResponder("development", logger)
		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	})

	It("treats unclassified errors as internal errors", func() {
		responder.Respond(rec, req, pkgerrors.New("boom"))

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(ContainSubstring(`"message":"Internal Server Error"`))
		Expect(rec.Body.String()).To(ContainSubstring(`"stack":"boom\n`))
		Expect(logger).To(Say("errors.error-responder.request-failed"))
	})

	It("never attaches a stack to client errors", func() {
		responder.Respond(rec, req, models.NewValidationFailedError("invalid email format", errors.New("regexp mismatch")))

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(MatchJSON(`{"success":false,"message":"invalid email format"}`))
		Expect(logger).To(Say("errors.error-responder.request-rejected"))
		Expect(logger).To(Say("regexp mismatch"))
	})

	It("hides the stack in production", func() {
		responder = contactserver.NewErrorResponder(contactserver.ProductionEnvironment, logger)
		responder.Respond(rec, req, models.NewPersistenceFailedError(pkgerrors.New("disk full")))

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(MatchJSON(`{"success":false,"message":"Internal Server Error"}`))
	})
})
