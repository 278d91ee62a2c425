package handlers_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/contactform/contactapi/helpers/handlers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var w *httptest.ResponseRecorder

type Response struct {
	Key string `json:"key"`
}

var _ = Describe("handlers", func() {
	BeforeEach(func() {
		w = httptest.NewRecorder()
	})

	Describe("WriteJSONResponse", func() {
		Context("with valid json structure", func() {
			It("should succeed", func() {
				WriteJSONResponse(w, http.StatusCreated, Response{Key: "val"})
				Expect(w.Result().Header.Values("Content-Length")).To(Equal([]string{"13"}))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(w.Body.String()).To(Equal(`{"key":"val"}`))
				Expect(w.Code).To(Equal(http.StatusCreated))
			})
		})
		Context("with invalid json structure", func() {
			It("should return an internal server error", func() {
				var garbage map[float64]string
				WriteJSONResponse(w, http.StatusOK, garbage)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(Equal(`{"success":false,"message":"Internal Server Error"}`))
			})
		})
	})

	Describe("WriteErrorResponse", func() {
		It("omits errors when there are no details", func() {
			WriteErrorResponse(w, http.StatusNotFound, "Route GET /nope not found")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(Equal(`{"success":false,"message":"Route GET /nope not found"}`))
		})

		It("lists the details", func() {
			WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "email is invalid")
			Expect(w.Body.String()).To(Equal(`{"success":false,"message":"Validation failed","errors":["email is invalid"]}`))
		})
	})
})
