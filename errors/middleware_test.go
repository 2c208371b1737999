package errors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/healthdesk/registry/errors"
)

var _ = Describe("CustomHTTPErrorHandler", func() {
	var e *echo.Echo
	var rec *httptest.ResponseRecorder
	var c echo.Context

	BeforeEach(func() {
		e = echo.New()
		e.HTTPErrorHandler = apperrors.CustomHTTPErrorHandler

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec = httptest.NewRecorder()
		c = e.NewContext(req, rec)
	})

	It("renders validation errors as a field map", func() {
		err := apperrors.ValidationError{Fields: map[string]string{
			"email": "email is required",
		}}

		apperrors.CustomHTTPErrorHandler(err, c)

		Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		var body map[string]map[string]string
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body["errors"]).To(HaveKeyWithValue("email", "email is required"))
	})

	It("uses the status code of http errors", func() {
		apperrors.CustomHTTPErrorHandler(apperrors.NotFound, c)

		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Body.String()).To(ContainSubstring("not found"))
	})

	It("unwraps wrapped http errors", func() {
		err := fmt.Errorf("handling request: %w", apperrors.Duplicate)

		apperrors.CustomHTTPErrorHandler(err, c)

		Expect(rec.Code).To(Equal(http.StatusConflict))
	})

	It("falls back to an internal server error for unknown errors", func() {
		apperrors.CustomHTTPErrorHandler(fmt.Errorf("boom"), c)

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
	})
})
