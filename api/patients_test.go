package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/healthdesk/registry/api"
	"github.com/healthdesk/registry/auth"
	"github.com/healthdesk/registry/config"
	apperrors "github.com/healthdesk/registry/errors"
	"github.com/healthdesk/registry/patients"
	"github.com/healthdesk/registry/store"

	patientsTest "github.com/healthdesk/registry/patients/test"
)

var _ = Describe("Patients Handler", func() {
	var ctrl *gomock.Controller
	var service *patientsTest.MockService
	var handler *api.Handler
	var e *echo.Echo

	authData := &auth.Auth{SubjectId: "owner-123", Name: "Dr Jones"}

	newContext := func(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		auth.SetAuthData(c, authData)
		return c, rec
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = patientsTest.NewMockService(ctrl)

		cfg, err := config.NewConfig()
		Expect(err).ToNot(HaveOccurred())

		handler = api.NewHandler(api.Params{
			Patients: service,
			Config:   cfg,
		})
		e = echo.New()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("ListPatients", func() {
		It("lists the caller's patients with default pagination", func() {
			patient := patientsTest.RandomPatient()
			service.EXPECT().
				List(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter *patients.Filter, pagination store.Pagination) (*patients.Page, error) {
					Expect(filter.OwnerId).To(Equal(authData.SubjectId))
					Expect(filter.Search).To(BeNil())
					Expect(pagination.Offset).To(Equal(0))
					Expect(pagination.Limit).To(Equal(12))
					return &patients.Page{Data: []*patients.Patient{&patient}, CurrentPage: 1, LastPage: 1, Total: 1}, nil
				})

			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/patients", nil))
			Expect(handler.ListPatients(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			var page api.PageDto
			Expect(json.Unmarshal(rec.Body.Bytes(), &page)).To(Succeed())
			Expect(page.Data).To(HaveLen(1))
			Expect(page.Data[0].Id).To(Equal(patient.Id))
			Expect(page.Data[0].Phone).To(Equal(patient.Phone))
			Expect(page.Meta.Total).To(Equal(int64(1)))
		})

		It("passes search parameters and translates page numbers to offsets", func() {
			service.EXPECT().
				List(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter *patients.Filter, pagination store.Pagination) (*patients.Page, error) {
					Expect(filter.Search).ToNot(BeNil())
					Expect(*filter.Search).To(Equal("ana"))
					Expect(filter.Field).To(Equal("email"))
					Expect(pagination.Offset).To(Equal(10))
					Expect(pagination.Limit).To(Equal(5))
					return &patients.Page{Data: []*patients.Patient{}, CurrentPage: 3, LastPage: 3}, nil
				})

			c, _ := newContext(httptest.NewRequest(http.MethodGet, "/patients?q=ana&field=email&page=3&per_page=5", nil))
			Expect(handler.ListPatients(c)).To(Succeed())
		})

		It("clamps the page size to the configured maximum", func() {
			service.EXPECT().
				List(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *patients.Filter, pagination store.Pagination) (*patients.Page, error) {
					Expect(pagination.Limit).To(Equal(100))
					return &patients.Page{Data: []*patients.Patient{}, CurrentPage: 1, LastPage: 1}, nil
				})

			c, _ := newContext(httptest.NewRequest(http.MethodGet, "/patients?per_page=1000", nil))
			Expect(handler.ListPatients(c)).To(Succeed())
		})

		It("rejects unauthenticated requests", func() {
			req := httptest.NewRequest(http.MethodGet, "/patients", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			Expect(handler.ListPatients(c)).To(MatchError(apperrors.Unauthorized))
		})
	})

	Describe("CreatePatient", func() {
		newUpload := func(fields map[string]string, photo []byte, contentType string) *http.Request {
			body := &bytes.Buffer{}
			writer := multipart.NewWriter(body)
			for field, value := range fields {
				Expect(writer.WriteField(field, value)).To(Succeed())
			}
			if photo != nil {
				header := textproto.MIMEHeader{}
				header.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
				header.Set("Content-Type", contentType)
				part, err := writer.CreatePart(header)
				Expect(err).ToNot(HaveOccurred())
				_, err = part.Write(photo)
				Expect(err).ToNot(HaveOccurred())
			}
			Expect(writer.Close()).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/patients", body)
			req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
			return req
		}

		fields := map[string]string{
			"full_name":    "Ana Gomez",
			"email":        "ana@gmail.com",
			"country_code": "+1",
			"number":       "5551234567",
		}

		It("registers a patient from a multipart form", func() {
			photo := []byte{0xFF, 0xD8, 0xFF, 0xD9}
			created := patientsTest.RandomPatient()

			service.EXPECT().
				Register(gomock.Any(), authData.SubjectId, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, form *patients.Form) (*patients.Patient, error) {
					Expect(form.FullName).To(Equal("Ana Gomez"))
					Expect(form.Email).To(Equal("ana@gmail.com"))
					Expect(form.CountryCode).To(Equal("+1"))
					Expect(form.Number).To(Equal("5551234567"))
					Expect(form.Photo).ToNot(BeNil())
					Expect(form.Photo.Data).To(Equal(photo))
					Expect(form.Photo.Size).To(Equal(int64(len(photo))))
					Expect(form.Photo.ContentType).To(Equal("image/jpeg"))
					return &created, nil
				})

			c, rec := newContext(newUpload(fields, photo, "image/jpeg"))
			Expect(handler.CreatePatient(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			var dto api.PatientDto
			Expect(json.Unmarshal(rec.Body.Bytes(), &dto)).To(Succeed())
			Expect(dto.Id).To(Equal(created.Id))
		})

		It("passes a missing photo to validation", func() {
			service.EXPECT().
				Register(gomock.Any(), authData.SubjectId, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, form *patients.Form) (*patients.Patient, error) {
					Expect(form.Photo).To(BeNil())
					return nil, apperrors.ValidationError{Fields: map[string]string{"photo": "photo is required"}}
				})

			c, _ := newContext(newUpload(fields, nil, ""))
			err := handler.CreatePatient(c)

			validationErr := apperrors.ValidationError{}
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})

		It("reports duplicate registrations as a conflict", func() {
			service.EXPECT().
				Register(gomock.Any(), authData.SubjectId, gomock.Any()).
				Return(nil, patients.ErrDuplicateEmail)

			c, _ := newContext(newUpload(fields, []byte{0xFF, 0xD8}, "image/jpeg"))
			Expect(handler.CreatePatient(c)).To(MatchError(apperrors.Duplicate))
		})

		It("hides internal failures", func() {
			service.EXPECT().
				Register(gomock.Any(), authData.SubjectId, gomock.Any()).
				Return(nil, io.ErrUnexpectedEOF)

			c, _ := newContext(newUpload(fields, []byte{0xFF, 0xD8}, "image/jpeg"))
			Expect(handler.CreatePatient(c)).To(MatchError(apperrors.InternalServerError))
		})
	})

	Describe("DeletePatient", func() {
		It("removes the patient and reports success", func() {
			service.EXPECT().
				Remove(gomock.Any(), authData.SubjectId, "patient-1", authData.Name).
				Return(nil)

			req := httptest.NewRequest(http.MethodDelete, "/patients/patient-1", nil)
			c, rec := newContext(req)
			c.SetParamNames("id")
			c.SetParamValues("patient-1")

			Expect(handler.DeletePatient(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"ok": true}`))
		})

		It("reports ownership violations as forbidden", func() {
			service.EXPECT().
				Remove(gomock.Any(), authData.SubjectId, "patient-2", authData.Name).
				Return(patients.ErrNotOwner)

			req := httptest.NewRequest(http.MethodDelete, "/patients/patient-2", nil)
			c, _ := newContext(req)
			c.SetParamNames("id")
			c.SetParamValues("patient-2")

			Expect(handler.DeletePatient(c)).To(MatchError(apperrors.Forbidden))
		})

		It("reports unknown patients as not found", func() {
			service.EXPECT().
				Remove(gomock.Any(), authData.SubjectId, "missing", authData.Name).
				Return(patients.ErrNotFound)

			req := httptest.NewRequest(http.MethodDelete, "/patients/missing", nil)
			c, _ := newContext(req)
			c.SetParamNames("id")
			c.SetParamValues("missing")

			Expect(handler.DeletePatient(c)).To(MatchError(apperrors.NotFound))
		})
	})
})
