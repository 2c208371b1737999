package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthdesk/registry/auth"
	apperrors "github.com/healthdesk/registry/errors"
	"github.com/healthdesk/registry/patients"
)

// ListPatients
// (GET /) (GET /patients)
func (h *Handler) ListPatients(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)
	if authData == nil {
		return apperrors.Unauthorized
	}

	filter := patients.Filter{
		OwnerId: authData.SubjectId,
		Field:   ec.QueryParam("field"),
	}
	if search := ec.QueryParam("q"); search != "" {
		filter.Search = &search
	}

	page, _ := strconv.Atoi(ec.QueryParam("page"))
	perPage, _ := strconv.Atoi(ec.QueryParam("per_page"))

	result, err := h.patients.List(ctx, &filter, h.pagination(page, perPage))
	if err != nil {
		return apperrors.InternalServerError
	}

	return ec.JSON(http.StatusOK, NewPageDto(result))
}

// CreatePatient
// (POST /patients)
func (h *Handler) CreatePatient(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)
	if authData == nil {
		return apperrors.Unauthorized
	}

	form := patients.Form{
		FullName:    ec.FormValue("full_name"),
		Email:       ec.FormValue("email"),
		CountryCode: ec.FormValue("country_code"),
		Number:      ec.FormValue("number"),
	}

	photo, err := h.photoUpload(ec)
	if err != nil {
		return err
	}
	form.Photo = photo

	created, err := h.patients.Register(ctx, authData.SubjectId, &form)
	if err != nil {
		validationErr := apperrors.ValidationError{}
		switch {
		case errors.As(err, &validationErr):
			return err
		case errors.Is(err, patients.ErrDuplicateEmail):
			return apperrors.Duplicate
		default:
			return apperrors.InternalServerError
		}
	}

	return ec.JSON(http.StatusOK, NewPatientDto(created))
}

// DeletePatient
// (DELETE /patients/:id)
func (h *Handler) DeletePatient(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)
	if authData == nil {
		return apperrors.Unauthorized
	}

	id := ec.Param("id")
	if err := h.patients.Remove(ctx, authData.SubjectId, id, authData.Name); err != nil {
		switch {
		case errors.Is(err, patients.ErrNotFound):
			return apperrors.NotFound
		case errors.Is(err, patients.ErrNotOwner):
			return apperrors.Forbidden
		default:
			return apperrors.InternalServerError
		}
	}

	return ec.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// photoUpload reads the uploaded photo into memory. Oversized uploads are
// never buffered; the upload is handed to validation with its declared
// size so the client gets a field error rather than a transport error.
func (h *Handler) photoUpload(ec echo.Context) (*patients.PhotoUpload, error) {
	header, err := ec.FormFile("photo")
	if err != nil {
		return nil, nil
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if header.Size > h.cfg.MaxPhotoSizeBytes {
		return &patients.PhotoUpload{Size: header.Size, ContentType: contentType}, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.BadRequest
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.BadRequest
	}

	return &patients.PhotoUpload{
		Data:        data,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}
