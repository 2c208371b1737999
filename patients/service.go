package patients

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/healthdesk/registry/deletions"
	apperrors "github.com/healthdesk/registry/errors"
	"github.com/healthdesk/registry/mailer"
	"github.com/healthdesk/registry/photos"
	"github.com/healthdesk/registry/store"
)

type service struct {
	repo      Repository
	deletions deletions.Repository[Patient]
	photos    photos.Store
	notifier  mailer.Notifier
	validator *Validator
	txn       store.TransactionRunner
	logger    *zap.SugaredLogger
}

var _ Service = &service{}

type ServiceParams struct {
	fx.In

	Repo      Repository
	Deletions deletions.Repository[Patient]
	Photos    photos.Store
	Notifier  mailer.Notifier
	Validator *Validator
	Txn       store.TransactionRunner
	Logger    *zap.SugaredLogger
}

func NewService(p ServiceParams) (Service, error) {
	return &service{
		repo:      p.Repo,
		deletions: p.Deletions,
		photos:    p.Photos,
		notifier:  p.Notifier,
		validator: p.Validator,
		txn:       p.Txn,
		logger:    p.Logger,
	}, nil
}

// Register validates the form, stores the photo and inserts the record in
// a single transaction, then sends a best-effort registration email. The
// stored photo must never outlive a failed insert.
func (s *service) Register(ctx context.Context, ownerId string, form *Form) (*Patient, error) {
	if fields := s.validator.Validate(form); len(fields) > 0 {
		return nil, apperrors.ValidationError{Fields: fields}
	}

	key := photos.NewKey()
	result, err := s.txn.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		url, err := s.photos.Put(sessCtx, key, bytes.NewReader(form.Photo.Data), form.Photo.Size, form.Photo.ContentType)
		if err != nil {
			return nil, err
		}

		patient := Patient{
			Id:          uuid.NewString(),
			OwnerId:     ownerId,
			FullName:    form.FullName,
			Email:       form.Email,
			CountryCode: form.CountryCode,
			Number:      form.Number,
			Phone:       form.Phone(),
			PhotoURL:    url,
			PhotoKey:    key,
			CreatedTime: time.Now(),
		}

		created, err := s.repo.Create(sessCtx, patient)
		if err != nil {
			s.photos.Delete(ctx, key)
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	created := result.(*Patient)
	s.logger.Infow("registered patient", "ownerId", ownerId, "patientId", created.Id)
	s.notifier.PatientRegistered(ctx, created.FullName, created.Email)
	return created, nil
}

func (s *service) Get(ctx context.Context, ownerId string, id string) (*Patient, error) {
	return s.repo.Get(ctx, ownerId, id)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) (*Page, error) {
	patients, total, err := s.repo.List(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	lastPage := 1
	if pagination.Limit > 0 {
		lastPage = int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
		if lastPage < 1 {
			lastPage = 1
		}
	}

	return &Page{
		Data:        patients,
		CurrentPage: pagination.CurrentPage(),
		LastPage:    lastPage,
		Total:       total,
	}, nil
}

// Remove deletes a patient owned by the caller, preserving an audit copy
// in the same transaction. Photo cleanup and the deregistration email run
// after commit and are best-effort.
func (s *service) Remove(ctx context.Context, ownerId string, id string, removedBy string) error {
	patient, err := s.repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if patient.OwnerId != ownerId {
		return ErrNotOwner
	}

	_, err = s.txn.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		meta := deletions.Metadata{DeletedByUserId: &ownerId}
		if err := s.deletions.Create(sessCtx, *patient, meta); err != nil {
			return nil, err
		}
		return nil, s.repo.Remove(sessCtx, ownerId, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("removed patient", "ownerId", ownerId, "patientId", id)
	s.photos.Delete(ctx, patient.PhotoKey)
	s.notifier.PatientDetached(ctx, patient.FullName, patient.Email, removedBy)
	return nil
}
