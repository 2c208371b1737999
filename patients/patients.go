package patients

import (
	"context"
	"errors"
	"time"

	"github.com/healthdesk/registry/store"
)

var ErrNotFound = errors.New("patient not found")
var ErrNotOwner = errors.New("patient is owned by a different user")
var ErrDuplicateEmail = errors.New("patient with this email is already registered")

//go:generate go tool mockgen -source=./patients.go -destination=./test/mock_service.go -package test

type Service interface {
	Register(ctx context.Context, ownerId string, form *Form) (*Patient, error)
	Get(ctx context.Context, ownerId string, id string) (*Patient, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) (*Page, error)
	Remove(ctx context.Context, ownerId string, id string, removedBy string) error
}

// Patient is a registry record owned by the user who created it. Records
// are immutable after creation and can only be removed by their owner.
type Patient struct {
	Id          string    `bson:"_id,omitempty"`
	OwnerId     string    `bson:"ownerId"`
	FullName    string    `bson:"fullName"`
	Email       string    `bson:"email"`
	CountryCode string    `bson:"countryCode"`
	Number      string    `bson:"number"`
	Phone       string    `bson:"phone"`
	PhotoURL    string    `bson:"photoUrl"`
	PhotoKey    string    `bson:"photoKey"`
	CreatedTime time.Time `bson:"createdTime"`
}

const (
	SearchFieldName  = "name"
	SearchFieldEmail = "email"
	SearchFieldPhone = "phone"
)

type Filter struct {
	OwnerId string
	Search  *string
	Field   string
}

type Page struct {
	Data        []*Patient
	CurrentPage int
	LastPage    int
	Total       int64
}

type PhotoUpload struct {
	Data        []byte
	Size        int64
	ContentType string
}

// Form carries the raw registration input before validation normalizes it.
type Form struct {
	FullName    string
	Email       string
	CountryCode string
	Number      string
	Photo       *PhotoUpload
}

func (f *Form) Phone() string {
	return f.CountryCode + " " + f.Number
}
