package test

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthdesk/registry/patients"
	"github.com/healthdesk/registry/store/test"
)

func RandomPatient() patients.Patient {
	countryCode := fmt.Sprintf("+%d", test.Faker.IntBetween(1, 999))
	number := fmt.Sprintf("%d", test.Faker.IntBetween(10000000, 99999999))
	key := fmt.Sprintf("document_photos/%s.jpg", uuid.NewString())
	return patients.Patient{
		Id:          uuid.NewString(),
		OwnerId:     uuid.NewString(),
		FullName:    test.Faker.Person().Name(),
		Email:       test.Faker.Internet().Email(),
		CountryCode: countryCode,
		Number:      number,
		Phone:       countryCode + " " + number,
		PhotoURL:    "/storage/" + key,
		PhotoKey:    key,
		CreatedTime: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func RandomForm(allowedDomain string) *patients.Form {
	return &patients.Form{
		FullName:    "Ana Gomez",
		Email:       fmt.Sprintf("%s%d@%s", test.Faker.Lorem().Word(), test.Faker.IntBetween(1, 9999), allowedDomain),
		CountryCode: fmt.Sprintf("+%d", test.Faker.IntBetween(1, 999)),
		Number:      fmt.Sprintf("%d", test.Faker.IntBetween(10000000, 99999999)),
		Photo: &patients.PhotoUpload{
			Data:        []byte{0xFF, 0xD8, 0xFF, 0xD9},
			Size:        4,
			ContentType: "image/jpeg",
		},
	}
}
