package api

import (
	"time"

	"github.com/healthdesk/registry/patients"
)

type PatientDto struct {
	Id          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CountryCode string    `json:"country_code"`
	Number      string    `json:"number"`
	Phone       string    `json:"phone"`
	PhotoUrl    string    `json:"photo_url"`
	CreatedTime time.Time `json:"created_time"`
}

type PageMetaDto struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

type PageDto struct {
	Data []PatientDto `json:"data"`
	Meta PageMetaDto  `json:"meta"`
}

func NewPatientDto(patient *patients.Patient) PatientDto {
	return PatientDto{
		Id:          patient.Id,
		FullName:    patient.FullName,
		Email:       patient.Email,
		CountryCode: patient.CountryCode,
		Number:      patient.Number,
		Phone:       patient.Phone,
		PhotoUrl:    patient.PhotoURL,
		CreatedTime: patient.CreatedTime,
	}
}

func NewPageDto(page *patients.Page) PageDto {
	data := make([]PatientDto, 0, len(page.Data))
	for _, patient := range page.Data {
		data = append(data, NewPatientDto(patient))
	}
	return PageDto{
		Data: data,
		Meta: PageMetaDto{
			CurrentPage: page.CurrentPage,
			LastPage:    page.LastPage,
			Total:       page.Total,
		},
	}
}
