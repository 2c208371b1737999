package api

import (
	"go.uber.org/fx"

	"github.com/healthdesk/registry/config"
	"github.com/healthdesk/registry/patients"
	"github.com/healthdesk/registry/store"
)

type Handler struct {
	patients patients.Service
	cfg      *config.Config
}

type Params struct {
	fx.In

	Patients patients.Service
	Config   *config.Config
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients: p.Patients,
		cfg:      p.Config,
	}
}

// pagination converts 1-based page parameters to an offset, clamping the
// page size to the configured bounds.
func (h *Handler) pagination(page, perPage int) store.Pagination {
	if perPage <= 0 {
		perPage = h.cfg.DefaultPageSize
	}
	if perPage > h.cfg.MaxPageSize {
		perPage = h.cfg.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return store.Pagination{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	}
}
