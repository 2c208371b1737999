package store

import (
	"context"
	"time"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

type Pagination struct {
	Offset int
	Limit  int
}

func DefaultPagination() Pagination {
	return Pagination{
		Offset: 0,
		Limit:  12,
	}
}

func (p Pagination) WithOffset(offset int) Pagination {
	p.Offset = offset
	return p
}

func (p Pagination) WithLimit(limit int) Pagination {
	p.Limit = limit
	return p
}

// CurrentPage derives the 1-based page number this pagination points at.
func (p Pagination) CurrentPage() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

func NewDbContext() context.Context {
	ctx, _ := context.WithTimeout(context.Background(), ContextTimeout)
	return ctx
}
