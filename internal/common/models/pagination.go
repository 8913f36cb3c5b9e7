package models

import "strconv"

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 50
	MaxLimit     int64 = 200
)

// Pagination holds sanitized page/limit values. Build one with
// ParsePagination; the zero value is not valid.
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// Meta is the pagination block returned alongside a page of results.
// Total and the page itself come from two separate reads against the same
// filter, so they may disagree under concurrent writes.
type Meta struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Pages int64 `json:"pages"`
}

// ParsePagination coerces raw query values into valid pagination. Negative,
// zero or non-numeric inputs fall back to the defaults; limit is capped at
// MaxLimit.
func ParsePagination(pageRaw, limitRaw string) Pagination {
	page, err := strconv.ParseInt(pageRaw, 10, 64)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.ParseInt(limitRaw, 10, 64)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Pagination{Page: page, Limit: limit}
}

// Skip is always >= 0 because Page is always >= 1.
func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// NewMeta computes the metadata block for a total count.
func (p Pagination) NewMeta(total int64) Meta {
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return Meta{Total: total, Page: p.Page, Limit: p.Limit, Pages: pages}
}
