package common

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination carries validated page/size/sort query parameters.
type Pagination struct {
	Page      int
	Size      int
	SortField string
	SortOrder string
}

// Page wraps a slice of items with paging metadata for list responses.
type Page struct {
	Items      interface{} `json:"items"`
	PageNumber int         `json:"page"`
	Size       int         `json:"size"`
	TotalItems int64       `json:"total_items"`
	TotalPages int         `json:"total_pages"`
}

// NewPage assembles a paged response from a slice and the total row count.
func NewPage(items interface{}, p Pagination, total int64) Page {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Size)))
	}
	return Page{
		Items:      items,
		PageNumber: p.Page,
		Size:       p.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// ParsePagination reads page, size and sort query parameters. The sort field
// is checked against the caller-supplied whitelist so it never reaches SQL
// unvalidated; anything unrecognized falls back to created_at DESC.
func ParsePagination(c echo.Context, sortable map[string]bool) Pagination {
	p := Pagination{
		Page:      1,
		Size:      DefaultPageSize,
		SortField: "created_at",
		SortOrder: "DESC",
	}

	if raw := c.QueryParam("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			p.Page = page
		}
	}

	if raw := c.QueryParam("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			p.Size = size
		}
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	// sort is "field,direction", e.g. "created_at,desc"
	if raw := c.QueryParam("sort"); raw != "" {
		parts := strings.SplitN(raw, ",", 2)
		field := strings.TrimSpace(parts[0])
		if sortable[field] {
			p.SortField = field
		}
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "asc") {
			p.SortOrder = "ASC"
		}
	}

	return p
}

// Offset converts the 1-based page number to a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// OrderBy renders the validated sort clause.
func (p Pagination) OrderBy() string {
	return p.SortField + " " + p.SortOrder
}
