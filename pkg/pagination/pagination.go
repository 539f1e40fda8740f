package pagination

import (
	"net/url"
	"strconv"
)

// PageRequest identifies one page of a collection. A zero PageSize after
// normalization never occurs; callers that want everything pass All.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// All requests the whole collection as a single page.
var All = PageRequest{}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery parses the page and page_size query parameters.
// The second return is false when neither parameter is present, in which case
// the caller serves the collection unpaged.
func PageRequestFromQuery(values url.Values, cfg Config) (PageRequest, bool) {
	if !values.Has("page") && !values.Has("page_size") {
		return All, false
	}

	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	req := PageRequest{Page: page, PageSize: pageSize}
	req.Normalize(cfg)
	return req, true
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 1
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Paginate returns the requested window of items. Pages past the end are empty.
func Paginate[T any](items []T, req PageRequest) PageResult[T] {
	total := len(items)
	if req.PageSize < 1 {
		return NewPageResult(items, total, 1, total)
	}

	start := min(req.Offset(), total)
	end := min(start+req.PageSize, total)

	return NewPageResult(items[start:end], total, req.Page, req.PageSize)
}
