package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/promptbook/pkg/pagination"
)

func testConfig() pagination.Config {
	cfg := pagination.Config{}
	_ = cfg.Finalize(nil)
	return cfg
}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		paged    bool
		page     int
		pageSize int
	}{
		{"absent", "", false, 0, 0},
		{"page only", "page=3", true, 3, 24},
		{"size only", "page_size=5", true, 1, 5},
		{"clamped", "page=0&page_size=500", true, 1, 200},
		{"garbage", "page=x&page_size=y", true, 1, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req, paged := pagination.PageRequestFromQuery(values, testConfig())

			if paged != tt.paged {
				t.Fatalf("paged: got %v, want %v", paged, tt.paged)
			}
			if req.Page != tt.page || req.PageSize != tt.pageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", req.Page, req.PageSize, tt.page, tt.pageSize)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		req        pagination.PageRequest
		want       []int
		totalPages int
	}{
		{"all", pagination.All, []int{1, 2, 3, 4, 5}, 1},
		{"first page", pagination.PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3},
		{"last partial page", pagination.PageRequest{Page: 3, PageSize: 2}, []int{5}, 3},
		{"past the end", pagination.PageRequest{Page: 9, PageSize: 2}, []int{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.Paginate(items, tt.req)

			if result.Total != len(items) {
				t.Errorf("total: got %d, want %d", result.Total, len(items))
			}
			if result.TotalPages != tt.totalPages {
				t.Errorf("total pages: got %d, want %d", result.TotalPages, tt.totalPages)
			}
			if len(result.Data) != len(tt.want) {
				t.Fatalf("data: got %v, want %v", result.Data, tt.want)
			}
			for i := range tt.want {
				if result.Data[i] != tt.want[i] {
					t.Errorf("data[%d]: got %d, want %d", i, result.Data[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	result := pagination.Paginate([]string(nil), pagination.All)
	if result.Data == nil {
		t.Error("data should be an empty slice, not nil")
	}
	if result.TotalPages != 1 {
		t.Errorf("total pages: got %d, want 1", result.TotalPages)
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}
}
