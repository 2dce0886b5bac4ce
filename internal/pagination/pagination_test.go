package pagination

import (
	"strconv"
	"testing"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		name         string
		in           PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"empty", PageRequest{}, 1, DefaultPageSize},
		{"kept", PageRequest{Page: 3, PageSize: 5}, 3, 5},
		{"negative", PageRequest{Page: -2, PageSize: -1}, 1, DefaultPageSize},
		{"too large", PageRequest{Page: 1, PageSize: 500}, 1, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Defaults()
			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("expected %d/%d, got %d/%d", tt.wantPage, tt.wantPageSize, req.Page, req.PageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	req := PageRequest{Page: 3, PageSize: 10}
	if got := req.Offset(); got != 20 {
		t.Errorf("expected offset 20, got %d", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 1, 20, 41)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected empty non-nil data, got %v", resp.Data)
	}
}

func TestMap(t *testing.T) {
	page := NewPageResponse([]int{1, 2}, 2, 2, 5)
	mapped := Map(page, strconv.Itoa)

	if len(mapped.Data) != 2 || mapped.Data[0] != "1" || mapped.Data[1] != "2" {
		t.Errorf("unexpected data: %v", mapped.Data)
	}
	if mapped.Page != 2 || mapped.PageSize != 2 || mapped.TotalItems != 5 || mapped.TotalPages != 3 {
		t.Errorf("metadata not preserved: %+v", mapped)
	}
}
