package models

import "testing"

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int64
		wantLimit int64
		wantSkip  int64
	}{
		{name: "Defaults", page: "", limit: "", wantPage: 1, wantLimit: 50, wantSkip: 0},
		{name: "Explicit", page: "3", limit: "20", wantPage: 3, wantLimit: 20, wantSkip: 40},
		{name: "Zero Page", page: "0", limit: "10", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "Negative Page", page: "-5", limit: "10", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "Non Numeric Page", page: "abc", limit: "10", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "Non Numeric Limit", page: "2", limit: "many", wantPage: 2, wantLimit: 50, wantSkip: 50},
		{name: "Limit Above Max", page: "1", limit: "9999", wantPage: 1, wantLimit: 200, wantSkip: 0},
		{name: "Negative Limit", page: "1", limit: "-1", wantPage: 1, wantLimit: 50, wantSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.page, tt.limit)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.wantLimit)
			}
			if got := p.Skip(); got != tt.wantSkip {
				t.Errorf("Skip() = %d, want %d", got, tt.wantSkip)
			}
			if p.Skip() < 0 {
				t.Errorf("Skip() must never be negative, got %d", p.Skip())
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		limit     int64
		wantPages int64
	}{
		{name: "Exact Multiple", total: 100, limit: 50, wantPages: 2},
		{name: "Remainder", total: 101, limit: 50, wantPages: 3},
		{name: "Empty", total: 0, limit: 50, wantPages: 0},
		{name: "Single", total: 1, limit: 50, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: 1, Limit: tt.limit}
			meta := p.NewMeta(tt.total)
			if meta.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", meta.Pages, tt.wantPages)
			}
			if meta.Total != tt.total {
				t.Errorf("Total = %d, want %d", meta.Total, tt.total)
			}
		})
	}
}
