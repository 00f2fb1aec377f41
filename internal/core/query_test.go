// AngelaMos | 2026
// query_test.go

package core

import (
	"errors"
	"testing"
)

var testColumns = map[string]struct{}{
	"id":         {},
	"name":       {},
	"created_at": {},
}

func TestParseSortDefault(t *testing.T) {
	cols, err := ParseSort("", testColumns)
	if err != nil {
		t.Fatalf("ParseSort: %v", err)
	}
	if len(cols) != 1 || cols[0].Column != "id" || cols[0].Descending {
		t.Errorf("expected default ascending id sort, got %+v", cols)
	}
}

func TestParseSortDescending(t *testing.T) {
	cols, err := ParseSort("-created_at,name", testColumns)
	if err != nil {
		t.Fatalf("ParseSort: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if cols[0].Column != "created_at" || !cols[0].Descending {
		t.Errorf("expected created_at DESC, got %+v", cols[0])
	}
	if cols[1].Column != "name" || cols[1].Descending {
		t.Errorf("expected name ASC, got %+v", cols[1])
	}
}

func TestParseSortRejectsUnknownColumn(t *testing.T) {
	_, err := ParseSort("password", testColumns)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderByClause(t *testing.T) {
	clause := OrderByClause([]SortColumn{
		{Column: "name"},
		{Column: "id", Descending: true},
	})
	if clause != "name ASC, id DESC" {
		t.Errorf("unexpected clause %q", clause)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 25, 0},
		{2, 25, 25},
		{3, 10, 20},
		{0, 10, 0},
	}

	for _, tt := range tests {
		if got := Offset(tt.page, tt.limit); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d",
				tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 25, 0},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{100, 10, 10},
		{101, 10, 11},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d",
				tt.total, tt.limit, got, tt.want)
		}
	}
}
