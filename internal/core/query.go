// AngelaMos | 2026
// query.go

package core

import (
	"fmt"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// SortColumn is one entry of a parsed sort expression.
type SortColumn struct {
	Column     string
	Descending bool
}

// ParseSort parses a comma-separated sort expression where a leading '-'
// means descending, e.g. "id,-name". Columns not in allowed are rejected so
// the result can be interpolated into ORDER BY safely.
func ParseSort(sort string, allowed map[string]struct{}) ([]SortColumn, error) {
	if strings.TrimSpace(sort) == "" {
		sort = "id"
	}

	parts := strings.Split(sort, ",")
	columns := make([]SortColumn, 0, len(parts))

	for _, part := range parts {
		col := strings.TrimSpace(part)
		if col == "" {
			continue
		}

		desc := false
		if strings.HasPrefix(col, "-") {
			desc = true
			col = col[1:]
		}

		if _, ok := allowed[col]; !ok {
			return nil, fmt.Errorf("sort column %q: %w", col, ErrInvalidInput)
		}

		columns = append(columns, SortColumn{Column: col, Descending: desc})
	}

	if len(columns) == 0 {
		columns = append(columns, SortColumn{Column: "id"})
	}

	return columns, nil
}

// OrderByClause renders parsed sort columns as a SQL ORDER BY body.
func OrderByClause(columns []SortColumn) string {
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		dir := "ASC"
		if c.Descending {
			dir = "DESC"
		}
		parts = append(parts, c.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// Offset computes the row offset for 1-based page numbers.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
