package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type Sort struct {
	Field string
	Dir   string
}

// QueryParams controls ordering and paging of repository list queries.
type QueryParams struct {
	Page  int
	Limit int
	Sorts []Sort
}

// OrderBy renders the ORDER BY clause; unknown directions fall back to ASC.
func (q *QueryParams) OrderBy() string {
	if len(q.Sorts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(q.Sorts))

	for _, sort := range q.Sorts {
		dir := strings.ToUpper(sort.Dir)
		if dir != SortDirDesc {
			dir = SortDirAsc
		}

		parts = append(parts, fmt.Sprintf("%s %s", sort.Field, dir))
	}

	return "ORDER BY " + strings.Join(parts, ", ")
}
