package shared

import (
	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/timezone"
	"strings"
)

const cacheKeySeparator = ":"

// StampModified adds the modification audit columns to an update field map.
func StampModified(fields map[string]any, actor string) map[string]any {
	if fields == nil {
		fields = map[string]any{}
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the non-empty parts with ':' below the given prefix.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// CacheKeyPattern returns the SCAN pattern matching prefix and every key built below it.
func CacheKeyPattern(prefix string) string {
	return prefix + constant.Asterix
}
