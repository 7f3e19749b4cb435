package model

import "salon/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldDurationMin = "duration_min"
	FieldBasePrice   = "base_price"
	FieldIsActive    = "is_active"
)

// Service is a bookable treatment. BasePrice is in cents.
type Service struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Category    string `db:"category"`
	DurationMin int    `db:"duration_min"`
	BasePrice   int    `db:"base_price"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}
