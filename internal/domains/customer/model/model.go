package model

import "salon/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldInstagram = "instagram"
)

// Customer is unique by phone. Email and Instagram are nil when never given.
type Customer struct {
	ID        string  `db:"id"`
	FullName  string  `db:"full_name"`
	Phone     string  `db:"phone"`
	Email     *string `db:"email"`
	Instagram *string `db:"instagram"`
	model.Metadata
}
