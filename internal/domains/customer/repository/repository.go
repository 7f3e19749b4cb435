package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/customer/model"
	"salon/shared/constant"
	gRepo "salon/shared/repository"
)

type Customer interface {
	// Upsert stores the customer keyed by phone and returns the id of the stored row.
	// An existing row keeps its id; its name is replaced and email and instagram are
	// replaced only when given.
	Upsert(ctx context.Context, customer model.Customer) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) Upsert(ctx context.Context, customer model.Customer) (string, error) {
	assignments := gRepo.Overwrite(model.FieldFullName, constant.FieldModifiedAt, constant.FieldModifiedBy)
	assignments = append(assignments, gRepo.OverwriteIfSet(model.FieldEmail, model.FieldInstagram)...)

	return r.Repository.Upsert(ctx, customer, []string{model.FieldPhone}, assignments...) //nolint:wrapcheck
}
