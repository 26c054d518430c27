package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Ticket=MockTicketRepository

import (
	"context"
	"darshan/infras/otel"
	"darshan/infras/postgres"
	"darshan/internal/domains/ticket/model"
	"darshan/shared/constant"
	gDto "darshan/shared/dto"
	"darshan/shared/logger"
	gRepo "darshan/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Ticket interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, ticket model.Ticket) error
	InsertVisitorsTx(ctx context.Context, tx *sqlx.Tx, persons []model.Person) error
	InsertStatusEventTx(ctx context.Context, tx *sqlx.Tx, event model.StatusEvent) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Ticket, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Ticket, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (model.Ticket, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Summary(ctx context.Context, filter gDto.FilterGroup) (model.Summary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Ticket]
	visitors     gRepo.Repository[model.Person]
	statusEvents gRepo.Repository[model.StatusEvent]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Ticket](model.EntityName, model.TableName, model.FieldID, db, otel),
		visitors:     gRepo.NewRepository[model.Person](model.VisitorEntityName, model.VisitorTableName, model.FieldID, db, otel),
		statusEvents: gRepo.NewRepository[model.StatusEvent](model.StatusEventEntityName, model.StatusEventTableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

func (r *repositoryImpl) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return r.db.WithTx(ctx, fn) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertVisitorsTx(ctx context.Context, tx *sqlx.Tx, persons []model.Person) error {
	if len(persons) == 0 {
		return nil
	}

	return r.visitors.InsertBulkTx(ctx, tx, persons)
}

func (r *repositoryImpl) InsertStatusEventTx(ctx context.Context, tx *sqlx.Tx, event model.StatusEvent) error {
	return r.statusEvents.InsertTx(ctx, tx, event)
}

// GetByPaymentIntent finds the ticket a processor intent belongs to, whether the
// intent was recorded at creation or as the settling transaction.
func (r *repositoryImpl) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (model.Ticket, error) {
	return r.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldPaymentIntentID, Value: paymentIntentID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldTransactionID, Value: paymentIntentID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

func (r *repositoryImpl) Summary(ctx context.Context, filter gDto.FilterGroup) (model.Summary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ticket.Summary")
	defer scope.End()

	var summary model.Summary

	where, args := r.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(%[1]s.total_amount), 0) AS total_sales, COUNT(%[1]s.id) AS total_tickets, "+
			"COALESCE(SUM(%[1]s.adults + %[1]s.children), 0) AS total_persons FROM %[1]s %[2]s",
		model.TableName, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &summary, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to summarize (%s): %w", model.EntityName, err)
	}

	return summary, nil
}
