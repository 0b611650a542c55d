// Package tables ведёт реестр столов ресторана.
package tables

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/metrics"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
)

const (
	opProvisionTable   = "provision_table"
	opGetTableByName   = "get_table_by_name"
	opListTables       = "list_tables"
	opUpdateTableState = "update_table_state"
)

// Registry: операции реестра столов.
type Registry interface {
	// Provision заводит новый стол; занятое имя даёт ErrTableNameTaken.
	Provision(ctx context.Context, name string, quantity int32, state domain.TableState) (domain.Table, error)
	FindByName(ctx context.Context, name string) (domain.Table, error)
	ListAll(ctx context.Context) ([]domain.Table, error)
	// UpdateState перезаписывает вместимость, состояние и активный заказ стола.
	UpdateState(ctx context.Context, id int64, update domain.TableStateUpdate) (domain.Table, error)
}

type registry struct {
	repo    domain.TableRepository
	events  *outbox.Emitter
	metrics *metrics.OrderMetrics
	logger  *log.Entry
}

// NewRegistry создаёт реестр поверх репозитория столов. events и m могут быть nil.
func NewRegistry(repo domain.TableRepository, events *outbox.Emitter, m *metrics.OrderMetrics, logger *log.Entry) Registry {
	if logger == nil {
		logger = log.New().WithField("component", "tables")
	}
	return &registry{repo: repo, events: events, metrics: m, logger: logger}
}

func (r *registry) Provision(ctx context.Context, name string, quantity int32, state domain.TableState) (table domain.Table, err error) {
	done := r.metrics.Track(opProvisionTable)
	defer func() { done(err) }()

	candidate := domain.Table{Name: name, Quantity: quantity, State: state}
	if errs := candidate.Validate(); len(errs) > 0 {
		return domain.Table{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}

	table, err = r.repo.Create(ctx, candidate)
	if err != nil {
		if errors.Is(err, domain.ErrTableNameTaken) {
			return domain.Table{}, fmt.Errorf("table %q: %w", name, err)
		}
		return domain.Table{}, fmt.Errorf("create table %q: %w", name, err)
	}

	r.logger.WithFields(log.Fields{
		"table_id": table.ID,
		"name":     table.Name,
		"quantity": table.Quantity,
		"state":    table.State,
	}).Info("table provisioned")
	r.events.Emit(ctx, domain.AggregateTypeTable, table.ID, domain.EventTableProvisioned, tablePayload(table))

	return table, nil
}

func (r *registry) FindByName(ctx context.Context, name string) (table domain.Table, err error) {
	done := r.metrics.Track(opGetTableByName)
	defer func() { done(err) }()

	table, err = r.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Table{}, fmt.Errorf("table %q: %w", name, err)
	}
	return table, nil
}

func (r *registry) ListAll(ctx context.Context) (tables []domain.Table, err error) {
	done := r.metrics.Track(opListTables)
	defer func() { done(err) }()

	tables, err = r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (r *registry) UpdateState(ctx context.Context, id int64, update domain.TableStateUpdate) (table domain.Table, err error) {
	done := r.metrics.Track(opUpdateTableState)
	defer func() { done(err) }()

	table, err = r.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Table{}, fmt.Errorf("table %d: %w", id, err)
	}

	update.Apply(&table)
	if errs := table.Validate(); len(errs) > 0 {
		return domain.Table{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}

	if err := r.repo.Update(ctx, table); err != nil {
		return domain.Table{}, fmt.Errorf("update table %d: %w", id, err)
	}

	r.logger.WithFields(log.Fields{
		"table_id": table.ID,
		"state":    table.State,
		"quantity": table.Quantity,
	}).Info("table state updated")
	r.events.Emit(ctx, domain.AggregateTypeTable, table.ID, domain.EventTableStateUpdated, tablePayload(table))

	return table, nil
}

func tablePayload(t domain.Table) domain.TableEventPayload {
	return domain.TableEventPayload{
		TableID:       t.ID,
		Name:          t.Name,
		Quantity:      t.Quantity,
		State:         string(t.State),
		ActiveOrderID: t.ActiveOrderID,
	}
}
