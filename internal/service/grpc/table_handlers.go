package grpcsvc

import (
	"context"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

// CreateTable заводит стол.
func (s *OrderService) CreateTable(ctx context.Context, req *restockv1.CreateTableRequest) (*restockv1.CreateTableResponse, error) {
	const method = restockv1.OrderService_CreateTable_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	table, err := s.tables.Provision(ctx, req.Name, req.Quantity, domain.TableState(req.State))
	if err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.CreateTableResponse{Id: table.ID}, nil
}

// GetTablesByName возвращает стол по точному имени.
func (s *OrderService) GetTablesByName(ctx context.Context, req *restockv1.GetTablesByNameRequest) (*restockv1.GetTablesByNameResponse, error) {
	const method = restockv1.OrderService_GetTablesByName_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	table, err := s.tables.FindByName(ctx, req.Name)
	if err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.GetTablesByNameResponse{Table: toProtoTable(table)}, nil
}

func (s *OrderService) GetAllTables(ctx context.Context, _ *restockv1.GetAllTablesRequest) (*restockv1.GetAllTablesResponse, error) {
	list, err := s.tables.ListAll(ctx)
	if err != nil {
		return nil, s.fail(restockv1.OrderService_GetAllTables_FullMethodName, err)
	}
	return &restockv1.GetAllTablesResponse{Tables: toProtoTables(list)}, nil
}

// UpdateTableState перезаписывает вместимость, состояние и активный заказ стола.
func (s *OrderService) UpdateTableState(ctx context.Context, req *restockv1.UpdateTableStateRequest) (*restockv1.UpdateTableStateResponse, error) {
	const method = restockv1.OrderService_UpdateTableState_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	if _, err := s.tables.UpdateState(ctx, req.Id, tableStateUpdate(req)); err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.UpdateTableStateResponse{}, nil
}
