package grpcsvc

import (
	"context"

	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

// CreateSale записывает закрытый чек и отправляет квитанцию.
func (s *OrderService) CreateSale(ctx context.Context, req *restockv1.CreateSaleRequest) (*restockv1.CreateSaleResponse, error) {
	const method = restockv1.OrderService_CreateSale_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	return withIdempotency(ctx, s, method, req, func(ctx context.Context) (*restockv1.CreateSaleResponse, error) {
		sale, err := s.sales.CreateSale(ctx, saleInput(req))
		if err != nil {
			return nil, s.fail(method, err)
		}
		return &restockv1.CreateSaleResponse{Id: sale.ID}, nil
	})
}

func (s *OrderService) GetAllSales(ctx context.Context, _ *restockv1.GetAllSalesRequest) (*restockv1.GetSalesResponse, error) {
	list, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, s.fail(restockv1.OrderService_GetAllSales_FullMethodName, err)
	}
	return &restockv1.GetSalesResponse{Sales: toProtoSales(list)}, nil
}

// GetSalesByUser ищет продажи по подстроке имени официанта.
func (s *OrderService) GetSalesByUser(ctx context.Context, req *restockv1.GetSalesByUserRequest) (*restockv1.GetSalesResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	list, err := s.sales.ListSalesByUser(ctx, req.UserName)
	if err != nil {
		return nil, s.fail(restockv1.OrderService_GetSalesByUser_FullMethodName, err)
	}
	return &restockv1.GetSalesResponse{Sales: toProtoSales(list)}, nil
}

// GetSalesByDate ищет продажи по подстроке даты.
func (s *OrderService) GetSalesByDate(ctx context.Context, req *restockv1.GetSalesByDateRequest) (*restockv1.GetSalesResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	list, err := s.sales.ListSalesByDate(ctx, req.Date)
	if err != nil {
		return nil, s.fail(restockv1.OrderService_GetSalesByDate_FullMethodName, err)
	}
	return &restockv1.GetSalesResponse{Sales: toProtoSales(list)}, nil
}
