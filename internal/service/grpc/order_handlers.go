package grpcsvc

import (
	"context"

	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

// CreateOrder собирает заказ по актуальным ценам каталога.
func (s *OrderService) CreateOrder(ctx context.Context, req *restockv1.CreateOrderRequest) (*restockv1.CreateOrderResponse, error) {
	const method = restockv1.OrderService_CreateOrder_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	return withIdempotency(ctx, s, method, req, func(ctx context.Context) (*restockv1.CreateOrderResponse, error) {
		order, err := s.orders.CreateOrder(ctx, orderInput(req.UserId, req.NameTable, req.Email, req.Products))
		if err != nil {
			return nil, s.fail(method, err)
		}
		return &restockv1.CreateOrderResponse{Id: order.ID}, nil
	})
}

// UpdateOrder пересобирает существующий заказ целиком.
func (s *OrderService) UpdateOrder(ctx context.Context, req *restockv1.UpdateOrderRequest) (*restockv1.UpdateOrderResponse, error) {
	const method = restockv1.OrderService_UpdateOrder_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	if _, err := s.orders.UpdateOrder(ctx, req.OrderId, orderInput(req.UserId, req.NameTable, req.Email, req.Products)); err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.UpdateOrderResponse{}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, req *restockv1.GetOrderRequest) (*restockv1.GetOrderResponse, error) {
	const method = restockv1.OrderService_GetOrder_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	details, err := s.orders.GetOrder(ctx, req.OrderId)
	if err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.GetOrderResponse{Order: toProtoOrder(details)}, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context, _ *restockv1.GetAllOrdersRequest) (*restockv1.GetAllOrdersResponse, error) {
	views, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, s.fail(restockv1.OrderService_GetAllOrders_FullMethodName, err)
	}

	out := make([]*restockv1.Order, 0, len(views))
	for _, view := range views {
		out = append(out, toProtoOrder(view))
	}
	return &restockv1.GetAllOrdersResponse{Orders: out}, nil
}

// DeleteOrderItem убирает позицию и возвращает её количество на склад.
// Неудачный возврат остатка даёт Unavailable, хотя позиция уже удалена.
func (s *OrderService) DeleteOrderItem(ctx context.Context, req *restockv1.DeleteOrderItemRequest) (*restockv1.DeleteOrderItemResponse, error) {
	const method = restockv1.OrderService_DeleteOrderItem_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	if err := s.orders.DeleteOrderItem(ctx, req.OrderId, req.ProductId); err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.DeleteOrderItemResponse{}, nil
}

func (s *OrderService) GetUser(ctx context.Context, req *restockv1.GetUserRequest) (*restockv1.GetUserResponse, error) {
	const method = restockv1.OrderService_GetUser_FullMethodName
	if req == nil {
		return nil, errRequestRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(method, err)
	}

	user, err := s.orders.GetUser(ctx, req.UserId)
	if err != nil {
		return nil, s.fail(method, err)
	}
	return &restockv1.GetUserResponse{User: toProtoUser(user)}, nil
}
