package grpcsvc

import (
	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/service/orders"
	"github.com/vladislavdragonenkov/restock/internal/service/sales"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

func toProtoTable(t domain.Table) *restockv1.Table {
	out := &restockv1.Table{
		Id:       t.ID,
		Name:     t.Name,
		Quantity: t.Quantity,
		State:    string(t.State),
	}
	if t.ActiveOrderID != nil {
		out.ActiveOrderId = *t.ActiveOrderID
	}
	return out
}

func toProtoTables(list []domain.Table) []*restockv1.Table {
	out := make([]*restockv1.Table, 0, len(list))
	for _, t := range list {
		out = append(out, toProtoTable(t))
	}
	return out
}

// tableStateUpdate переводит запрос в изменение стола; ActiveOrderId = 0 снимает заказ.
func tableStateUpdate(req *restockv1.UpdateTableStateRequest) domain.TableStateUpdate {
	update := domain.TableStateUpdate{
		Quantity: req.Quantity,
		State:    domain.TableState(req.State),
	}
	if req.ActiveOrderId > 0 {
		id := req.ActiveOrderId
		update.ActiveOrderID = &id
	}
	return update
}

func toProtoItems(items []domain.OrderItem) []*restockv1.OrderItem {
	out := make([]*restockv1.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, &restockv1.OrderItem{
			ProductId:     item.ProductID,
			Quantity:      item.Quantity,
			Modifications: item.Modifications,
			ProductName:   item.ProductName,
			PricePerUnit:  item.UnitPrice,
			TotalPrice:    item.TotalPrice,
		})
	}
	return out
}

func toProtoUser(u domain.User) *restockv1.User {
	return &restockv1.User{Id: u.ID, Email: u.Email, Name: u.Name}
}

func toProtoOrder(details domain.OrderDetails) *restockv1.Order {
	out := &restockv1.Order{
		Id:         details.Order.ID,
		UserId:     details.Order.UserID,
		Email:      details.Order.Email,
		TotalPrice: details.Order.TotalPrice,
		Products:   toProtoItems(details.Order.Items),
	}
	if details.Table != nil {
		out.Table = toProtoTable(*details.Table)
	}
	if details.User != nil {
		out.User = toProtoUser(*details.User)
	}
	return out
}

// orderInput берёт из позиций запроса только товар, количество и модификации:
// цены и названия определяет каталог.
func orderInput(userID int64, tableName, email string, products []*restockv1.OrderItem) orders.OrderInput {
	lines := make([]domain.LineRequest, 0, len(products))
	for _, p := range products {
		lines = append(lines, domain.LineRequest{
			ProductID:     p.ProductId,
			Quantity:      p.Quantity,
			Modifications: p.Modifications,
		})
	}
	return orders.OrderInput{
		UserID:    userID,
		TableName: tableName,
		Email:     email,
		Lines:     lines,
	}
}

func saleInput(req *restockv1.CreateSaleRequest) sales.SaleInput {
	items := make([]domain.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, domain.OrderItem{
			ProductID:     p.ProductId,
			Quantity:      p.Quantity,
			Modifications: p.Modifications,
			ProductName:   p.ProductName,
			UnitPrice:     p.PricePerUnit,
			TotalPrice:    p.TotalPrice,
		})
	}
	return sales.SaleInput{
		UserName:   req.UserName,
		TableName:  req.TableName,
		Date:       req.Date,
		Tip:        req.Tip,
		TotalPrice: req.TotalPrice,
		Items:      items,
		Email:      req.Email,
	}
}

func toProtoSales(list []domain.Sale) []*restockv1.Sale {
	out := make([]*restockv1.Sale, 0, len(list))
	for _, sale := range list {
		out = append(out, &restockv1.Sale{
			Id:         sale.ID,
			UserName:   sale.UserName,
			TableName:  sale.TableName,
			Date:       sale.Date,
			Tip:        sale.Tip,
			TotalPrice: sale.TotalPrice,
			Products:   toProtoItems(sale.Items),
		})
	}
	return out
}
