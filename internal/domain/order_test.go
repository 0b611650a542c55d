package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// helper для создания заказа с двумя позициями.
func makeOrder() domain.Order {
	order := domain.Order{
		ID:      1,
		UserID:  10,
		TableID: 3,
		Email:   "guest@example.com",
		Items: []domain.OrderItem{
			domain.NewOrderItem(domain.LineRequest{ProductID: 100, Quantity: 2}, domain.Product{ID: 100, Name: "Soup", Price: 350}),
			domain.NewOrderItem(domain.LineRequest{ProductID: 200, Quantity: 1, Modifications: "no ice"}, domain.Product{ID: 200, Name: "Lemonade", Price: 120}),
		},
	}
	order.Recalculate()
	return order
}

func TestNewOrderItemSnapshotsProduct(t *testing.T) {
	item := domain.NewOrderItem(
		domain.LineRequest{ProductID: 7, Quantity: 3, Modifications: "spicy"},
		domain.Product{ID: 7, Name: "Tacos", Price: 250, Stock: 40},
	)

	if item.ProductName != "Tacos" || item.UnitPrice != 250 || item.TotalPrice != 750 {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.Modifications != "spicy" {
		t.Fatalf("modifications lost: %+v", item)
	}
}

func TestOrderRecalculate(t *testing.T) {
	order := makeOrder()
	if order.TotalPrice != 820 {
		t.Fatalf("expected total 820, got %d", order.TotalPrice)
	}

	order.Items[0].Reprice(400)
	order.Recalculate()
	if order.TotalPrice != 920 {
		t.Fatalf("expected total 920 after reprice, got %d", order.TotalPrice)
	}
}

func TestOrderRemoveItemAt(t *testing.T) {
	order := makeOrder()
	idx := order.ItemIndexByProduct(100)
	if idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}

	removed := order.RemoveItemAt(idx)

	if removed.ProductID != 100 {
		t.Fatalf("removed wrong item %+v", removed)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != 200 {
		t.Fatalf("unexpected items left %+v", order.Items)
	}
	if order.TotalPrice != 120 {
		t.Fatalf("expected total 120, got %d", order.TotalPrice)
	}
	if order.ItemIndexByProduct(100) != -1 {
		t.Fatal("removed product still indexed")
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	empty := domain.Order{UserID: 1, TableID: 1}
	if errs := empty.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("order without items must be valid, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no user",
			mut: func(o *domain.Order) {
				o.UserID = 0
			},
		},
		{
			name: "no table",
			mut: func(o *domain.Order) {
				o.TableID = 0
			},
		},
		{
			name: "quantity invalid",
			mut: func(o *domain.Order) {
				o.Items[0].Quantity = 0
			},
		},
		{
			name: "price invalid",
			mut: func(o *domain.Order) {
				o.Items[0].UnitPrice = -5
			},
		},
		{
			name: "item total mismatch",
			mut: func(o *domain.Order) {
				o.Items[1].TotalPrice = 1
			},
		},
		{
			name: "amount mismatch",
			mut: func(o *domain.Order) {
				o.TotalPrice = 999
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}
