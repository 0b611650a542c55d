package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
)

func newOrder() domain.Order {
	order := domain.Order{
		UserID:  10,
		TableID: 1,
		Email:   "guest@example.com",
		Items: []domain.OrderItem{
			domain.NewOrderItem(domain.LineRequest{ProductID: 5, Quantity: 2}, domain.Product{ID: 5, Name: "Pasta", Price: 900}),
			domain.NewOrderItem(domain.LineRequest{ProductID: 6, Quantity: 1}, domain.Product{ID: 6, Name: "Water", Price: 100}),
		},
	}
	order.Recalculate()
	return order
}

func TestOrderRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	created, err := repo.Create(ctx, newOrder())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated order id")
	}
	if created.Items[0].ID == 0 || created.Items[1].ID == 0 || created.Items[0].ID == created.Items[1].ID {
		t.Fatalf("expected distinct item ids, got %+v", created.Items)
	}

	stored, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.TotalPrice != 1900 || len(stored.Items) != 2 {
		t.Fatalf("unexpected stored order %+v", stored)
	}

	// Мутация возвращённой копии не должна влиять на хранилище.
	stored.Items[0].Quantity = 99
	again, _ := repo.Get(ctx, created.ID)
	if again.Items[0].Quantity != 2 {
		t.Fatal("repository leaked internal slice")
	}

	if _, err := repo.Get(ctx, 404); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_SaveVersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	created, err := repo.Create(ctx, newOrder())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Items = created.Items[:1]
	created.Recalculate()
	saved, err := repo.Save(ctx, created)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.Version != created.Version+1 {
		t.Fatalf("expected version bump, got %d", saved.Version)
	}

	// Повторное сохранение со старой версией должно упасть.
	if _, err := repo.Save(ctx, created); !domain.IsVersionConflict(err) {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestOrderRepository_SaveAssignsNewItemIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	created, err := repo.Create(ctx, newOrder())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Items = []domain.OrderItem{
		domain.NewOrderItem(domain.LineRequest{ProductID: 7, Quantity: 3}, domain.Product{ID: 7, Name: "Pie", Price: 200}),
	}
	created.Recalculate()
	saved, err := repo.Save(ctx, created)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(saved.Items) != 1 || saved.Items[0].ID == 0 || saved.TotalPrice != 600 {
		t.Fatalf("unexpected saved order %+v", saved)
	}
}

func TestOrderRepository_RemoveItem(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	created, err := repo.Create(ctx, newOrder())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.RemoveItem(ctx, created.ID, created.Items[0].ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	stored, _ := repo.Get(ctx, created.ID)
	if len(stored.Items) != 1 || stored.Items[0].ProductID != 6 {
		t.Fatalf("unexpected items %+v", stored.Items)
	}
	// Итог и версия остаются прежними до Save.
	if stored.TotalPrice != created.TotalPrice || stored.Version != created.Version {
		t.Fatalf("RemoveItem must not touch total or version: %+v", stored)
	}

	if err := repo.RemoveItem(ctx, created.ID, created.Items[0].ID); !errors.Is(err, domain.ErrOrderItemNotFound) {
		t.Fatalf("expected ErrOrderItemNotFound, got %v", err)
	}
	if err := repo.RemoveItem(ctx, 999, 1); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, newOrder()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 3 || orders[0].ID != 1 || orders[2].ID != 3 {
		t.Fatalf("unexpected list %+v", orders)
	}
}
