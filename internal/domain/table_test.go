package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

func TestTableValidate(t *testing.T) {
	ok := domain.Table{Name: "Terrace 1", Quantity: 4, State: domain.TableStateAvailable}
	if errs := ok.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid table, got %v", errs)
	}

	bad := domain.Table{Quantity: -1}
	errs := bad.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	if !errors.Is(errs[0], domain.ErrTableNameRequired) {
		t.Fatalf("unexpected first error %v", errs[0])
	}
}

func TestTableStateUpdateApply(t *testing.T) {
	orderID := int64(12)
	table := domain.Table{ID: 1, Name: "Bar", Quantity: 2, State: domain.TableStateAvailable}

	domain.TableStateUpdate{Quantity: 6, State: domain.TableStateOccupied, ActiveOrderID: &orderID}.Apply(&table)

	if table.Name != "Bar" || table.Quantity != 6 || table.State != domain.TableStateOccupied {
		t.Fatalf("unexpected table %+v", table)
	}
	if table.ActiveOrderID == nil || *table.ActiveOrderID != 12 {
		t.Fatalf("active order not applied: %+v", table.ActiveOrderID)
	}
}
