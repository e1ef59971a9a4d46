package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"quickbite-pos/models"
)

func item(id, name, unitPrice string) models.CatalogItem {
	return models.CatalogItem{
		ID:        id,
		Name:      name,
		UnitPrice: decimal.RequireFromString(unitPrice),
		Category:  "Test",
	}
}

func TestAddAccumulatesOneLinePerItem(t *testing.T) {
	cart := NewCartStore()
	shawarma := item("s1", "Beef Shawarma", "6.50")

	for i := 0; i < 5; i++ {
		cart.Add(shawarma)
	}

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}
}

func TestAddSnapshotsNameAndPrice(t *testing.T) {
	cart := NewCartStore()
	cart.Add(item("s1", "Beef Shawarma", "6.50"))

	lines := cart.Lines()
	if lines[0].Name != "Beef Shawarma" || !lines[0].UnitPrice.Equal(decimal.RequireFromString("6.50")) {
		t.Errorf("line = %+v, want snapshotted name and price", lines[0])
	}

	// mutating the returned copy must not leak into the store
	lines[0].Quantity = 99
	if cart.Lines()[0].Quantity != 1 {
		t.Error("Lines must return a copy")
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	cart := NewCartStore()
	cart.Add(item("s1", "Beef Shawarma", "6.50"))

	cases := []struct {
		delta int
		want  int
	}{
		{+3, 4},
		{-100, 1},
		{-1, 1},
		{+1, 2},
	}
	for _, tc := range cases {
		if !cart.UpdateQuantity("s1", tc.delta) {
			t.Fatalf("delta %d: line not found", tc.delta)
		}
		if got := cart.Lines()[0].Quantity; got != tc.want {
			t.Errorf("after delta %d quantity = %d, want %d", tc.delta, got, tc.want)
		}
	}
}

func TestUpdateQuantityAbsentLine(t *testing.T) {
	cart := NewCartStore()
	if cart.UpdateQuantity("ghost", 1) {
		t.Error("expected false for an absent line")
	}
}

func TestRemoveAndClear(t *testing.T) {
	cart := NewCartStore()
	cart.Add(item("s1", "Beef Shawarma", "6.50"))
	cart.Add(item("d1", "Coca Cola", "1.50"))

	cart.Remove("s1")
	if len(cart.Lines()) != 1 {
		t.Fatalf("got %d lines after remove, want 1", len(cart.Lines()))
	}

	cart.Remove("ghost") // no-op
	if len(cart.Lines()) != 1 {
		t.Error("removing an absent line must be a no-op")
	}

	cart.Clear()
	if !cart.IsEmpty() {
		t.Error("cart should be empty after Clear")
	}
}
