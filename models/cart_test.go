package models

import "testing"

func testProduct(id string, price float64) Product {
	return Product{
		ID:        id,
		Name:      "Camisa " + id,
		Price:     price,
		ImageURLs: []string{"https://img.example/" + id + ".jpg"},
		Sizes:     []string{"P", "M", "G"},
	}
}

func TestAddSameProductAndSizeMergesQuantities(t *testing.T) {
	cart := &Cart{}
	shirt := testProduct("p1", 100)

	cart.AddItem(shirt, "M", 1)
	cart.AddItem(shirt, "M", 1)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if total := cart.Total(); total != 200 {
		t.Fatalf("expected total 200, got %v", total)
	}
}

func TestAddDifferentSizeCreatesSeparateLineItem(t *testing.T) {
	cart := &Cart{}
	shirt := testProduct("p1", 100)

	cart.AddItem(shirt, "M", 1)
	cart.AddItem(shirt, "G", 1)

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(cart.Items))
	}
}

func TestAddOpensPanel(t *testing.T) {
	cart := &Cart{}
	if cart.PanelOpen {
		t.Fatal("panel should start closed")
	}
	cart.AddItem(testProduct("p1", 50), "P", 1)
	if !cart.PanelOpen {
		t.Fatal("adding an item should open the panel")
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	a := &Cart{}
	b := &Cart{}
	shirt := testProduct("p1", 100)

	a.AddItem(shirt, "M", 3)
	b.AddItem(shirt, "M", 3)

	a.SetQuantity("p1", "M", 0)
	b.RemoveItem("p1", "M")

	if len(a.Items) != len(b.Items) || len(a.Items) != 0 {
		t.Fatalf("expected both carts empty, got %d and %d items", len(a.Items), len(b.Items))
	}
}

func TestSetQuantityIsExactNotIncremental(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", 100), "M", 5)

	cart.SetQuantity("p1", "M", 2)

	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", 100), "M", 1)

	cart.RemoveItem("p1", "G")
	cart.RemoveItem("p2", "M")

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item after no-op removals, got %d", len(cart.Items))
	}
}

func TestClearEmptiesCart(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", 100), "M", 1)
	cart.AddItem(testProduct("p2", 80), "P", 2)

	cart.Clear()

	if len(cart.Items) != 0 || cart.Total() != 0 || cart.Count() != 0 {
		t.Fatalf("expected empty cart, got %d items total %v count %d",
			len(cart.Items), cart.Total(), cart.Count())
	}
}

func TestTotalIgnoresDiscounts(t *testing.T) {
	cart := &Cart{}
	discounted := testProduct("p1", 100)
	discounted.DiscountPercent = 50
	cart.AddItem(discounted, "M", 2)

	if total := cart.Total(); total != 200 {
		t.Fatalf("total must be pre-discount: expected 200, got %v", total)
	}
}

func TestCountSumsQuantities(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", 100), "M", 2)
	cart.AddItem(testProduct("p2", 80), "P", 3)

	if count := cart.Count(); count != 5 {
		t.Fatalf("expected count 5, got %d", count)
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	cart := &Cart{}
	shirt := testProduct("p1", 100)
	shirt.DiscountPercent = 10
	cart.AddItem(shirt, "M", 1)

	item := cart.Items[0]
	if item.ProductName != shirt.Name {
		t.Fatalf("expected snapshot name %q, got %q", shirt.Name, item.ProductName)
	}
	if item.ProductPrice != 100 {
		t.Fatalf("expected snapshot price 100, got %v", item.ProductPrice)
	}
	if item.ProductImage != shirt.ImageURLs[0] {
		t.Fatalf("expected cover image snapshot, got %q", item.ProductImage)
	}
	if item.DiscountPercent != 10 {
		t.Fatalf("expected snapshot discount 10, got %v", item.DiscountPercent)
	}
}
