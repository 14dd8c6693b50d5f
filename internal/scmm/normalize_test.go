package scmm

import (
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"zero stays zero", 0, 0},
		{"small dollar value untouched", 4.99, 4.99},
		{"boundary value 50 not divided", 50, 50},
		{"just above boundary divided", 50.01, 0.5001},
		{"51 treated as cents", 51, 0.51},
		{"typical cents value", 1099, 10.99},
		{"large cents value", 250000, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePrice(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizePrice(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeStoreItem(t *testing.T) {
	raw := map[string]any{
		"id":             float64(42),
		"name":           "Big Grin",
		"storePrice":     float64(1099),
		"iconUrl":        "https://example.com/icon.png",
		"workshopFileId": float64(123456789),
		"appId":          float64(252490),
		"itemType":       "Mask",
		"itemCollection": "Grin",
	}

	item := normalizeStoreItem(raw)

	if item.Name != "Big Grin" {
		t.Errorf("Name = %q, want %q", item.Name, "Big Grin")
	}
	if item.ID == nil || *item.ID != 42 {
		t.Errorf("ID = %v, want 42", item.ID)
	}
	if item.StorePrice == nil || *item.StorePrice != 10.99 {
		t.Errorf("StorePrice = %v, want 10.99", item.StorePrice)
	}
	if item.IconURL != "https://example.com/icon.png" {
		t.Errorf("IconURL = %q", item.IconURL)
	}
	if item.WorkshopFileID != 123456789 {
		t.Errorf("WorkshopFileID = %d", item.WorkshopFileID)
	}
	if item.AppID != 252490 {
		t.Errorf("AppID = %d", item.AppID)
	}
	if item.ItemType != "Mask" || item.Collection != "Grin" {
		t.Errorf("ItemType/Collection = %q/%q", item.ItemType, item.Collection)
	}
}

func TestNormalizeStoreItemFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]any
		wantName  string
		wantPrice *float64
		wantIcon  string
	}{
		{
			name:     "missing name defaults to Unknown",
			raw:      map[string]any{},
			wantName: "Unknown",
		},
		{
			name:      "price falls back through key order",
			raw:       map[string]any{"usdPrice": float64(9.5)},
			wantName:  "Unknown",
			wantPrice: ptr(9.5),
		},
		{
			name:      "first price key wins over later ones",
			raw:       map[string]any{"storePrice": float64(1000), "price": float64(99999)},
			wantName:  "Unknown",
			wantPrice: ptr(10.0),
		},
		{
			name:      "non-numeric price skipped for next key",
			raw:       map[string]any{"storePrice": "broken", "finalPrice": float64(25)},
			wantName:  "Unknown",
			wantPrice: ptr(25.0),
		},
		{
			name:     "icon falls back to imageUrl",
			raw:      map[string]any{"imageUrl": "https://example.com/fallback.png"},
			wantName: "Unknown",
			wantIcon: "https://example.com/fallback.png",
		},
		{
			name:     "empty name falls back to Unknown",
			raw:      map[string]any{"name": ""},
			wantName: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := normalizeStoreItem(tt.raw)
			if item.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", item.Name, tt.wantName)
			}
			if tt.wantPrice == nil {
				if item.StorePrice != nil {
					t.Errorf("StorePrice = %v, want nil", *item.StorePrice)
				}
			} else if item.StorePrice == nil || *item.StorePrice != *tt.wantPrice {
				t.Errorf("StorePrice = %v, want %v", item.StorePrice, *tt.wantPrice)
			}
			if item.IconURL != tt.wantIcon {
				t.Errorf("IconURL = %q, want %q", item.IconURL, tt.wantIcon)
			}
		})
	}
}

func TestNormalizeItemList(t *testing.T) {
	raw := []any{
		map[string]any{"name": "One"},
		"not an object",
		map[string]any{"name": "Two"},
	}

	items := normalizeItemList(raw)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Name != "One" || items[1].Name != "Two" {
		t.Errorf("Unexpected item names: %q, %q", items[0].Name, items[1].Name)
	}

	if got := normalizeItemList("not a list"); got != nil {
		t.Errorf("Expected nil for non-list input, got %v", got)
	}
}

func ptr(v float64) *float64 {
	return &v
}
