package scmm

import (
	"github.com/spoofgg/rust-scmm-bot/internal/models"
)

// Raw store item fields tried in order for the price and icon. SCMM has
// shuffled these names around between API revisions.
var (
	priceKeys = []string{"storePrice", "price", "usdPrice", "finalPrice"}
	iconKeys  = []string{"iconUrl", "iconURL", "imageUrl"}
)

// NormalizePrice converts an SCMM price value into USD. SCMM commonly uses
// integer cents: any value above 50 is assumed to be cents and divided by
// 100, values at or below 50 are assumed to already be dollars. The
// heuristic is ambiguous for whole-cent values between 51 and 5000 and is
// kept exactly as SCMM consumers have always applied it, since the upstream
// unit convention is undocumented.
func NormalizePrice(v float64) float64 {
	if v > 50 {
		return v / 100
	}
	return v
}

// normalizeStoreItem maps one raw store record into a StoreItem, reading
// every field defensively.
func normalizeStoreItem(raw map[string]any) models.StoreItem {
	item := models.StoreItem{Name: "Unknown"}

	if name, ok := raw["name"].(string); ok && name != "" {
		item.Name = name
	}
	if id, ok := jsonInt(raw["id"]); ok {
		item.ID = &id
	}

	for _, key := range priceKeys {
		if v, ok := jsonNumber(raw[key]); ok {
			price := NormalizePrice(v)
			item.StorePrice = &price
			break
		}
	}

	for _, key := range iconKeys {
		if s, ok := raw[key].(string); ok && s != "" {
			item.IconURL = s
			break
		}
	}

	if v, ok := jsonInt(raw["workshopFileId"]); ok {
		item.WorkshopFileID = v
	}
	if v, ok := jsonInt(raw["appId"]); ok {
		item.AppID = v
	}
	if s, ok := raw["itemType"].(string); ok {
		item.ItemType = s
	}
	if s, ok := raw["itemCollection"].(string); ok {
		item.Collection = s
	}

	return item
}

// normalizeItemList normalizes every object entry of a raw item list.
// Non-list input and non-object entries produce an empty result.
func normalizeItemList(raw any) []models.StoreItem {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	items := make([]models.StoreItem, 0, len(list))
	for _, entry := range list {
		if obj, ok := entry.(map[string]any); ok {
			items = append(items, normalizeStoreItem(obj))
		}
	}
	return items
}

// jsonNumber extracts a numeric JSON value. encoding/json decodes all
// numbers as float64, but ints are accepted too for hand-built test data.
func jsonNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func jsonInt(v any) (int64, bool) {
	n, ok := jsonNumber(v)
	if !ok {
		return 0, false
	}
	return int64(n), true
}
