package scmm

import (
	"testing"

	"github.com/spoofgg/rust-scmm-bot/internal/models"
)

func priceEntry(marketType string, price float64) map[string]any {
	return map[string]any{"marketType": marketType, "price": price}
}

func TestMarketBreakdown(t *testing.T) {
	details := models.ItemDetails{
		// cents -> $10
		"storePrice": float64(1000),
		"buyPrices": []any{
			// $20, and $30 (<= 50 means already dollars)
			priceEntry(models.MarketTypeSteamCommunity, 2000),
			priceEntry(models.MarketTypeSkinport, 30),
		},
		"sellPrices": []any{
			// $15, best Steam price across both spellings; $12 for CS.Deals
			priceEntry(models.MarketTypeSteamLegacy, 1500),
			priceEntry(models.MarketTypeCSDeals, 12),
			// Unknown venues, malformed entries, and priceless entries are skipped
			priceEntry("SomeUnknownMarket", 1),
			"not an object",
			map[string]any{"marketType": "Skinport"},
		},
	}

	bd := MarketBreakdown(details)

	if bd.StorePrice == nil || *bd.StorePrice != 10 {
		t.Fatalf("StorePrice = %v, want 10", bd.StorePrice)
	}
	if bd.SteamPrice == nil || *bd.SteamPrice != 15 {
		t.Fatalf("SteamPrice = %v, want 15 (minimum across both spellings)", bd.SteamPrice)
	}
	if bd.SkinportPrice == nil || *bd.SkinportPrice != 30 {
		t.Fatalf("SkinportPrice = %v, want 30", bd.SkinportPrice)
	}
	if bd.CSDealsPrice == nil || *bd.CSDealsPrice != 12 {
		t.Fatalf("CSDealsPrice = %v, want 12", bd.CSDealsPrice)
	}

	// (15-10)/10*100 = 50
	if bd.SteamVsStorePct == nil || *bd.SteamVsStorePct != 50 {
		t.Errorf("SteamVsStorePct = %v, want 50", bd.SteamVsStorePct)
	}
	// (30-15)/15*100 = 100
	if bd.SkinportVsSteamPct == nil || *bd.SkinportVsSteamPct != 100 {
		t.Errorf("SkinportVsSteamPct = %v, want 100", bd.SkinportVsSteamPct)
	}
	// (12-15)/15*100 = -20
	if bd.CSDealsVsSteamPct == nil || *bd.CSDealsVsSteamPct != -20 {
		t.Errorf("CSDealsVsSteamPct = %v, want -20", bd.CSDealsVsSteamPct)
	}
}

func TestMarketBreakdownUnavailableExcluded(t *testing.T) {
	details := models.ItemDetails{
		"buyPrices": []any{
			map[string]any{"marketType": models.MarketTypeSteamCommunity, "price": float64(500), "isAvailable": false},
			map[string]any{"marketType": models.MarketTypeSteamCommunity, "price": float64(1500), "isAvailable": true},
			map[string]any{"marketType": models.MarketTypeSteamCommunity, "price": float64(1800)},
		},
	}

	bd := MarketBreakdown(details)

	// The unavailable $5 entry must lose to the available $15 one; a
	// missing isAvailable flag counts as available.
	if bd.SteamPrice == nil || *bd.SteamPrice != 15 {
		t.Fatalf("SteamPrice = %v, want 15", bd.SteamPrice)
	}
}

func TestMarketBreakdownMissingOperands(t *testing.T) {
	tests := []struct {
		name    string
		details models.ItemDetails
	}{
		{"empty document", models.ItemDetails{}},
		{
			"steam only, no store price",
			models.ItemDetails{
				"buyPrices": []any{priceEntry(models.MarketTypeSteamCommunity, 1500)},
			},
		},
		{
			"store price zero",
			models.ItemDetails{
				"storePrice": float64(0),
				"buyPrices":  []any{priceEntry(models.MarketTypeSteamCommunity, 1500)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := MarketBreakdown(tt.details)
			if bd.SteamVsStorePct != nil {
				t.Errorf("SteamVsStorePct = %v, want nil", *bd.SteamVsStorePct)
			}
			if bd.SkinportVsSteamPct != nil {
				t.Errorf("SkinportVsSteamPct = %v, want nil", *bd.SkinportVsSteamPct)
			}
			if bd.CSDealsVsSteamPct != nil {
				t.Errorf("CSDealsVsSteamPct = %v, want nil", *bd.CSDealsVsSteamPct)
			}
		})
	}
}

func TestStorePriceFromDetails(t *testing.T) {
	if p := StorePriceFromDetails(models.ItemDetails{"storePrice": float64(1099)}); p == nil || *p != 10.99 {
		t.Errorf("StorePriceFromDetails = %v, want 10.99", p)
	}
	if p := StorePriceFromDetails(models.ItemDetails{"storePrice": "broken"}); p != nil {
		t.Errorf("Expected nil for non-numeric storePrice, got %v", *p)
	}
	if p := StorePriceFromDetails(models.ItemDetails{}); p != nil {
		t.Errorf("Expected nil for missing storePrice, got %v", *p)
	}
}
