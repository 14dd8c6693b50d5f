package scmm

import (
	"github.com/spoofgg/rust-scmm-bot/internal/models"
)

// StorePriceFromDetails extracts the normalized store price (USD) from an
// item detail document, or nil when absent.
func StorePriceFromDetails(details models.ItemDetails) *float64 {
	v, ok := details.Number("storePrice")
	if !ok {
		return nil
	}
	price := NormalizePrice(v)
	return &price
}

// MarketBreakdown builds the unified pricing model for one skin: store
// price, the best (minimum) available price per venue across the buy and
// sell price lists, and the percentage deltas between them. Pure function of
// the detail document; recomputed on every render.
func MarketBreakdown(details models.ItemDetails) models.Breakdown {
	bd := models.Breakdown{
		StorePrice: StorePriceFromDetails(details),
	}

	var steam, skinport, csdeals *float64

	scan := func(entries []any) {
		for _, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			// Only an explicit false excludes the entry; a missing flag
			// counts as available.
			if avail, ok := entry["isAvailable"].(bool); ok && !avail {
				continue
			}
			raw, ok := jsonNumber(entry["price"])
			if !ok {
				continue
			}
			price := NormalizePrice(raw)

			switch entry["marketType"] {
			case models.MarketTypeSteamCommunity, models.MarketTypeSteamLegacy:
				steam = keepMin(steam, price)
			case models.MarketTypeSkinport:
				skinport = keepMin(skinport, price)
			case models.MarketTypeCSDeals:
				csdeals = keepMin(csdeals, price)
			}
		}
	}
	scan(details.List("buyPrices"))
	scan(details.List("sellPrices"))

	bd.SteamPrice = steam
	bd.SkinportPrice = skinport
	bd.CSDealsPrice = csdeals

	bd.SteamVsStorePct = pctDelta(steam, bd.StorePrice)
	bd.SkinportVsSteamPct = pctDelta(skinport, steam)
	bd.CSDealsVsSteamPct = pctDelta(csdeals, steam)

	return bd
}

// keepMin tracks the best (lowest) price seen for a venue.
func keepMin(current *float64, price float64) *float64 {
	if current == nil || price < *current {
		return &price
	}
	return current
}

// pctDelta computes (price-base)/base*100, or nil when either operand is
// absent or the base is zero.
func pctDelta(price, base *float64) *float64 {
	if price == nil || base == nil || *base == 0 {
		return nil
	}
	pct := (*price - *base) / *base * 100
	return &pct
}
