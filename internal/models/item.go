// Package models defines the core domain entities for the rust-scmm-bot application.
// These models represent normalized store catalog entries, loosely-typed item detail
// documents from SCMM, and the derived per-item market breakdowns rendered in Discord.
//
// Terminology (matching SCMM's own naming):
//   - Store: a dated snapshot of purchasable catalog items.
//   - Item details: the full per-item JSON document from /api/item/{name}.
//   - Venue: one of the third-party pricing sources (Steam, Skinport, CS.Deals).
package models

// Market type tags used by SCMM price entries. Steam appears under two
// historical spellings.
const (
	MarketTypeSteamCommunity = "SteamCommunityMarket"
	MarketTypeSteamLegacy    = "SteamMarket"
	MarketTypeSkinport       = "Skinport"
	MarketTypeCSDeals        = "CSDealsMarketplace"
)

// StoreItem is a normalized minimal view of a Rust store item from SCMM.
// It is constructed once from a raw store record and immutable afterwards;
// instances live only for the duration of a single command invocation.
type StoreItem struct {
	ID             *int64   `json:"id,omitempty"`
	Name           string   `json:"name"`
	StorePrice     *float64 `json:"store_price,omitempty"` // USD, cents-heuristic applied
	IconURL        string   `json:"icon_url,omitempty"`
	WorkshopFileID int64    `json:"workshop_file_id,omitempty"`
	AppID          int64    `json:"app_id,omitempty"`
	ItemType       string   `json:"item_type,omitempty"`
	Collection     string   `json:"collection,omitempty"`
}

// ItemDetails is the full per-item detail document from SCMM. SCMM does not
// publish a stable schema for it, so it stays a loose map and is read
// defensively through the accessors below; absent or misshapen fields are
// "fact unavailable", never an error.
type ItemDetails map[string]any

// Number returns the numeric value under key, if present and numeric.
func (d ItemDetails) Number(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// String returns the non-empty string value under key, if present.
func (d ItemDetails) String(key string) (string, bool) {
	s, ok := d[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// List returns the array value under key, or nil if the field is absent or
// not an array.
func (d ItemDetails) List(key string) []any {
	l, _ := d[key].([]any)
	return l
}

// Object returns the object value under key, or nil.
func (d ItemDetails) Object(key string) map[string]any {
	o, _ := d[key].(map[string]any)
	return o
}

// Name returns the item's display name, or "" when absent.
func (d ItemDetails) Name() string {
	name, _ := d.String("name")
	return name
}

// IconURL returns the first populated icon field, checking the spellings SCMM
// has used over time.
func (d ItemDetails) IconURL() string {
	for _, key := range []string{"iconUrl", "iconURL", "imageUrl"} {
		if url, ok := d.String(key); ok {
			return url
		}
	}
	return ""
}

// Breakdown is the unified per-item price comparison across venues. It is a
// pure function of an ItemDetails document, recomputed on every render and
// never cached. Nil fields mean the venue had no usable data; the percentage
// deltas are only set when both operands exist and the base is nonzero.
type Breakdown struct {
	StorePrice         *float64 `json:"store_price,omitempty"`
	SteamPrice         *float64 `json:"steam_price,omitempty"`
	SteamVsStorePct    *float64 `json:"steam_vs_store_pct,omitempty"`
	SkinportPrice      *float64 `json:"skinport_price,omitempty"`
	SkinportVsSteamPct *float64 `json:"skinport_vs_steam_pct,omitempty"`
	CSDealsPrice       *float64 `json:"csdeals_price,omitempty"`
	CSDealsVsSteamPct  *float64 `json:"csdeals_vs_steam_pct,omitempty"`
}

// MarketURLs maps each venue to a display URL ("" when unavailable). These
// URLs are only ever rendered as link buttons, never fetched.
type MarketURLs struct {
	Steam    string `json:"steam,omitempty"`
	Skinport string `json:"skinport,omitempty"`
	CSDeals  string `json:"csdeals,omitempty"`
}
