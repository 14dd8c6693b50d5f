package scmm

import (
	"net/url"
	"strings"

	"github.com/spoofgg/rust-scmm-bot/internal/models"
)

// RustAppID is the Steam platform app ID for Rust, used for constructed
// community-market listing URLs.
const RustAppID = "252490"

// Top-level detail fields that may carry a venue URL when the price entries
// don't. CS.Deals is deliberately absent: its URL is always synthesized.
var topLevelURLKeys = map[string][]string{
	"steam":    {"steamMarketUrl", "steamMarketURL", "steamUrl"},
	"skinport": {"skinportUrl", "skinPortUrl"},
}

// ExtractMarketURLs resolves a display URL per venue for an item.
//
// Steam and Skinport resolve in order: a URL on one of the item's price
// entries, then the known top-level fallback fields, then a deterministic
// URL built from the item name. CS.Deals URLs in SCMM data are discarded on
// purpose; the CS.Deals link is always the Rust-market search URL built from
// the item name, so it lands on the exact-name search rather than whatever
// listing SCMM last indexed.
func ExtractMarketURLs(details models.ItemDetails) models.MarketURLs {
	var urls models.MarketURLs

	for _, key := range []string{"buyPrices", "sellPrices"} {
		for _, e := range details.List(key) {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			link := entryURL(entry)
			if link == "" {
				continue
			}
			switch entry["marketType"] {
			case models.MarketTypeSteamCommunity, models.MarketTypeSteamLegacy:
				if urls.Steam == "" {
					urls.Steam = link
				}
			case models.MarketTypeSkinport:
				if urls.Skinport == "" {
					urls.Skinport = link
				}
			}
		}
	}

	if urls.Steam == "" {
		urls.Steam = firstTopLevelURL(details, topLevelURLKeys["steam"])
	}
	if urls.Skinport == "" {
		urls.Skinport = firstTopLevelURL(details, topLevelURLKeys["skinport"])
	}

	if name := details.Name(); name != "" {
		safe := strictEscape(name)

		if urls.Steam == "" {
			urls.Steam = "https://steamcommunity.com/market/listings/" + RustAppID + "/" + safe
		}
		if urls.Skinport == "" {
			urls.Skinport = "https://skinport.com/rust?search=" + safe
		}
		urls.CSDeals = "https://cs.deals/new/market?game=rust&sort=newest&sort_desc=1&exact_match=0&name=" + url.QueryEscape(name)
	}

	return urls
}

// strictEscape percent-encodes every reserved character, including the
// sub-delims PathEscape leaves raw (`&`, `=`, `+`), so the result is safe
// both as a path segment and as a query value. Spaces encode as %20.
func strictEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// entryURL returns the first URL-ish field on a price entry.
func entryURL(entry map[string]any) string {
	for _, key := range []string{"url", "link", "href"} {
		if s, ok := entry[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstTopLevelURL(details models.ItemDetails, keys []string) string {
	for _, key := range keys {
		if s, ok := details.String(key); ok {
			return s
		}
	}
	return ""
}
