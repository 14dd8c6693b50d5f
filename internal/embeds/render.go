// Package embeds renders SCMM market data into Discord embeds: price
// blocks, insider stats, link buttons, and the composite item cards. The
// package performs no I/O; every function is a pure transformation of the
// data it is handed.
package embeds

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/spoofgg/rust-scmm-bot/internal/models"
	"github.com/spoofgg/rust-scmm-bot/internal/scmm"
)

// RenderMarketLines builds the price block text from the unified market
// breakdown. The store and Steam lines always appear; Skinport and CS.Deals
// lines are appended only when includeThirdParty is set. Venues without data
// fall back to "No data" (Steam) or "No listings" (third party) sentinels.
func RenderMarketLines(details models.ItemDetails, includeThirdParty bool) string {
	if details == nil {
		return "**Store:** Unknown\n**Steam Market:** No data"
	}

	bd := scmm.MarketBreakdown(details)

	lines := make([]string, 0, 4)

	if bd.StorePrice != nil {
		lines = append(lines, fmt.Sprintf("**Store:** $%.2f", *bd.StorePrice))
	} else {
		lines = append(lines, "**Store:** Unknown")
	}

	lines = append(lines, venueLine("Steam Market", bd.SteamPrice, bd.SteamVsStorePct, "store", "No data"))

	if includeThirdParty {
		lines = append(lines, venueLine("Skinport", bd.SkinportPrice, bd.SkinportVsSteamPct, "Steam", "No listings"))
		lines = append(lines, venueLine("CS.Deals", bd.CSDealsPrice, bd.CSDealsVsSteamPct, "Steam", "No listings"))
	}

	return strings.Join(lines, "\n")
}

// venueLine renders one venue's price with a colored, signed delta against
// its comparison base, or the absent-data sentinel.
func venueLine(label string, price, pct *float64, base, absent string) string {
	if price == nil {
		return fmt.Sprintf("**%s:** %s", label, absent)
	}
	if pct == nil {
		return fmt.Sprintf("**%s:** $%.2f", label, *price)
	}
	sign, emoji := "+", "🟢"
	if *pct < 0 {
		sign, emoji = "-", "🔴"
	}
	return fmt.Sprintf("**%s:** $%.2f (%s %s%.1f%% vs %s)", label, *price, emoji, sign, math.Abs(*pct), base)
}

// StatsBlock builds the multi-line insider stats block from an item detail
// document: release date + price, estimated supply, workshop subscribers,
// votes with positive ratio, favourites, views, and component breakdown.
// Each fact is best-effort; malformed or missing fields are skipped. Returns
// "" when no fact at all was found.
func StatsBlock(details models.ItemDetails) string {
	if details == nil {
		return ""
	}

	var lines []string

	var releasedDate string
	if released, ok := details.String("timeAccepted"); ok {
		releasedDate, _, _ = strings.Cut(released, "T")
	}
	storePrice := scmm.StorePriceFromDetails(details)

	switch {
	case releasedDate != "" && storePrice != nil:
		lines = append(lines, fmt.Sprintf("🛒 Released on **%s** for **$%.2f**", releasedDate, *storePrice))
	case releasedDate != "":
		lines = append(lines, fmt.Sprintf("🛒 Released on **%s**", releasedDate))
	case storePrice != nil:
		lines = append(lines, fmt.Sprintf("🛒 Store price for **$%.2f**", *storePrice))
	}

	if supply, ok := firstCount(details, "supplyTotalEstimated", "supplyTotalOwnersEstimated"); ok {
		lines = append(lines, fmt.Sprintf("📦 Estimated supply: **%s**", humanize.Comma(int64(supply))))
	}

	if subs, ok := firstCount(details, "subscriptionsCurrent", "subscriptionsLifetime"); ok {
		lines = append(lines, fmt.Sprintf("👥 Workshop subscribers: **%s**", humanize.Comma(int64(subs))))
	}

	votesUp, upOK := details.Number("votesUp")
	votesDown, downOK := details.Number("votesDown")
	if upOK && downOK {
		total := int64(votesUp) + int64(votesDown)
		if total > 0 {
			ratio := votesUp / float64(total) * 100
			lines = append(lines, fmt.Sprintf("👍 Votes: **%s** (%.0f%% positive)", humanize.Comma(total), ratio))
		}
	}

	if favs, ok := firstCount(details, "favouritedCurrent", "favouritedLifetime"); ok {
		lines = append(lines, fmt.Sprintf("⭐ Favourited: **%s**", humanize.Comma(int64(favs))))
	}

	if views, ok := details.Number("views"); ok {
		lines = append(lines, fmt.Sprintf("👀 Workshop views: **%s**", humanize.Comma(int64(views))))
	}

	if components := details.Object("breaksIntoComponents"); len(components) > 0 {
		var parts []string
		names := make([]string, 0, len(components))
		for name := range components {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if count, ok := jsonNumber(components[name]); ok {
				parts = append(parts, fmt.Sprintf("%dx %s", int64(count), name))
			}
		}
		if len(parts) > 0 {
			lines = append(lines, "🪓 Breaks into "+strings.Join(parts, ", "))
		}
	}

	return strings.Join(lines, "\n")
}

// firstCount returns the first populated counter among keys. A zero value
// only counts when no later key carries a nonzero one, mirroring how SCMM
// duplicates current/lifetime counters. A counter that is present but zero
// everywhere still renders as a **0** fact rather than being suppressed;
// a genuinely zero count is information, not absence.
func firstCount(details models.ItemDetails, keys ...string) (float64, bool) {
	zeroSeen := false
	for _, key := range keys {
		if v, ok := details.Number(key); ok {
			if v != 0 {
				return v, true
			}
			zeroSeen = true
		}
	}
	return 0, zeroSeen
}

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
