package embeds

import (
	"strings"
	"testing"

	"github.com/spoofgg/rust-scmm-bot/internal/models"
)

func TestRenderMarketLinesNoData(t *testing.T) {
	want := "**Store:** Unknown\n**Steam Market:** No data"

	if got := RenderMarketLines(nil, false); got != want {
		t.Errorf("nil details: got %q, want %q", got, want)
	}
	if got := RenderMarketLines(models.ItemDetails{}, false); got != want {
		t.Errorf("empty details: got %q, want %q", got, want)
	}
}

func TestRenderMarketLinesStoreVsSteam(t *testing.T) {
	details := models.ItemDetails{
		"storePrice": float64(1000), // $10
		"buyPrices": []any{
			map[string]any{"marketType": models.MarketTypeSteamCommunity, "price": float64(1500)}, // $15
		},
	}

	got := RenderMarketLines(details, false)
	want := "**Store:** $10.00\n**Steam Market:** $15.00 (🟢 +50.0% vs store)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderMarketLinesThirdParty(t *testing.T) {
	details := models.ItemDetails{
		"storePrice": float64(1000),
		"buyPrices": []any{
			map[string]any{"marketType": models.MarketTypeSteamCommunity, "price": float64(1500)},
			map[string]any{"marketType": models.MarketTypeSkinport, "price": float64(12)},
		},
	}

	got := RenderMarketLines(details, true)

	if !strings.Contains(got, "**Skinport:** $12.00 (🔴 -20.0% vs Steam)") {
		t.Errorf("Missing Skinport delta line in %q", got)
	}
	if !strings.Contains(got, "**CS.Deals:** No listings") {
		t.Errorf("Missing CS.Deals sentinel in %q", got)
	}

	// The same document rendered without third-party venues drops both lines.
	slim := RenderMarketLines(details, false)
	if strings.Contains(slim, "Skinport") || strings.Contains(slim, "CS.Deals") {
		t.Errorf("Third-party lines leaked into slim render: %q", slim)
	}
}

func TestRenderMarketLinesSteamWithoutStore(t *testing.T) {
	details := models.ItemDetails{
		"buyPrices": []any{
			map[string]any{"marketType": models.MarketTypeSteamCommunity, "price": float64(1500)},
		},
	}

	got := RenderMarketLines(details, false)
	want := "**Store:** Unknown\n**Steam Market:** $15.00"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStatsBlock(t *testing.T) {
	details := models.ItemDetails{
		"timeAccepted":         "2024-03-07T18:00:00Z",
		"storePrice":           float64(1299),
		"supplyTotalEstimated": float64(125000),
		"subscriptionsCurrent": float64(4200),
		"votesUp":              float64(90),
		"votesDown":            float64(10),
		"favouritedCurrent":    float64(321),
		"views":                float64(100000),
		"breaksIntoComponents": map[string]any{
			"Metal": float64(5),
			"Cloth": float64(10),
		},
	}

	got := StatsBlock(details)

	wantLines := []string{
		"🛒 Released on **2024-03-07** for **$12.99**",
		"📦 Estimated supply: **125,000**",
		"👥 Workshop subscribers: **4,200**",
		"👍 Votes: **100** (90% positive)",
		"⭐ Favourited: **321**",
		"👀 Workshop views: **100,000**",
		"🪓 Breaks into 10x Cloth, 5x Metal",
	}
	if got != strings.Join(wantLines, "\n") {
		t.Errorf("StatsBlock mismatch:\ngot:\n%s\nwant:\n%s", got, strings.Join(wantLines, "\n"))
	}
}

func TestStatsBlockPartial(t *testing.T) {
	details := models.ItemDetails{
		"subscriptionsLifetime": float64(77),
		"votesUp":               "malformed",
		"votesDown":             float64(3),
	}

	got := StatsBlock(details)

	if got != "👥 Workshop subscribers: **77**" {
		t.Errorf("got %q", got)
	}
}

func TestStatsBlockEmpty(t *testing.T) {
	if got := StatsBlock(models.ItemDetails{}); got != "" {
		t.Errorf("Expected empty stats block, got %q", got)
	}
	if got := StatsBlock(nil); got != "" {
		t.Errorf("Expected empty stats block for nil details, got %q", got)
	}
	// Zero total votes produce no vote line.
	if got := StatsBlock(models.ItemDetails{"votesUp": float64(0), "votesDown": float64(0)}); got != "" {
		t.Errorf("Expected empty stats block for zero votes, got %q", got)
	}
}

func TestStatsBlockCurrentFallsBackToLifetime(t *testing.T) {
	details := models.ItemDetails{
		"favouritedCurrent":  float64(0),
		"favouritedLifetime": float64(55),
	}

	got := StatsBlock(details)
	if got != "⭐ Favourited: **55**" {
		t.Errorf("got %q", got)
	}
}
