package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/spoofgg/rust-scmm-bot/internal/embeds"
	"github.com/spoofgg/rust-scmm-bot/internal/logger"
)

const (
	weekFooter     = "SCMM • Weekly Store by Date • Auto-deletes in 5 minutes"
	overviewFooter = "SCMM • Item Market Overview • Auto-deletes in 5 minutes"
)

// invocationID tags all log lines of one command invocation so interleaved
// handlers can be told apart.
func invocationID() string {
	return uuid.NewString()[:8]
}

// optionMap indexes an interaction's options by name.
func optionMap(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt
	}
	return opts
}

// handleWeekLookup renders the Rust item store for a given date, comparing
// Store vs Steam. Third-party markets are intentionally excluded here to
// keep the weekly view focused and readable.
func (b *Bot) handleWeekLookup(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i, "week_lookup") {
		return
	}
	id := invocationID()

	opts := optionMap(i.ApplicationCommandData())
	year := int(opts["year"].IntValue())
	month := int(opts["month"].IntValue())
	day := int(opts["day"].IntValue())

	target := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so a round-trip
	// mismatch means the input was not a real calendar date.
	if target.Year() != year || target.Month() != time.Month(month) || target.Day() != day {
		embed := embeds.ErrorEmbed(
			"🛒 Weekly Store – Invalid Date",
			fmt.Sprintf("That date is not valid: `%04d-%02d-%02d`", year, month, day),
			weekFooter,
		)
		b.sendFollowupAutodelete(s, i, embed, nil)
		return
	}
	dateStr := target.Format("2006-01-02")
	logger.Info("[%s] week_lookup for %s", id, dateStr)

	ctx := context.Background()
	items, storeID, err := b.scmm.FetchStoreItemsForDate(ctx, target)
	if err != nil {
		logger.Warn("[%s] week_lookup fetch failed: %v", id, err)
		b.sendFollowupAutodelete(s, i, embeds.ErrorEmbed("🛒 Weekly Store – Error", err.Error(), weekFooter), nil)
		return
	}

	if len(items) == 0 {
		embed := embeds.NoticeEmbed(
			"🛒 Weekly Store – No Store for That Date",
			fmt.Sprintf("No store was found with start date `%s`.\nUse `/store_list_debug` to see available store dates.", dateStr),
			weekFooter,
		)
		b.sendFollowupAutodelete(s, i, embed, nil)
		return
	}

	totalItems := len(items)
	truncated := false
	if totalItems > b.cfg.MaxWeekItems {
		truncated = true
		items = items[:b.cfg.MaxWeekItems]
	}

	footer := fmt.Sprintf("SCMM • Store %s", dateStr)
	if storeID != "" {
		footer += fmt.Sprintf(" • ID %s", storeID)
	}
	footer += " • Auto-deletes in 5 minutes"

	for _, item := range items {
		details, err := b.scmm.FetchItemDetails(ctx, item)
		if err != nil {
			logger.Info("[%s] Failed to enrich item %s for %s: %v", id, item.Name, dateStr, err)
			details = nil
		}

		embed := embeds.StoreItemEmbed(item, details, false)
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
		b.sendFollowupAutodelete(s, i, embed, nil)
	}

	if truncated {
		note := embeds.NoticeEmbed(
			"⚠️ Store truncated",
			fmt.Sprintf("This store has **%d** items.\nShowing the first **%d** to avoid spamming the channel.", totalItems, b.cfg.MaxWeekItems),
			weekFooter,
		)
		b.sendFollowupAutodelete(s, i, note, nil)
	}
}

// handleItemLookup shows the cross-market view for a single Rust skin with
// link buttons for each venue.
func (b *Bot) handleItemLookup(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i, "item_lookup") {
		return
	}
	id := invocationID()

	opts := optionMap(i.ApplicationCommandData())
	name := opts["name"].StringValue()
	logger.Info("[%s] item_lookup for %q", id, name)

	details, err := b.scmm.FetchItemDetailsByName(context.Background(), name)
	if err != nil {
		msg := err.Error()

		// Friendlier card for bad input than for a real failure. These are
		// message substrings, not an error taxonomy.
		var embed *discordgo.MessageEmbed
		if strings.Contains(msg, "no item found") || strings.Contains(msg, "name is required") {
			embed = embeds.NoticeEmbed("🔍 Item Not Found", msg, overviewFooter)
		} else {
			logger.Warn("[%s] item_lookup failed: %v", id, err)
			embed = embeds.ErrorEmbed("🔍 Item Lookup – Error", msg, overviewFooter)
		}
		b.sendFollowupAutodelete(s, i, embed, nil)
		return
	}

	embed := embeds.ItemOverviewEmbed(details)
	components := embeds.ItemLinkButtons(details)
	b.sendFollowupAutodelete(s, i, embed, components)
}

// handleStoreCurrentDebug shows a structural preview of /api/store/current.
func (b *Bot) handleStoreCurrentDebug(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i, "store_current_debug") {
		return
	}

	data, err := b.scmm.FetchStoreCurrentRaw(context.Background())
	if err != nil {
		b.sendFollowup(s, i, embeds.ErrorEmbed("🧪 Store Debug – Error", err.Error(), "SCMM • Store Debug"))
		return
	}

	b.sendFollowup(s, i, embeds.StoreCurrentDebugEmbed(data))
}

// handleStoreListDebug lists the latest 10 store IDs known to SCMM.
func (b *Bot) handleStoreListDebug(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i, "store_list_debug") {
		return
	}

	stores, err := b.scmm.FetchStoreList(context.Background())
	if err != nil {
		b.sendFollowup(s, i, embeds.ErrorEmbed("🧾 Store List – Error", err.Error(), "SCMM • Store List Debug"))
		return
	}

	if len(stores) == 0 {
		b.sendFollowup(s, i, embeds.NoticeEmbed("🧾 Store List – Empty", "SCMM /api/store returned no store instances.", "SCMM • Store List Debug"))
		return
	}

	b.sendFollowup(s, i, embeds.StoreListDebugEmbed(stores))
}

// handlePing runs the lightweight SCMM connectivity check.
func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.deferResponse(s, i, "scmm_ping") {
		return
	}

	status, err := b.scmm.Ping(context.Background())
	if err != nil {
		b.sendFollowup(s, i, embeds.ErrorEmbed("🛰️ SCMM Ping – Failed", err.Error(), "SCMM • Ping"))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛰️ SCMM Ping",
		Description: status,
		Color:       embeds.ColorBlurple,
		Footer:      &discordgo.MessageEmbedFooter{Text: "SCMM • Ping"},
	}
	b.sendFollowup(s, i, embed)
}
