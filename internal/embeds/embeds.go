package embeds

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/spoofgg/rust-scmm-bot/internal/models"
	"github.com/spoofgg/rust-scmm-bot/internal/scmm"
)

// Embed accent colors, matching Discord's stock palette.
const (
	ColorDarkOrange = 0xA84300
	ColorBlurple    = 0x5865F2
	ColorRed        = 0xED4245
	ColorOrange     = 0xE67E22
)

// StoreItemEmbed builds the weekly-style card for one store item: subtitle
// from type/collection, item image, the price block, the identifier block,
// and the insider stats block. Weekly lookups pass includeThirdParty=false
// to keep the view focused on Store vs Steam.
func StoreItemEmbed(item models.StoreItem, details models.ItemDetails, includeThirdParty bool) *discordgo.MessageEmbed {
	var subtitleParts []string
	if item.ItemType != "" {
		subtitleParts = append(subtitleParts, item.ItemType)
	}
	if item.Collection != "" {
		subtitleParts = append(subtitleParts, item.Collection+" collection")
	}
	subtitle := "Rust store item"
	if len(subtitleParts) > 0 {
		subtitle = strings.Join(subtitleParts, " • ")
	}

	embed := &discordgo.MessageEmbed{
		Title:       item.Name,
		Description: subtitle,
		Color:       ColorDarkOrange,
	}
	if item.IconURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: item.IconURL}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🛒 Prices",
		Value: RenderMarketLines(details, includeThirdParty),
	})

	var idLines []string
	if item.WorkshopFileID != 0 {
		idLines = append(idLines, fmt.Sprintf("Workshop: `%d`", item.WorkshopFileID))
	}
	if item.ID != nil {
		idLines = append(idLines, fmt.Sprintf("Store ID: `%d`", *item.ID))
	}
	if item.AppID != 0 {
		idLines = append(idLines, fmt.Sprintf("App ID: `%d`", item.AppID))
	}
	if len(idLines) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🧾 Details",
			Value: strings.Join(idLines, "\n"),
		})
	}

	if stats := StatsBlock(details); stats != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "📊 Item stats",
			Value: stats,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: "SCMM • Weekly Rust Store • Auto-deletes in 5 minutes"}
	return embed
}

// LookupEmbed builds the single-item Store-vs-Steam card, without the
// third-party venues.
func LookupEmbed(details models.ItemDetails) *discordgo.MessageEmbed {
	name := details.Name()
	if name == "" {
		name = "Unknown item"
	}

	embed := &discordgo.MessageEmbed{
		Title:       name,
		Description: "Lookup: Store vs Steam Market",
		Color:       ColorBlurple,
	}
	if iconURL := details.IconURL(); iconURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: iconURL}
		embed.Image = &discordgo.MessageEmbedImage{URL: iconURL}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🛒 Prices",
		Value: RenderMarketLines(details, false),
	})

	if stats := StatsBlock(details); stats != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "📊 Item stats",
			Value: stats,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: "SCMM • Lookup • Auto-deletes in 5 minutes"}
	return embed
}

// ItemOverviewEmbed builds the full cross-market card used by /item_lookup:
// store, Steam, Skinport, and CS.Deals pricing plus the stats block.
func ItemOverviewEmbed(details models.ItemDetails) *discordgo.MessageEmbed {
	name := details.Name()
	if name == "" {
		name = "Unknown item"
	}

	embed := &discordgo.MessageEmbed{
		Title:       name,
		Description: "Cross-market overview (Store, Steam, Skinport, CS.Deals)",
		Color:       ColorBlurple,
	}
	if iconURL := details.IconURL(); iconURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: iconURL}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🛒 Prices",
		Value: RenderMarketLines(details, true),
	})

	if stats := StatsBlock(details); stats != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "📊 Item stats",
			Value: stats,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: "SCMM • Item Market Overview • Auto-deletes in 5 minutes"}
	return embed
}

// ItemLinkButtons builds the link-button row for /item_lookup: Steam Market,
// CS.Deals, and Skinport in that order, omitting venues without a URL.
// Returns nil when no venue resolved a URL at all.
func ItemLinkButtons(details models.ItemDetails) []discordgo.MessageComponent {
	urls := scmm.ExtractMarketURLs(details)

	var buttons []discordgo.MessageComponent
	if urls.Steam != "" {
		buttons = append(buttons, discordgo.Button{
			Style: discordgo.LinkButton,
			URL:   urls.Steam,
			Label: "Steam Market",
			Emoji: &discordgo.ComponentEmoji{Name: "🟦"},
		})
	}
	if urls.CSDeals != "" {
		buttons = append(buttons, discordgo.Button{
			Style: discordgo.LinkButton,
			URL:   urls.CSDeals,
			Label: "CS.Deals",
			Emoji: &discordgo.ComponentEmoji{Name: "🟣"},
		})
	}
	if urls.Skinport != "" {
		buttons = append(buttons, discordgo.Button{
			Style: discordgo.LinkButton,
			URL:   urls.Skinport,
			Label: "Skinport",
			Emoji: &discordgo.ComponentEmoji{Name: "🟢"},
		})
	}

	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// ErrorEmbed builds a red error card with the given title and message.
func ErrorEmbed(title, description, footer string) *discordgo.MessageEmbed {
	return noticeEmbed(title, description, footer, ColorRed)
}

// NoticeEmbed builds an orange informational card (not-found, truncation,
// empty results).
func NoticeEmbed(title, description, footer string) *discordgo.MessageEmbed {
	return noticeEmbed(title, description, footer, ColorOrange)
}

func noticeEmbed(title, description, footer string, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}
