// Package bot wires the SCMM market data and embed rendering into Discord:
// slash-command registration, interaction handling, deferred responses,
// follow-up messages with tracked auto-deletion, and the name autocomplete.
package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/spoofgg/rust-scmm-bot/internal/config"
	"github.com/spoofgg/rust-scmm-bot/internal/logger"
	"github.com/spoofgg/rust-scmm-bot/internal/scmm"
)

// Bot is the Discord-facing service. It owns the gateway session, the SCMM
// client, and every auto-delete timer it spawns, and has an explicit
// New → Start → Shutdown lifecycle.
type Bot struct {
	session *discordgo.Session
	scmm    *scmm.Client
	cfg     config.DiscordConfig

	// deletions tracks in-flight auto-delete timers. Timers run to
	// completion once scheduled; the group exists so tests (and anyone
	// who cares) can wait for them.
	deletions sync.WaitGroup
}

// New creates the bot and its Discord session without connecting.
func New(cfg config.DiscordConfig, client *scmm.Client) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	b := &Bot{
		session: session,
		scmm:    client,
		cfg:     cfg,
	}
	session.AddHandler(b.handleInteraction)
	session.Identify.Intents = discordgo.IntentsGuilds

	return b, nil
}

// Start opens the gateway session and syncs the slash commands to the
// configured guild. Guild-scoped registration propagates immediately,
// unlike global registration.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	commands, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.cfg.GuildID, commandDefinitions())
	if err != nil {
		_ = b.session.Close()
		return fmt.Errorf("failed to register commands: %w", err)
	}
	logger.Info("Synced %d commands to guild %s", len(commands), b.cfg.GuildID)

	return nil
}

// Shutdown closes the gateway session. Pending auto-delete timers are
// deliberately left to run out; their deletions fail benignly once the
// session is gone.
func (b *Bot) Shutdown() error {
	return b.session.Close()
}

// commandDefinitions returns the slash commands synced on startup.
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "week_lookup",
			Description: "Show the Rust item shop for a specific date with Steam Market change.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "year",
					Description: "Year (e.g. 2025)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "month",
					Description: "Month (1-12)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "day",
					Description: "Day (1-31, the store start date)",
					Required:    true,
				},
			},
		},
		{
			Name:        "item_lookup",
			Description: "Deep-dive a Rust skin across Steam and 3rd-party markets.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "name",
					Description:  "Exact skin name as it appears on SCMM / Steam.",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "store_current_debug",
			Description: "Debug: show raw structure for the current Rust store from SCMM.",
		},
		{
			Name:        "store_list_debug",
			Description: "Debug: list the latest 10 store IDs from SCMM.",
		},
		{
			Name:        "scmm_ping",
			Description: "Debug: check connectivity to SCMM.",
		},
	}
}

// handleInteraction dispatches gateway interactions to the command handlers.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "week_lookup":
			b.handleWeekLookup(s, i)
		case "item_lookup":
			b.handleItemLookup(s, i)
		case "store_current_debug":
			b.handleStoreCurrentDebug(s, i)
		case "store_list_debug":
			b.handleStoreListDebug(s, i)
		case "scmm_ping":
			b.handlePing(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	}
}
