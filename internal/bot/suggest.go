package bot

import (
	"strings"
	"unicode"

	"github.com/bwmarrin/discordgo"

	"github.com/spoofgg/rust-scmm-bot/internal/logger"
)

// Autocomplete limits imposed by Discord.
const (
	minQueryLen   = 2
	maxChoices    = 5
	maxChoiceName = 100
)

// NameSuggestions builds autocomplete choices for the item_lookup name
// option. It never performs network I/O: autocomplete responses must land
// within three seconds, and calling SCMM from here is how you farm
// "Unknown interaction" errors. The suggestions are just case variants of
// what the user is typing.
func NameSuggestions(current string) []*discordgo.ApplicationCommandOptionChoice {
	query := strings.TrimSpace(current)
	if len(query) < minQueryLen {
		return nil
	}

	variants := []string{query, titleCase(query), strings.ToLower(query)}

	seen := make(map[string]bool, len(variants))
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, value := range variants {
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true

		name := value
		if runes := []rune(name); len(runes) > maxChoiceName {
			name = string(runes[:maxChoiceName])
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: value,
		})
		if len(choices) >= maxChoices {
			break
		}
	}
	return choices
}

// handleAutocomplete answers autocomplete queries for /item_lookup.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "item_lookup" {
		return
	}

	var current string
	for _, opt := range data.Options {
		if opt.Name == "name" && opt.Focused {
			current = opt.StringValue()
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: NameSuggestions(current),
		},
	})
	if err != nil {
		logger.Warn("item_lookup autocomplete: failed to respond: %v", err)
	}
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, like Python's str.title for ASCII item names.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
