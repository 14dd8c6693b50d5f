package embeds

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Keys SCMM has used for the item list inside a store payload.
var itemListKeys = []string{"items", "store", "skins", "entries"}

// Discord caps embed field values at 1024 chars; keep the JSON sample well
// under that once fenced.
const maxSampleJSON = 900

const maxListBody = 1900

// StoreCurrentDebugEmbed builds a structural preview of the raw
// /api/store/current payload: the top-level keys plus a pretty-printed
// sample of the first item found under any of the known list keys.
func StoreCurrentDebugEmbed(data map[string]any) *discordgo.MessageEmbed {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > 20 {
		keys = keys[:20]
	}
	topKeys := strings.Join(keys, ", ")
	if topKeys == "" {
		topKeys = "(no keys)"
	}

	sampleBlock := "No obvious item list found (keys only)."
	for _, candidate := range itemListKeys {
		list, ok := data[candidate].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		pretty, err := json.MarshalIndent(list[0], "", "  ")
		if err != nil {
			break
		}
		sample := string(pretty)
		if len(sample) > maxSampleJSON {
			sample = sample[:maxSampleJSON] + "\n... (truncated)"
		}
		sampleBlock = fmt.Sprintf("Key: `%s`\n```json\n%s\n```", candidate, sample)
		break
	}

	return &discordgo.MessageEmbed{
		Title:       "🧪 SCMM Store – Current (Debug)",
		Description: "Raw structure preview from `/api/store/current`.",
		Color:       ColorBlurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🧱 Top-level keys", Value: fmt.Sprintf("`%s`", topKeys)},
			{Name: "📦 Sample item (first in list)", Value: sampleBlock},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "SCMM • Store Debug"},
	}
}

// StoreListDebugEmbed builds a newest-first listing of up to ten known store
// instances with their IDs and start timestamps.
func StoreListDebugEmbed(stores []map[string]any) *discordgo.MessageEmbed {
	sorted := make([]map[string]any, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return storeStart(sorted[i]) > storeStart(sorted[j])
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	lines := make([]string, 0, len(sorted))
	for _, store := range sorted {
		name, _ := store["name"].(string)
		if name == "" {
			name, _ = store["label"].(string)
		}
		lines = append(lines, fmt.Sprintf("ID `%v` • start `%v` • %s", store["id"], store["start"], name))
	}

	body := strings.Join(lines, "\n")
	if len(body) > maxListBody {
		body = body[:maxListBody] + "\n... (truncated)"
	}

	return &discordgo.MessageEmbed{
		Title:       "🧾 Store List – Latest 10",
		Description: body,
		Color:       ColorBlurple,
		Footer:      &discordgo.MessageEmbedFooter{Text: "SCMM • Store List Debug"},
	}
}

func storeStart(store map[string]any) string {
	if start, ok := store["start"].(string); ok {
		return start
	}
	return ""
}
