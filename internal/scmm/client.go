// Package scmm provides a client for the rust.scmm.app marketplace-aggregation
// API. It fetches store snapshots and per-item detail documents, normalizes
// SCMM's loosely-typed JSON into the domain models, and derives the unified
// market breakdown and marketplace URLs used by the Discord embeds.
//
// Every call is independent: no retries, no caching, no rate limiting. All
// remote failures surface as a single *RemoteError carrying a human-readable
// message.
package scmm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/spoofgg/rust-scmm-bot/internal/logger"
	"github.com/spoofgg/rust-scmm-bot/internal/models"
)

// DefaultBaseURL is the production SCMM instance for Rust.
const DefaultBaseURL = "https://rust.scmm.app"

// RemoteError is the single error kind for all remote-data failures: network
// errors, non-2xx statuses, and malformed bodies. Callers that need to
// distinguish "not found" from real failures do so by message substring at
// the presentation boundary; there is no typed taxonomy beyond this.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func remoteErrorf(format string, args ...any) *RemoteError {
	return &RemoteError{Message: fmt.Sprintf(format, args...)}
}

// Client provides access to the SCMM API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a new SCMM client. baseURL defaults to DefaultBaseURL
// when empty.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

func (c *Client) apiURL(path string) string {
	return c.baseURL + "/api" + path
}

// Ping performs a lightweight connectivity check against SCMM's docs page.
// It returns a human-readable status line on success.
func (c *Client) Ping(ctx context.Context) (string, error) {
	pingURL := c.baseURL + "/docs/index.html"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pingURL, nil)
	if err != nil {
		return "", remoteErrorf("unexpected error pinging SCMM: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			logger.Warn("SCMM ping timed out: %v", err)
			return "", &RemoteError{Message: "SCMM timed out while responding. The bot is fine; SCMM is just slow or unreachable right now."}
		}
		logger.Warn("Network error pinging SCMM: %v", err)
		return "", remoteErrorf("network error talking to SCMM: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("SCMM ping returned HTTP %d", resp.StatusCode)
		return "", remoteErrorf("SCMM responded with HTTP %d for %s", resp.StatusCode, pingURL)
	}

	body, _ := io.ReadAll(resp.Body)
	return fmt.Sprintf("OK — HTTP %d, docs payload size ≈ %d bytes.", resp.StatusCode, len(body)), nil
}

// getJSON performs an HTTP GET and decodes the JSON body into an untyped
// value. All failure modes map to *RemoteError.
func (c *Client) getJSON(ctx context.Context, requestURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, remoteErrorf("unexpected error calling SCMM: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Network error calling %s: %v", requestURL, err)
		return nil, remoteErrorf("network error talking to SCMM: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("SCMM returned HTTP %d for %s", resp.StatusCode, requestURL)
		return nil, remoteErrorf("SCMM responded with HTTP %d for %s", resp.StatusCode, requestURL)
	}

	var data any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Warn("Failed to decode JSON from %s: %v", requestURL, err)
		return nil, &RemoteError{Message: "SCMM returned invalid JSON"}
	}
	return data, nil
}

// FetchStoreCurrentRaw fetches the current Rust item store as a raw JSON
// object. A non-object root is wrapped under a synthetic "_root" key so
// callers can always treat the result as an object.
func (c *Client) FetchStoreCurrentRaw(ctx context.Context) (map[string]any, error) {
	data, err := c.getJSON(ctx, c.apiURL("/store/current"))
	if err != nil {
		return nil, err
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return map[string]any{"_root": data}, nil
	}
	return obj, nil
}

// FetchStoreCurrentItems returns the current store as normalized StoreItems.
// An absent or misshapen item list yields an empty slice, not an error.
func (c *Client) FetchStoreCurrentItems(ctx context.Context) ([]models.StoreItem, error) {
	data, err := c.FetchStoreCurrentRaw(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeItemList(data["items"]), nil
}

// FetchStoreList lists all known store instances from /api/store. SCMM has
// returned both a bare array and an object with an "items" array here; any
// other shape yields an empty slice.
func (c *Client) FetchStoreList(ctx context.Context) ([]map[string]any, error) {
	data, err := c.getJSON(ctx, c.apiURL("/store"))
	if err != nil {
		return nil, err
	}

	var raw []any
	switch v := data.(type) {
	case []any:
		raw = v
	case map[string]any:
		raw, _ = v["items"].([]any)
	}

	stores := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if store, ok := entry.(map[string]any); ok {
			stores = append(stores, store)
		}
	}
	return stores, nil
}

// FetchStoreItemsByID fetches normalized items for a specific historical
// store ID, e.g. "2025-11-13-2054".
func (c *Client) FetchStoreItemsByID(ctx context.Context, storeID string) ([]models.StoreItem, error) {
	data, err := c.getJSON(ctx, c.apiURL("/store/"+url.PathEscape(storeID)))
	if err != nil {
		return nil, err
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, nil
	}
	return normalizeItemList(obj["items"]), nil
}

// FetchStoreItemsForDate returns items for the store whose start timestamp
// falls on the given UTC date, along with the chosen store's ID.
//
// SCMM store entries carry ISO-8601 start timestamps like
// "2025-11-06T18:18:07.818429+00:00"; matching is on the YYYY-MM-DD prefix.
// When several stores start the same day, the lexicographically greatest full
// timestamp wins, which for ISO-8601 strings is also the chronologically
// latest. No matching store yields (nil, "") with no error.
func (c *Client) FetchStoreItemsForDate(ctx context.Context, target time.Time) ([]models.StoreItem, string, error) {
	stores, err := c.FetchStoreList(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(stores) == 0 {
		return nil, "", nil
	}

	targetStr := target.Format("2006-01-02")

	var matches []map[string]any
	for _, store := range stores {
		start, ok := store["start"].(string)
		if !ok {
			continue
		}
		if datePart, _, _ := strings.Cut(start, "T"); datePart == targetStr {
			matches = append(matches, store)
		}
	}
	if len(matches) == 0 {
		return nil, "", nil
	}

	sort.Slice(matches, func(i, j int) bool {
		si, _ := matches[i]["start"].(string)
		sj, _ := matches[j]["start"].(string)
		return si < sj
	})
	chosen := matches[len(matches)-1]

	storeID := stringify(chosen["id"])
	if storeID == "" {
		return nil, "", nil
	}

	items, err := c.FetchStoreItemsByID(ctx, storeID)
	if err != nil {
		return nil, "", err
	}
	return items, storeID, nil
}

// FetchItemDetails fetches the full detail document for a store item using
// /api/item/{name}. This powers supply, subscribers, votes, favourites,
// views, and the per-venue price lists.
func (c *Client) FetchItemDetails(ctx context.Context, item models.StoreItem) (models.ItemDetails, error) {
	if item.Name == "" {
		return nil, &RemoteError{Message: "item has no name for detail lookup"}
	}
	data, err := c.getJSON(ctx, c.apiURL("/item/"+url.PathEscape(item.Name)))
	if err != nil {
		return nil, err
	}
	details, ok := data.(map[string]any)
	if !ok {
		return nil, &RemoteError{Message: "SCMM item details response was not an object"}
	}
	return models.ItemDetails(details), nil
}

// FetchItemDetailsByName fetches item details for an arbitrary skin name.
// An empty or whitespace-only name fails before any network call. A remote
// 404 maps to a "no item found" message so the presentation layer can show a
// friendlier card than for a real failure.
func (c *Client) FetchItemDetailsByName(ctx context.Context, name string) (models.ItemDetails, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return nil, &RemoteError{Message: "item name is required"}
	}

	data, err := c.getJSON(ctx, c.apiURL("/item/"+url.PathEscape(clean)))
	if err != nil {
		if strings.Contains(err.Error(), "HTTP 404") {
			return nil, remoteErrorf("no item found on SCMM matching %q. Check the spelling or try a different name.", clean)
		}
		return nil, err
	}

	details, ok := data.(map[string]any)
	if !ok {
		return nil, &RemoteError{Message: "SCMM item details response was not an object"}
	}
	return models.ItemDetails(details), nil
}

// stringify renders a raw JSON scalar as the string SCMM would have used for
// it; store IDs have appeared both as strings and as numbers.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
