package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/observability"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

// Client talks to the Google Places text-search and details endpoints.
// Successful responses are cached for the configured TTL (default 24h) to
// keep call volume and cost down; the cache key is the resolved request, so
// identical lookups within the window never hit the network.
type Client struct {
	base  string
	key   string
	hc    *http.Client
	rl    *rate.Limiter
	cache domain.Cache
	ttl   time.Duration
}

func New(base, key string, rps int, cache domain.Cache, ttl time.Duration) *Client {
	if rps <= 0 {
		rps = 10
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		key:   key,
		hc:    &http.Client{Timeout: 15 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
		cache: cache,
		ttl:   ttl,
	}
}

type findResponse struct {
	Status     string              `json:"status"`
	Candidates []domain.PlaceMatch `json:"candidates"`
}

type detailsResponse struct {
	Status string               `json:"status"`
	Result *domain.PlaceDetails `json:"result"`
}

// FindPlace resolves a property to a place id, trying query variants in order
// until one produces a candidate. Returns (nil, nil) when every variant comes
// back empty. Quota/denied/invalid-request conditions abort immediately:
// walking the remaining variants would only burn more quota.
func (c *Client) FindPlace(ctx context.Context, name, address string) (*domain.PlaceMatch, error) {
	var queries []string
	if address != "" {
		queries = append(queries, name+" "+address)
	}
	queries = append(queries, name)
	if strings.Contains(name, "B ") {
		// property codes like "2B N1 A" match better with a venue type appended
		queries = append(queries, name+" apartment London", name+" hotel London")
	}

	var lastErr error
	for _, q := range queries {
		match, err := c.findOnce(ctx, q)
		if err != nil {
			if isClassified(err) || ctx.Err() != nil {
				return nil, err
			}
			log.Warn().Err(err).Str("query", q).Msg("places text search failed; trying next variant")
			lastErr = err
			continue
		}
		if match != nil {
			return match, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

func (c *Client) findOnce(ctx context.Context, query string) (*domain.PlaceMatch, error) {
	key := "places:find:" + query
	var cached findResponse
	if ok, _ := c.cache.Get(ctx, key, &cached); ok {
		return firstCandidate(cached, query), nil
	}

	u := fmt.Sprintf("%s/findplacefromtext/json?input=%s&inputtype=textquery&fields=place_id,name,formatted_address&key=%s",
		c.base, url.QueryEscape(query), url.QueryEscape(c.key))

	var out findResponse
	if err := c.get(ctx, u, "/findplacefromtext", &out); err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, out, int(c.ttl.Seconds()))
	return firstCandidate(out, query), nil
}

func firstCandidate(resp findResponse, query string) *domain.PlaceMatch {
	if resp.Status != "OK" || len(resp.Candidates) == 0 {
		return nil
	}
	m := resp.Candidates[0]
	if m.Name == "" {
		m.Name = query
	}
	return &m
}

// GetPlaceDetails fetches the review-bearing slice of a place. A place that
// no longer resolves is (nil, nil), not an error.
func (c *Client) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	key := "places:details:" + placeID
	var cached detailsResponse
	if ok, _ := c.cache.Get(ctx, key, &cached); ok {
		return cached.Result, nil
	}

	u := fmt.Sprintf("%s/details/json?place_id=%s&fields=place_id,name,rating,reviews,user_ratings_total&key=%s",
		c.base, url.QueryEscape(placeID), url.QueryEscape(c.key))

	var out detailsResponse
	if err := c.get(ctx, u, "/details", &out); err != nil {
		return nil, err
	}
	if out.Status != "OK" || out.Result == nil {
		return nil, nil
	}
	_ = c.cache.Set(ctx, key, out, int(c.ttl.Seconds()))
	return out.Result, nil
}

// get performs one rate-limited GET and maps both HTTP and body-level error
// statuses onto the domain taxonomy. The response body must carry a Status
// field; out is decoded in place.
func (c *Client) get(ctx context.Context, rawURL, endpoint string, out interface{ status() string }) error {
	if c.key == "" {
		return domain.ErrNotConfigured
	}
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("places", endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.ErrQuotaExceeded
	case resp.StatusCode == http.StatusForbidden:
		return domain.ErrAccessDenied
	case resp.StatusCode != http.StatusOK:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("places: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places: decode response: %w", err)
	}

	// 200 responses can still carry an API-level error status in the body.
	switch out.status() {
	case "OVER_QUERY_LIMIT":
		return domain.ErrQuotaExceeded
	case "REQUEST_DENIED":
		return domain.ErrAccessDenied
	case "INVALID_REQUEST":
		return domain.ErrInvalidRequest
	}
	return nil
}

func (r *findResponse) status() string    { return r.Status }
func (r *detailsResponse) status() string { return r.Status }

func isClassified(err error) bool {
	return errors.Is(err, domain.ErrNotConfigured) ||
		errors.Is(err, domain.ErrQuotaExceeded) ||
		errors.Is(err, domain.ErrAccessDenied) ||
		errors.Is(err, domain.ErrInvalidRequest)
}
