package hostaway

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/observability"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/domain"
)

// Client talks to the Hostaway reviews endpoint. Any failure along the way
// (missing credentials, transport error, non-2xx, empty sandbox result)
// degrades to the built-in sample dataset instead of propagating: the account
// is sandboxed and the dashboard must stay usable without live data.
type Client struct {
	base      string
	accountID string
	hc        *http.Client
	key       string
	rl        *rate.Limiter
}

func New(base, accountID, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	if accountID == "" || key == "" {
		log.Warn().Msg("hostaway credentials missing; GetReviews will serve sample data")
	}
	return &Client{
		base:      strings.TrimRight(base, "/"),
		accountID: accountID,
		hc:        &http.Client{Timeout: 20 * time.Second},
		key:       key,
		rl:        rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type apiResponse struct {
	Status string                  `json:"status"`
	Result []domain.HostawayReview `json:"result"`
}

// GetReviews returns all account reviews, newest-unspecified provider order
// preserved. It never returns an error together with an empty slice: the
// documented degrade path is the sample dataset.
func (c *Client) GetReviews(ctx context.Context) ([]domain.HostawayReview, error) {
	if c.accountID == "" || c.key == "" {
		return SampleReviews(), nil
	}

	url := fmt.Sprintf("%s/reviews?accountId=%s", c.base, c.accountID)
	var out apiResponse
	if err := c.get(ctx, url, &out); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn().Err(err).Msg("hostaway request failed; falling back to sample reviews")
		return SampleReviews(), nil
	}
	if out.Status != "success" || len(out.Result) == 0 {
		// expected for the sandbox account, which holds no reviews
		log.Info().Str("status", out.Status).Msg("hostaway returned no reviews; using sample dataset")
		return SampleReviews(), nil
	}
	return out.Result, nil
}

// get performs a GET with client-side rate limiting and bounded retries on
// 429/5xx, decoding JSON into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.key)
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}
		observability.ObserveExternal("hostaway", "/reviews", resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("hostaway: remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("hostaway: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% jitter from crypto/rand, safe under concurrent use.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
