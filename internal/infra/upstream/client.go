package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/infra"
	"restaurant-deals/internal/pkg/clock"
	"restaurant-deals/internal/pkg/config"
	"restaurant-deals/internal/pkg/errs"

	"github.com/codeGROOVE-dev/retry"
)

const (
	maxBodyBytes  = 16 << 20
	maxRetryDelay = 10 * time.Second
)

// Client fetches the restaurant feed over HTTP. Transport errors, 429 and 5xx
// responses are retried with exponential backoff; any other non-200 status and
// any payload problem fail immediately.
type Client struct {
	httpClient *http.Client
	url        string
	attempts   uint
	delay      time.Duration
	clock      clock.Clock
	logger     *slog.Logger
}

func NewClient(cfg config.Config, clk clock.Clock, logger *slog.Logger) *Client {
	attempts := cfg.Upstream.RetryAttempts
	if attempts == 0 {
		attempts = 1 // retry treats 0 as "until the context ends"
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		url:        cfg.Upstream.URL,
		attempts:   attempts,
		delay:      cfg.Upstream.RetryDelay,
		clock:      clk,
		logger:     logger,
	}
}

func (c *Client) Name() string {
	return c.url
}

func (c *Client) FetchSnapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	start := time.Now()

	var payload RestaurantsPayload
	var decodeErr error

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Accept", "application/json")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := resp.Body.Close(); closeErr != nil {
					c.logger.Debug("failed to close response body", "error", closeErr)
				}
			}()

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024)) //nolint:errcheck // body is only for the message
				return errs.Newf("HTTP %d: %s", resp.StatusCode, string(body))
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(errs.Newf("unexpected status HTTP %d", resp.StatusCode))
			}

			body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			if err != nil {
				return err
			}
			if err := json.Unmarshal(body, &payload); err != nil {
				decodeErr = err
				return retry.Unrecoverable(err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(maxRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying upstream fetch",
				"attempt", n+1,
				"url", c.url,
				"error", err,
			)
		}),
	)
	if decodeErr != nil {
		return nil, infra.WrapSourceErr(c.logger, infra.KindDecodeFailure, "decode upstream payload", decodeErr)
	}
	if err != nil {
		return nil, infra.WrapSourceErr(c.logger, infra.KindUpstreamFailure, "fetch "+c.url, err)
	}

	snap, err := ToSnapshot(payload, c.clock.Now())
	if err != nil {
		return nil, infra.WrapSourceErr(c.logger, infra.KindInvalidData, "convert upstream payload", err)
	}

	c.logger.Debug("upstream fetch completed",
		"url", c.url,
		"restaurants", snap.Len(),
		"deals", snap.DealCount(),
		"duration", time.Since(start),
	)
	return snap, nil
}
