package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
	"github.com/jsamuelsen11/go-business-service/internal/platform/logging"
)

// jitter is the randomization factor applied to every backoff delay (±25%).
const jitter = 0.25

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

func (p retryPolicy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxInterval = p.maxInterval
	b.Multiplier = p.multiplier
	b.RandomizationFactor = jitter
	return b
}

// attemptsFor returns how many times a request with method may be sent.
func (p retryPolicy) attemptsFor(method string) int {
	if !isIdempotent(method) {
		return 1
	}
	return p.maxAttempts
}

// send performs req with exponential backoff. The body is buffered once and
// replayed on every attempt. Responses from failed attempts are drained so
// their connections can be reused; the final one is returned untouched.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.retry.attemptsFor(req.Method)
	attempt := 0
	var previous *http.Response

	operation := func() (*http.Response, error) {
		attempt++
		if previous != nil {
			discard(previous)
			previous = nil
		}
		rewind(req, body)

		resp, err := c.transport.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}
		previous = resp
		return resp, c.statusError(resp)
	}

	notify := func(err error, wait time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", attempts),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.retry.backOff()),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)
}

// statusError describes a retryable status. A Retry-After header given in
// seconds replaces the next backoff delay, capped at the policy's maximum.
func (c *Client) statusError(resp *http.Response) error {
	base := fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)

	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return base
	}
	wait := min(time.Duration(secs)*time.Second, c.retry.maxInterval)
	return fmt.Errorf("%w: %w", base, &backoff.RetryAfterError{Duration: wait})
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error may succeed on another
// attempt. Cancellation and expired deadlines never do.
func isRetryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// isRetryableStatus reports 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
