package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/killallgit/feedcast/pkg/config"
	apperrors "github.com/killallgit/feedcast/pkg/errors"
)

const feedService = "feed"

// Fetcher obtains feed bytes from an HTTP(S) URL or a local file
type Fetcher struct {
	client        *http.Client
	timeout       time.Duration
	userAgent     string
	maxBytes      int64
	retryAttempts int
	retryDelay    time.Duration
}

var _ FeedFetcher = (*Fetcher)(nil)

// NewFetcher creates a fetcher from feed configuration
func NewFetcher(cfg config.FeedConfig) (*Fetcher, error) {
	if cfg.Timeout <= 0 {
		return nil, apperrors.ConfigError("feed.timeout", "HTTP client must have a timeout configured")
	}

	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		timeout:       cfg.Timeout,
		userAgent:     cfg.UserAgent,
		maxBytes:      cfg.MaxBytes,
		retryAttempts: attempts,
		retryDelay:    cfg.RetryDelay,
	}, nil
}

// Fetch returns the raw feed. Any failure here is fatal to the caller: no
// feed data means nothing to serve.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, apperrors.InvalidInput("feed.url", ErrEmptySource.Error())
	}

	var (
		data []byte
		err  error
	)
	if isRemote(source) {
		data, err = f.fetchRemote(ctx, source)
	} else {
		data, err = f.readFile(source)
	}
	if err != nil {
		if isTimeout(err) {
			timeoutErr := apperrors.TimeoutError("fetch feed", f.timeout.String()).WithDetail("source", source)
			timeoutErr.Cause = err
			return nil, timeoutErr
		}
		return nil, apperrors.ExternalServiceError(feedService, err).WithDetail("source", source)
	}
	return data, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	policy := backoff.NewExponentialBackOff()
	if f.retryDelay > 0 {
		policy.InitialInterval = f.retryDelay
	}
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(f.retryAttempts-1)), ctx)

	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		fetchAttempts.Inc()

		body, err := f.get(ctx, url)
		if err == nil {
			return body, nil
		}
		if apiErr, ok := IsAPIError(err); ok && !apiErr.Retryable() {
			return nil, backoff.Permanent(err)
		}
		if errors.Is(err, ErrFeedTooLarge) || ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	notify := func(err error, wait time.Duration) {
		log.WithFields(log.Fields{
			"url":     url,
			"attempt": attempt,
			"wait":    wait,
			"error":   err,
		}).Warn("Feed fetch failed, retrying")
	}

	return backoff.RetryNotifyWithData(operation, retry, notify)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewAPIError(url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return f.readAll(resp.Body)
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	file, err := os.Open(strings.TrimPrefix(path, "file://"))
	if err != nil {
		return nil, fmt.Errorf("opening feed file: %w", err)
	}
	defer file.Close()

	return f.readAll(file)
}

func (f *Fetcher) readAll(r io.Reader) ([]byte, error) {
	if f.maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading feed: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFeedTooLarge, f.maxBytes)
	}
	return data, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
