package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/feedcast/pkg/config"
	apperrors "github.com/killallgit/feedcast/pkg/errors"
)

const sampleFeed = `<rss><channel><item><title>A</title><description>Desc A</description><enclosure url="http://a.mp3"/></item></channel></rss>`

func testFeedConfig() config.FeedConfig {
	return config.FeedConfig{
		Timeout:       5 * time.Second,
		UserAgent:     "feedcast-test",
		MaxBytes:      1 << 20,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}
}

func TestNewFetcher_RequiresTimeout(t *testing.T) {
	cfg := testFeedConfig()
	cfg.Timeout = 0

	fetcher, err := NewFetcher(cfg)

	assert.Nil(t, fetcher)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
}

func TestFetcher_FetchRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/feed", r.URL.Path)
		assert.Equal(t, "feedcast-test", r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "application/rss+xml")

		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	data, err := fetcher.Fetch(context.Background(), server.URL+"/feed")

	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(data))
}

func TestFetcher_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	data, err := fetcher.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(data))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetcher_GivesUpAfterRetryAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeExternalService))
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetcher_ClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "no such feed", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "no such feed", apiErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetcher_RejectsOversizedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	cfg := testFeedConfig()
	cfg.MaxBytes = 16
	fetcher, err := NewFetcher(cfg)
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, ErrFeedTooLarge)
}

func TestFetcher_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, server.URL)

	assert.Error(t, err)
}

func TestFetcher_TimeoutIsReportedAsTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	cfg := testFeedConfig()
	cfg.Timeout = 50 * time.Millisecond
	cfg.RetryAttempts = 1

	fetcher, err := NewFetcher(cfg)
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeAPITimeout, apperrors.GetCode(err))
	assert.Equal(t, http.StatusGatewayTimeout, apperrors.GetHTTPCode(err))
}

func TestFetcher_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0o644))

	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	tests := []struct {
		name   string
		source string
	}{
		{name: "plain path", source: path},
		{name: "file scheme", source: "file://" + path},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fetcher.Fetch(context.Background(), tt.source)
			require.NoError(t, err)
			assert.Equal(t, sampleFeed, string(data))
		})
	}
}

func TestFetcher_Errors(t *testing.T) {
	fetcher, err := NewFetcher(testFeedConfig())
	require.NoError(t, err)

	tests := []struct {
		name string
		src  string
		code apperrors.ErrorCode
	}{
		{name: "empty source", src: "   ", code: apperrors.ErrCodeInvalidInput},
		{name: "missing file", src: filepath.Join(t.TempDir(), "missing.xml"), code: apperrors.ErrCodeExternalService},
		{name: "unreachable host", src: "http://127.0.0.1:1/feed", code: apperrors.ErrCodeExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fetcher.Fetch(context.Background(), tt.src)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
		})
	}
}
