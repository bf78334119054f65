package feeds

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/killallgit/feedcast/internal/feed"
)

// Service loads a feed and turns it into a catalog
type Service struct {
	fetcher       FeedFetcher
	parserOptions []feed.ParserOption
	logger        log.FieldLogger
}

var _ FeedLoader = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithParserOptions sets the options every parse runs with
func WithParserOptions(opts ...feed.ParserOption) ServiceOption {
	return func(s *Service) {
		s.parserOptions = append(s.parserOptions, opts...)
	}
}

// WithLogger sets the service logger
func WithLogger(logger log.FieldLogger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new feed service
func NewService(fetcher FeedFetcher, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher: fetcher,
		logger:  log.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches source and parses it. Only a failure to obtain the feed is
// returned; decode problems inside the feed are skipped by the parser.
func (s *Service) Load(ctx context.Context, source string) (*feed.Catalog, error) {
	logger := s.logger.WithField("source", source)

	fetchStart := time.Now()
	data, err := s.fetcher.Fetch(ctx, source)
	fetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		fetchFailures.Inc()
		logger.WithError(err).Error("Failed to obtain feed")
		return nil, err
	}

	parser := feed.NewParser(append([]feed.ParserOption{feed.WithLogger(logger)}, s.parserOptions...)...)

	parseStart := time.Now()
	episodes := parser.ParseBytes(data)
	elapsed := time.Since(parseStart)
	parseDuration.Observe(elapsed.Seconds())

	stats := parser.Stats()
	malformedEvents.Add(float64(stats.Malformed))
	episodesLoaded.Set(float64(stats.Episodes))

	entry := logger.WithFields(log.Fields{
		"bytes":     len(data),
		"events":    stats.Events,
		"episodes":  stats.Episodes,
		"malformed": stats.Malformed,
		"duration":  elapsed,
	})
	if stats.Malformed > 0 {
		entry.Warn("Feed parsed with skipped events")
	} else {
		entry.Info("Feed parsed")
	}

	return feed.NewCatalog(episodes), nil
}
