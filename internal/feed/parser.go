package feed

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/samber/mo"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTitleFormat is the label given to every episode, filled with the running title counter
	DefaultTitleFormat = "episode #%d"

	// DefaultMaxConsecutiveErrors bounds how long the parser keeps polling a
	// source whose Next fails without making progress
	DefaultMaxConsecutiveErrors = 64
)

const (
	elementItem        = "item"
	elementTitle       = "title"
	elementDescription = "description"
	elementEnclosure   = "enclosure"
	attrURL            = "url"
)

// parseState tracks which text leaf the next character data belongs to
type parseState int

const (
	stateNeutral parseState = iota
	stateAwaitingTitleText
	stateAwaitingDescriptionText
)

func (s parseState) String() string {
	switch s {
	case stateNeutral:
		return "neutral"
	case stateAwaitingTitleText:
		return "awaiting-title"
	case stateAwaitingDescriptionText:
		return "awaiting-description"
	default:
		return fmt.Sprintf("parseState(%d)", int(s))
	}
}

// Stats summarizes the last parse
type Stats struct {
	Events    int
	Malformed int
	Episodes  int
}

// Parser converts a stream of structural events into episodes. A Parser is
// not safe for concurrent use; each Parse call starts from a clean state.
type Parser struct {
	titleFormat          string
	maxConsecutiveErrors int
	logger               log.FieldLogger

	// per-parse state
	state   parseState
	counter int
	working Episode
	output  []Episode
	stats   Stats
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithTitleFormat sets the fmt pattern used to synthesize titles
func WithTitleFormat(format string) ParserOption {
	return func(p *Parser) {
		if format != "" {
			p.titleFormat = format
		}
	}
}

// WithMaxConsecutiveErrors sets how many source errors in a row end the scan
func WithMaxConsecutiveErrors(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.maxConsecutiveErrors = n
		}
	}
}

// WithLogger sets the logger used for skipped events
func WithLogger(logger log.FieldLogger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a parser with optional configuration
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		titleFormat:          DefaultTitleFormat,
		maxConsecutiveErrors: DefaultMaxConsecutiveErrors,
		logger:               log.StandardLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse consumes src to exhaustion and returns the episodes in the order their
// item boundaries were seen. It never fails: undecodable events are skipped.
func (p *Parser) Parse(src EventSource) []Episode {
	p.reset()

	consecutiveErrors := 0
	for {
		ev, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			consecutiveErrors++
			p.handle(Malformed{Err: err})
			if consecutiveErrors >= p.maxConsecutiveErrors {
				p.logger.WithField("errors", consecutiveErrors).Warn("Event source keeps failing, stopping scan")
				break
			}
			continue
		}
		consecutiveErrors = 0
		p.handle(ev)
	}

	result := p.output
	p.output = nil
	p.stats.Episodes = len(result)
	if result == nil {
		result = []Episode{}
	}
	return result
}

// ParseBytes parses an in-memory XML document
func (p *Parser) ParseBytes(data []byte) []Episode {
	return p.Parse(NewXMLEventSource(bytes.NewReader(data)))
}

// Stats returns counters for the most recent Parse
func (p *Parser) Stats() Stats {
	return p.stats
}

func (p *Parser) reset() {
	p.state = stateNeutral
	p.counter = 1
	p.working = Episode{}
	p.output = nil
	p.stats = Stats{}
}

func (p *Parser) handle(ev Event) {
	p.stats.Events++

	switch e := ev.(type) {
	case StartElement:
		switch e.Name {
		case elementTitle:
			p.state = stateAwaitingTitleText
		case elementDescription:
			p.state = stateAwaitingDescriptionText
		case elementEnclosure:
			if url, ok := e.Attr(attrURL); ok {
				p.working.AudioURL = mo.Some(url)
			}
		}
	case CharData:
		switch p.state {
		case stateAwaitingTitleText:
			p.working.Title = fmt.Sprintf(p.titleFormat, p.counter)
			p.counter++
			p.state = stateNeutral
		case stateAwaitingDescriptionText:
			p.working.Description = e.Text
			p.state = stateNeutral
		}
	case EndElement:
		if e.Name == elementItem {
			p.output = append(p.output, p.working)
			p.working = Episode{}
			p.state = stateNeutral
		}
	case Malformed:
		p.stats.Malformed++
		p.logger.WithFields(log.Fields{
			"state": p.state.String(),
			"error": e.Err,
		}).Debug("Skipping malformed feed event")
	default:
		// whitespace and anything else leaves the machine untouched
	}
}
