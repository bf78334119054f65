package feed

import "io"

// Event is a structural XML event. The set of implementations is closed.
type Event interface {
	event()
}

// Attr is a single element attribute, keyed by its local name
type Attr struct {
	Name  string
	Value string
}

// StartElement opens an element
type StartElement struct {
	Name  string
	Attrs []Attr
}

// EndElement closes an element
type EndElement struct {
	Name string
}

// CharData carries decoded text content, plain or CDATA
type CharData struct {
	Text string
}

// Whitespace is text content made only of whitespace
type Whitespace struct{}

// Malformed is a fragment the tokenizer could not decode
type Malformed struct {
	Err error
}

func (StartElement) event() {}
func (EndElement) event()   {}
func (CharData) event()     {}
func (Whitespace) event()   {}
func (Malformed) event()    {}

// Attr returns the value of the named attribute
func (s StartElement) Attr(name string) (string, bool) {
	for _, a := range s.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// EventSource yields events in document order. Next returns io.EOF once the
// stream is exhausted.
type EventSource interface {
	Next() (Event, error)
}

// SliceSource replays a fixed list of events
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource creates a source over the given events
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

func (s *SliceSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}
