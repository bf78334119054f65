package feed

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// XMLEventSource adapts an encoding/xml decoder to an EventSource.
//
// The decoder runs in non-strict mode so unknown HTML entities common in
// hand-written feeds do not stop the scan. HTML auto-closing stays off: it
// treats <link> as a void element, and every RSS channel carries one. A decoder
// error is reported once as a Malformed event; the tokenizer cannot resume
// after it, so the source is exhausted from then on.
type XMLEventSource struct {
	decoder *xml.Decoder
	done    bool
}

// NewXMLEventSource creates an event source reading XML from r
func NewXMLEventSource(r io.Reader) *XMLEventSource {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.Entity = xml.HTMLEntity
	d.CharsetReader = charset.NewReaderLabel

	return &XMLEventSource{decoder: d}
}

// Next returns the next structural event or io.EOF
func (s *XMLEventSource) Next() (Event, error) {
	for {
		if s.done {
			return nil, io.EOF
		}

		tok, err := s.decoder.Token()
		if err != nil {
			s.done = true
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return Malformed{Err: err}, nil
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			return StartElement{Name: t.Name.Local, Attrs: attrs}, nil
		case xml.EndElement:
			return EndElement{Name: t.Name.Local}, nil
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) == "" {
				return Whitespace{}, nil
			}
			return CharData{Text: text}, nil
		default:
			// comments, processing instructions and directives carry nothing we read
			continue
		}
	}
}
