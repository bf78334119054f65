// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Options controls logger setup
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// Setup configures the standard logrus logger. An unknown level is an error
// and leaves the logger at info.
func Setup(opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if opts.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if opts.Level == "" {
		opts.Level = "info"
	}
	lvl, err := log.ParseLevel(opts.Level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		return fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}
	log.SetLevel(lvl)

	return nil
}
