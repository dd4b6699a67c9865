package headers

import (
	"log/slog"

	"github.com/ghettovoice/gomrcp/internal/log"
)

// ViewOptions configures view construction.
// A nil *ViewOptions is valid and uses the defaults.
type ViewOptions struct {
	// Logger receives a warning for every header value that is present but malformed.
	// If nil, nothing is logged.
	Logger *slog.Logger
	// Metrics counts built views and dropped values.
	// If nil, nothing is counted.
	Metrics *Metrics
}

func (o *ViewOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

func (o *ViewOptions) metrics() *Metrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}
