// Package alert provides the default Alerter adapter. Advisory messages in
// the browser original were alert() dialogs; here they land in the log where
// an operator (or the admin UI, via log tailing) can see them.
package alert

import (
	"context"
	"log/slog"

	"github.com/twomenstudio/studiopanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Alerter = (*SlogAlerter)(nil)

// SlogAlerter emits user-facing advisory messages as warnings on a
// structured logger.
type SlogAlerter struct {
	logger *slog.Logger
}

// NewSlogAlerter creates a SlogAlerter writing to the given logger.
func NewSlogAlerter(logger *slog.Logger) *SlogAlerter {
	return &SlogAlerter{logger: logger}
}

// Alert logs the message at warning level.
func (a *SlogAlerter) Alert(_ context.Context, message string) {
	a.logger.Warn("user alert", "message", message)
}
