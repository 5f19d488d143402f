package driven

import "context"

// Alerter defines the driven port for user-facing advisory messages:
// storage-quota warnings and capacity-cap notices. These are not errors;
// the triggering mutation has already been applied in memory when the
// alert fires.
type Alerter interface {
	Alert(ctx context.Context, message string)
}
