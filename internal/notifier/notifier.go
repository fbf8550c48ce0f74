package notifier

import (
	"context"

	"TrendSentinel/internal/model"
)

// Notifier delivers a dispatched signal to an outbound channel.
// Delivery failures are reported to the caller but must never be
// treated as fatal to the run that produced the signal.
type Notifier interface {
	Notify(ctx context.Context, sig *model.Signal) error
	Name() string
}
