// Package event delivers fire-and-forget events to the orchestration
// master.
package event

import "context"

// Bus publishes tagged events. Delivery is fire-and-forget: callers may
// log a returned error but must not treat it as a failed status check.
type Bus interface {
	Fire(ctx context.Context, data any, tag string) error
}

// NopBus discards every event. Used when no event endpoint is configured.
type NopBus struct{}

func (NopBus) Fire(context.Context, any, string) error { return nil }
