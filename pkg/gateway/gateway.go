package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/slotcal/slotcal/pkg/schedule"
)

// PushResult reports the outcome of one asynchronous persistence push. The ID
// correlates the result with log lines of the originating push.
type PushResult struct {
	ID  uuid.UUID
	Err error
}

// Gateway is the remote schedule store as seen from the widget: fetch the
// full mapping for an identity, or push a replacement of it. Push is
// asynchronous; the returned channel delivers exactly one result and is
// buffered, so an abandoned consumer never blocks the push goroutine.
type Gateway interface {
	Fetch(ctx context.Context, identity string) (schedule.Schedule, error)
	Push(ctx context.Context, identity string, mapping schedule.Schedule) <-chan PushResult
}
