package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slotcal/slotcal/pkg/schedule"
)

// GatewayStub is an in-memory Gateway for tests.
type GatewayStub struct {
	mu       sync.Mutex
	remote   map[string]schedule.Schedule
	pushes   []schedule.Schedule
	fetchErr error
	pushErr  error
}

func NewGatewayStub() *GatewayStub {
	return &GatewayStub{remote: make(map[string]schedule.Schedule)}
}

func (g *GatewayStub) Fetch(ctx context.Context, identity string) (schedule.Schedule, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	mapping, ok := g.remote[identity]
	if !ok {
		return make(schedule.Schedule), nil
	}
	return mapping.Copy(), nil
}

func (g *GatewayStub) Push(ctx context.Context, identity string, mapping schedule.Schedule) <-chan PushResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	results := make(chan PushResult, 1)
	result := PushResult{ID: uuid.New(), Err: g.pushErr}
	if g.pushErr == nil {
		g.remote[identity] = mapping.Copy()
		g.pushes = append(g.pushes, mapping.Copy())
	}
	results <- result
	close(results)
	return results
}

// SetRemote seeds the stub's remote copy for an identity.
func (g *GatewayStub) SetRemote(identity string, mapping schedule.Schedule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.remote[identity] = mapping.Copy()
}

// SetFetchError makes subsequent fetches fail.
func (g *GatewayStub) SetFetchError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetchErr = err
}

// SetPushError makes subsequent pushes fail.
func (g *GatewayStub) SetPushError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pushErr = err
}

// Pushes returns every mapping pushed so far.
func (g *GatewayStub) Pushes() []schedule.Schedule {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]schedule.Schedule, len(g.pushes))
	copy(out, g.pushes)
	return out
}
