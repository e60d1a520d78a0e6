package schedule

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type storedRow struct {
	identity string
	day      string
	event    Event
}

// RepositoryStub is an in-memory Repository used by service and handler tests.
type RepositoryStub struct {
	mu             sync.RWMutex
	rows           map[string]storedRow // uid -> row
	inTransaction  bool
	transactionErr error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{rows: make(map[string]storedRow)}
}

func (r *RepositoryStub) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	r.mu.Lock()
	// Keep a copy of the current state for rollback
	original := make(map[string]storedRow, len(r.rows))
	for k, v := range r.rows {
		original[k] = v
	}
	r.inTransaction = true
	r.mu.Unlock()

	err := fn(r)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inTransaction = false

	if err != nil || r.transactionErr != nil {
		r.rows = original
		if err != nil {
			return err
		}
		return r.transactionErr
	}
	return nil
}

func (r *RepositoryStub) GetEvents(ctx context.Context, identity string) ([]StoredEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []StoredEvent
	for _, row := range r.rows {
		if row.identity == identity {
			result = append(result, StoredEvent{Day: row.day, Event: row.event})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].StartMinute < result[j].StartMinute
	})
	return result, nil
}

func (r *RepositoryStub) GetDayEvents(ctx context.Context, identity string, day string) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Event
	for _, row := range r.rows {
		if row.identity == identity && row.day == day {
			result = append(result, row.event)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartMinute < result[j].StartMinute
	})
	return result, nil
}

func (r *RepositoryStub) StoreEvent(ctx context.Context, identity string, day string, event Event) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	uid := uuid.New()
	r.rows[uid.String()] = storedRow{identity: identity, day: day, event: event}
	return uid, nil
}

func (r *RepositoryStub) DeleteAllEvents(ctx context.Context, identity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for uid, row := range r.rows {
		if row.identity == identity {
			delete(r.rows, uid)
		}
	}
	return nil
}

// SetTransactionError makes the next transaction roll back (for tests).
func (r *RepositoryStub) SetTransactionError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactionErr = err
}
