package schedule

import (
	"context"
	"errors"
	"fmt"
)

var ErrMissingIdentity = errors.New("identity is required")

// Service exposes the remote schedule store: read the full denormalized
// mapping of one identity and replace it wholesale with an uploaded one.
// The identity is always passed explicitly, never read from ambient state.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetSchedule loads every stored event of the identity and expands each one
// into the per-minute mapping the widget renders from.
func (s *Service) GetSchedule(ctx context.Context, identity string) (Schedule, error) {
	if identity == "" {
		return nil, ErrMissingIdentity
	}

	stored, err := s.repo.GetEvents(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	mapping := make(Schedule)
	for _, event := range stored {
		minutes := mapping[event.Day]
		if minutes == nil {
			minutes = make(map[int]Event)
			mapping[event.Day] = minutes
		}
		denormalize(minutes, event.Event)
	}
	return mapping, nil
}

// ReplaceSchedule swaps the identity's entire persisted schedule for the
// uploaded mapping. The denormalized minutes are collapsed back to distinct
// events and written as rows; delete and insert happen in one transaction.
func (s *Service) ReplaceSchedule(ctx context.Context, identity string, mapping Schedule) error {
	if identity == "" {
		return ErrMissingIdentity
	}

	err := s.repo.WithTransaction(ctx, func(repo Repository) error {
		if err := repo.DeleteAllEvents(ctx, identity); err != nil {
			return fmt.Errorf("failed to clear previous schedule: %w", err)
		}
		for day, minutes := range mapping {
			for _, event := range distinctEvents(minutes) {
				if _, err := repo.StoreEvent(ctx, identity, day, event); err != nil {
					return fmt.Errorf("failed to store event: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace schedule: %w", err)
	}
	return nil
}

// GetDaySchedule returns the identity's distinct events for a single day,
// ordered by start minute.
func (s *Service) GetDaySchedule(ctx context.Context, identity string, day string) ([]Event, error) {
	if identity == "" {
		return nil, ErrMissingIdentity
	}
	return s.repo.GetDayEvents(ctx, identity, day)
}
