package notification

import (
	"context"
	"fmt"

	"github.com/slotcal/slotcal/internal/utils"
	"github.com/slotcal/slotcal/pkg/schedule"
	"github.com/slotcal/slotcal/pkg/timegrid"
)

// DayScheduleReader is the slice of the schedule service the banner needs.
type DayScheduleReader interface {
	GetDaySchedule(ctx context.Context, identity string, day string) ([]schedule.Event, error)
}

type Service struct {
	schedules DayScheduleReader
	clock     utils.Clock
}

func NewService(schedules DayScheduleReader, clock utils.Clock) *Service {
	return &Service{schedules: schedules, clock: clock}
}

// TodaySummary reports whether the identity has events today and, if so, the
// first one of the day.
func (s *Service) TodaySummary(ctx context.Context, identity string) (Summary, error) {
	today := timegrid.DayKey(s.clock.Now())

	events, err := s.schedules.GetDaySchedule(ctx, identity, today)
	if err != nil {
		return Summary{Message: MsgFetchError}, fmt.Errorf("failed to load today's schedule: %w", err)
	}

	if len(events) == 0 {
		return Summary{Message: MsgNoEventsToday}, nil
	}
	first := events[0]
	return Summary{HasEvents: true, Message: MsgEventsToday, First: &first}, nil
}
