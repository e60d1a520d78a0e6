package schedule

// Store is the in-memory schedule of one user, held by the widget for the
// lifetime of its view. All mutations happen synchronously on the single
// interaction goroutine, so the Store carries no locking; anything handed to
// another goroutine must go through Snapshot.
type Store struct {
	days Schedule
}

func NewStore() *Store {
	return &Store{days: make(Schedule)}
}

// Get returns the event covering the given minute of a day, if any.
func (s *Store) Get(day string, minute int) (Event, bool) {
	event, ok := s.days[day][minute]
	return event, ok
}

// Put writes the event into every minute of its [StartMinute, EndMinute]
// range, inclusive. Any other event with minutes inside that range is removed
// entirely first, so a partial overlap cannot leave orphaned stale minutes
// behind. The caller is responsible for StartMinute <= EndMinute.
func (s *Store) Put(day string, event Event) {
	minutes := s.days[day]
	if minutes == nil {
		minutes = make(map[int]Event)
		s.days[day] = minutes
	}

	for i := event.StartMinute; i <= event.EndMinute; i++ {
		overlapped, ok := minutes[i]
		if !ok {
			continue
		}
		for j := overlapped.StartMinute; j <= overlapped.EndMinute; j++ {
			delete(minutes, j)
		}
	}

	denormalize(minutes, event)
}

// Delete removes every minute in [start, end] for the day and drops the day
// key entirely if nothing remains.
func (s *Store) Delete(day string, start, end int) {
	minutes, ok := s.days[day]
	if !ok {
		return
	}
	for i := start; i <= end; i++ {
		delete(minutes, i)
	}
	if len(minutes) == 0 {
		delete(s.days, day)
	}
}

// ReplaceAll swaps the whole schedule for a new one, e.g. after a remote
// fetch. The previous content is discarded, not merged.
func (s *Store) ReplaceAll(newSchedule Schedule) {
	if newSchedule == nil {
		newSchedule = make(Schedule)
	}
	s.days = newSchedule
}

// HasDay reports whether any minute of the day is scheduled.
func (s *Store) HasDay(day string) bool {
	return len(s.days[day]) > 0
}

// EventsForDay returns the day's distinct events ordered by start minute.
func (s *Store) EventsForDay(day string) []Event {
	return distinctEvents(s.days[day])
}

// Snapshot returns a deep copy of the schedule, safe to hand to the
// persistence gateway or the cache writer.
func (s *Store) Snapshot() Schedule {
	return s.days.Copy()
}
