package schedule

import "sort"

// Event is one scheduled entry occupying a contiguous minute range on a
// single day. StartMinute and EndMinute are inclusive minute indices in
// [0, 1439]. VideoRef is an optional reference to an attached video.
type Event struct {
	Title       string `json:"title"`
	Details     string `json:"details"`
	Color       string `json:"color"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	VideoRef    string `json:"videoRef,omitempty"`
}

// Schedule is the denormalized per-user mapping: day key -> minute index ->
// Event. Every minute an event spans holds a structurally identical copy of
// it, trading memory for O(1) lookup by minute. encoding/json renders the
// integer minute keys as strings, which is exactly the wire shape.
type Schedule map[string]map[int]Event

// Copy returns a deep copy of the schedule.
func (s Schedule) Copy() Schedule {
	out := make(Schedule, len(s))
	for day, minutes := range s {
		dayCopy := make(map[int]Event, len(minutes))
		for minute, event := range minutes {
			dayCopy[minute] = event
		}
		out[day] = dayCopy
	}
	return out
}

// distinctEvents collapses a denormalized day map back into its distinct
// events, ordered by start minute.
func distinctEvents(minutes map[int]Event) []Event {
	seen := make(map[int]Event)
	for _, event := range minutes {
		seen[event.StartMinute] = event
	}
	events := make([]Event, 0, len(seen))
	for _, event := range seen {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartMinute < events[j].StartMinute
	})
	return events
}

// denormalize expands an event into one map entry per minute it spans.
func denormalize(minutes map[int]Event, event Event) {
	for i := event.StartMinute; i <= event.EndMinute; i++ {
		minutes[i] = event
	}
}
