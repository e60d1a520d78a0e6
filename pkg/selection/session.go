package selection

import (
	"errors"

	"github.com/slotcal/slotcal/pkg/schedule"
)

// DefaultColor is applied whenever a draft is saved without a color picked.
const DefaultColor = "#e81416"

// ColorPresets is the palette offered by the edit surface.
var ColorPresets = []string{"#e81416", "#ffa500", "#faeb36", "#79c314", "#487de7", "#4b369d", "#70369d"}

// ErrIncompleteRange is returned by Delete when the session does not carry a
// fully specified minute range.
var ErrIncompleteRange = errors.New("selection range is not fully specified")

// EditSession is the transient draft of one event being created or edited.
// Field setters are unconstrained; validation happens nowhere by design of
// the edit surface.
type EditSession struct {
	Day      string
	Title    string
	Details  string
	Color    string
	VideoRef string

	startMinute *int
	endMinute   *int
}

func newSession(pending PendingSelection, attachment *Attachment) *EditSession {
	s := &EditSession{Day: pending.Day, Color: DefaultColor}
	start, end := pending.StartMinute, pending.EndMinute
	s.startMinute = &start
	s.endMinute = &end
	if attachment != nil {
		s.Title = attachment.Title
		s.VideoRef = attachment.VideoRef
	}
	return s
}

func sessionFromEvent(day string, event schedule.Event) *EditSession {
	s := &EditSession{
		Day:      day,
		Title:    event.Title,
		Details:  event.Details,
		Color:    event.Color,
		VideoRef: event.VideoRef,
	}
	start, end := event.StartMinute, event.EndMinute
	s.startMinute = &start
	s.endMinute = &end
	return s
}

// SetStartTime sets the draft's start bound from an hour/minute pair.
func (s *EditSession) SetStartTime(hour, minute int) {
	total := hour*60 + minute
	s.startMinute = &total
}

// SetEndTime sets the draft's end bound from an hour/minute pair.
func (s *EditSession) SetEndTime(hour, minute int) {
	total := hour*60 + minute
	s.endMinute = &total
}

// Range returns the effective bounds: a missing start defaults to 0, a
// missing end defaults to the start, and a reversed pair is normalized so
// the store always receives a non-decreasing range.
func (s *EditSession) Range() (int, int) {
	start := 0
	if s.startMinute != nil {
		start = *s.startMinute
	}
	end := start
	if s.endMinute != nil {
		end = *s.endMinute
	}
	if end < start {
		start, end = end, start
	}
	return start, end
}

// Event materializes the draft, applying the default color to an empty pick.
func (s *EditSession) Event() schedule.Event {
	start, end := s.Range()
	color := s.Color
	if color == "" {
		color = DefaultColor
	}
	return schedule.Event{
		Title:       s.Title,
		Details:     s.Details,
		Color:       color,
		StartMinute: start,
		EndMinute:   end,
		VideoRef:    s.VideoRef,
	}
}

// Save commits the draft into the store and returns the stored event.
func (s *EditSession) Save(store *schedule.Store) schedule.Event {
	event := s.Event()
	store.Put(s.Day, event)
	return event
}

// Delete removes the draft's range from the store. It requires both bounds,
// i.e. a session opened on an existing event or a closed selection.
func (s *EditSession) Delete(store *schedule.Store) error {
	if s.startMinute == nil || s.endMinute == nil {
		return ErrIncompleteRange
	}
	store.Delete(s.Day, *s.startMinute, *s.endMinute)
	return nil
}
