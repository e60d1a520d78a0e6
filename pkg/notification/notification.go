package notification

import "github.com/slotcal/slotcal/pkg/schedule"

const (
	MsgEventsToday   = "You have events for today."
	MsgNoEventsToday = "No events for today."
	MsgFetchError    = "Error fetching events."
)

// Summary is the banner content for one identity's current day: whether the
// day has events at all, and the first event of the day if so.
type Summary struct {
	HasEvents bool            `json:"hasEvents"`
	Message   string          `json:"message"`
	First     *schedule.Event `json:"first,omitempty"`
}
