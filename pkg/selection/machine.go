package selection

import (
	log "github.com/sirupsen/logrus"

	"github.com/slotcal/slotcal/pkg/schedule"
	"github.com/slotcal/slotcal/pkg/timegrid"
)

// StateKind identifies the machine's current state.
type StateKind int

const (
	// Idle: no selection in progress.
	Idle StateKind = iota
	// StartPicked: the first slot click recorded a start minute; the edit
	// surface is not open yet.
	StartPicked
	// RangeClosed: both bounds are known and the edit surface is open on a
	// new pending selection.
	RangeClosed
	// EditingExisting: the click landed inside a stored event and the edit
	// surface is open on that event's exact bounds.
	EditingExisting
)

func (s StateKind) String() string {
	switch s {
	case Idle:
		return "idle"
	case StartPicked:
		return "start-picked"
	case RangeClosed:
		return "range-closed"
	case EditingExisting:
		return "editing-existing"
	}
	return "unknown"
}

// PendingSelection is the in-progress slot range before an event exists.
type PendingSelection struct {
	Day         string
	StartMinute int
	EndMinute   int
}

// Attachment is an externally supplied item (e.g. a video clip) being placed
// on the calendar. A positive DurationMinutes fixes the selection length:
// the end minute is derived from the first click instead of the second.
type Attachment struct {
	Title           string
	DurationMinutes float64
	VideoRef        string
}

// Machine interprets a sequence of slot clicks against the schedule store.
// Clicking inside an existing event always opens it for editing; otherwise
// two clicks (or one click plus a fixed attachment duration) close a range.
type Machine struct {
	store      *schedule.Store
	attachment *Attachment

	state   StateKind
	pending PendingSelection
	session *EditSession
}

func NewMachine(store *schedule.Store) *Machine {
	return &Machine{store: store}
}

// Attach supplies the external attachment context for subsequent selections.
// Passing nil returns the machine to free selection.
func (m *Machine) Attach(attachment *Attachment) {
	m.attachment = attachment
}

func (m *Machine) State() StateKind {
	return m.state
}

// Pending returns the current selection; only meaningful in StartPicked
// (start bound only), RangeClosed, and EditingExisting.
func (m *Machine) Pending() PendingSelection {
	return m.pending
}

// Session returns the open edit session, or nil while no edit surface is open.
func (m *Machine) Session() *EditSession {
	return m.session
}

// Click feeds one slot click into the machine and returns the edit session
// when the click opened the edit surface, nil otherwise.
func (m *Machine) Click(day string, minute int) *EditSession {
	if event, ok := m.store.Get(day, minute); ok {
		// An existing event always wins over an in-progress selection.
		m.state = EditingExisting
		m.pending = PendingSelection{Day: day, StartMinute: event.StartMinute, EndMinute: event.EndMinute}
		m.session = sessionFromEvent(day, event)
		log.Debugf("slot click on %s@%d opened existing event [%d,%d]", day, minute, event.StartMinute, event.EndMinute)
		return m.session
	}

	switch m.state {
	case StartPicked:
		if m.attachment != nil && m.attachment.DurationMinutes > 0 {
			// Fixed duration: the range is derived from the first click
			// only; this click merely confirms the selection.
			end := timegrid.ClampMinute(m.pending.StartMinute + int(m.attachment.DurationMinutes))
			m.pending.EndMinute = end
			m.state = RangeClosed
			m.session = newSession(m.pending, m.attachment)
			return m.session
		}

		// Free selection: the second click marks the end, smoothed up to
		// the next full hour.
		m.pending.EndMinute = timegrid.RoundUpToHour(minute)
		m.state = RangeClosed
		m.session = newSession(m.pending, m.attachment)
		return m.session

	default:
		m.state = StartPicked
		m.pending = PendingSelection{Day: day, StartMinute: minute}
		return nil
	}
}

// Cancel discards all transient selection state without touching the store.
func (m *Machine) Cancel() {
	m.state = Idle
	m.pending = PendingSelection{}
	m.session = nil
}
