package widget

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/slotcal/slotcal/internal/event_bus"
	"github.com/slotcal/slotcal/internal/utils"
	"github.com/slotcal/slotcal/pkg/gateway"
	"github.com/slotcal/slotcal/pkg/schedule"
	"github.com/slotcal/slotcal/pkg/selection"
	"github.com/slotcal/slotcal/pkg/timegrid"
)

// View is the active calendar layout.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ErrNoSession is returned by Save and Delete when no edit surface is open.
var ErrNoSession = errors.New("no edit session is open")

// Widget is the client-side calendar controller: it owns the in-memory
// schedule, the slot selection machine, the current view and date, and fans
// committed mutations out to the local cache and the remote store. Everything
// runs on the single interaction goroutine; only pushes leave it.
type Widget struct {
	identity string
	store    *schedule.Store
	machine  *selection.Machine
	gateway  gateway.Gateway
	cache    *gateway.FileCache
	bus      *event_bus.EventBus
	results  chan gateway.PushResult

	currentDate time.Time
	view        View
}

func New(identity string, gw gateway.Gateway, cache *gateway.FileCache, bus *event_bus.EventBus, clock utils.Clock) *Widget {
	store := schedule.NewStore()
	w := &Widget{
		identity:    identity,
		store:       store,
		machine:     selection.NewMachine(store),
		gateway:     gw,
		cache:       cache,
		bus:         bus,
		results:     make(chan gateway.PushResult, 16),
		currentDate: timegrid.Midnight(clock.Now()),
		view:        ViewWeek,
	}

	// Cache write and remote push react to the same commit event but stay
	// independent: neither failure affects the other or the in-memory state.
	bus.Subscribe(event_bus.ScheduleChanged, func(e event_bus.Event) error {
		mapping, ok := e.Data.(schedule.Schedule)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", e.Data)
		}
		return w.cache.Store(mapping)
	})
	bus.Subscribe(event_bus.ScheduleChanged, func(e event_bus.Event) error {
		mapping, ok := e.Data.(schedule.Schedule)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", e.Data)
		}
		pushResults := w.gateway.Push(e.Context(), w.identity, mapping)
		go func() {
			if result, ok := <-pushResults; ok {
				select {
				case w.results <- result:
				default:
					// nobody is draining results; dropping beats blocking
				}
			}
		}()
		return nil
	})
	bus.Subscribe(event_bus.ScheduleCleared, func(e event_bus.Event) error {
		return w.cache.Clear()
	})

	return w
}

// Store exposes the schedule for rendering lookups.
func (w *Widget) Store() *schedule.Store {
	return w.store
}

// Results delivers outcomes of remote pushes; the UI may drain it or not.
func (w *Widget) Results() <-chan gateway.PushResult {
	return w.results
}

// Load populates the schedule: the local cache first, then the remote copy,
// which replaces (not merges into) whatever was there. A failed fetch leaves
// the prior value in place and is reported to the caller for display.
func (w *Widget) Load(ctx context.Context) error {
	cached, found, err := w.cache.Load()
	if err != nil {
		log.Errorf("schedule cache unreadable, ignoring it: %v", err)
	} else if found {
		w.store.ReplaceAll(cached)
	}

	remote, err := w.gateway.Fetch(ctx, w.identity)
	if err != nil {
		log.Errorf("error fetching events: %v", err)
		return fmt.Errorf("error fetching events: %w", err)
	}
	w.store.ReplaceAll(remote)
	return nil
}

// Attach supplies the external video attachment for upcoming selections.
func (w *Widget) Attach(attachment *selection.Attachment) {
	w.machine.Attach(attachment)
}

// ClickSlot feeds a slot click into the selection machine and returns the
// edit session when the click opened the edit surface.
func (w *Widget) ClickSlot(day string, minute int) *selection.EditSession {
	return w.machine.Click(day, minute)
}

// Session returns the open edit session, or nil.
func (w *Widget) Session() *selection.EditSession {
	return w.machine.Session()
}

// Cancel closes the edit surface and discards the pending selection.
func (w *Widget) Cancel() {
	w.machine.Cancel()
}

// Save commits the open session into the schedule and publishes the change;
// cache write and remote push follow from the subscribers.
func (w *Widget) Save(ctx context.Context) error {
	session := w.machine.Session()
	if session == nil {
		return ErrNoSession
	}
	session.Save(w.store)
	w.commit(ctx)
	w.machine.Cancel()
	return nil
}

// Delete removes the open session's range from the schedule. Like Save it
// publishes the change for both the cache and the remote store.
func (w *Widget) Delete(ctx context.Context) error {
	session := w.machine.Session()
	if session == nil {
		return ErrNoSession
	}
	if err := session.Delete(w.store); err != nil {
		return err
	}
	w.commit(ctx)
	w.machine.Cancel()
	return nil
}

// ClearAll wipes the whole schedule and the local cache. The remote copy is
// left untouched until the next commit.
func (w *Widget) ClearAll(ctx context.Context) {
	w.store.ReplaceAll(nil)
	w.bus.Publish(event_bus.NewEvent(ctx, event_bus.ScheduleCleared, nil))
}

func (w *Widget) commit(ctx context.Context) {
	w.bus.Publish(event_bus.NewEvent(ctx, event_bus.ScheduleChanged, w.store.Snapshot()))
}

// CurrentDate returns the midnight-normalized date the views are anchored on.
func (w *Widget) CurrentDate() time.Time {
	return w.currentDate
}

func (w *Widget) View() View {
	return w.view
}

func (w *Widget) SetView(view View) {
	w.view = view
}

// GoToDay jumps to a specific date in the day view (clicking a day number).
func (w *Widget) GoToDay(day time.Time) {
	w.currentDate = timegrid.Midnight(day)
	w.view = ViewDay
}

// NextPeriod advances by one day, week, or month depending on the view.
func (w *Widget) NextPeriod() {
	w.currentDate = w.shift(1)
}

// PrevPeriod goes back by one day, week, or month depending on the view.
func (w *Widget) PrevPeriod() {
	w.currentDate = w.shift(-1)
}

func (w *Widget) shift(direction int) time.Time {
	switch w.view {
	case ViewDay:
		return timegrid.Midnight(w.currentDate.AddDate(0, 0, direction))
	case ViewWeek:
		return timegrid.Midnight(w.currentDate.AddDate(0, 0, 7*direction))
	default:
		return timegrid.Midnight(w.currentDate.AddDate(0, direction, 0))
	}
}

// Week returns the seven days shown by the week view.
func (w *Widget) Week() [7]time.Time {
	return timegrid.WeekOf(w.currentDate)
}

// MonthCells returns the padded month grid shown by the month view.
func (w *Widget) MonthCells() []timegrid.MonthCell {
	return timegrid.MonthCells(w.currentDate)
}
