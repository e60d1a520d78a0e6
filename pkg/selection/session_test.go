package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotcal/slotcal/pkg/schedule"
)

func closedSession(t *testing.T, store *schedule.Store, start, clickEnd int) *EditSession {
	t.Helper()
	machine := NewMachine(store)
	machine.Click(day, start)
	session := machine.Click(day, clickEnd)
	require.NotNil(t, session)
	return session
}

func TestEditSession_SaveWritesEveryMinute(t *testing.T) {
	store := schedule.NewStore()
	session := closedSession(t, store, 605, 630)
	session.Title = "Dentist"
	session.Details = "bring insurance card"

	saved := session.Save(store)

	assert.Equal(t, 605, saved.StartMinute)
	assert.Equal(t, 660, saved.EndMinute)
	for minute := 605; minute <= 660; minute++ {
		got, ok := store.Get(day, minute)
		require.True(t, ok)
		assert.Equal(t, saved, got)
	}
}

func TestEditSession_SaveAppliesDefaultColor(t *testing.T) {
	store := schedule.NewStore()
	session := closedSession(t, store, 605, 630)
	session.Color = ""

	saved := session.Save(store)

	assert.Equal(t, DefaultColor, saved.Color)
}

func TestEditSession_SaveWithoutEndDefaultsToStart(t *testing.T) {
	store := schedule.NewStore()
	session := &EditSession{Day: day}
	session.SetStartTime(10, 5)

	saved := session.Save(store)

	assert.Equal(t, 605, saved.StartMinute)
	assert.Equal(t, 605, saved.EndMinute)
}

func TestEditSession_RangeNormalizesReversedBounds(t *testing.T) {
	session := &EditSession{Day: day}
	session.SetStartTime(11, 0)
	session.SetEndTime(10, 0)

	start, end := session.Range()

	assert.Equal(t, 600, start)
	assert.Equal(t, 660, end)
}

func TestEditSession_TimeSettersOverrideSelection(t *testing.T) {
	store := schedule.NewStore()
	session := closedSession(t, store, 605, 630)
	session.SetStartTime(9, 30)
	session.SetEndTime(10, 15)

	saved := session.Save(store)

	assert.Equal(t, 570, saved.StartMinute)
	assert.Equal(t, 615, saved.EndMinute)
}

func TestEditSession_DeleteRemovesRange(t *testing.T) {
	store := schedule.NewStore()
	store.Put(day, schedule.Event{Title: "Standup", StartMinute: 600, EndMinute: 660})
	machine := NewMachine(store)
	session := machine.Click(day, 625)
	require.NotNil(t, session)

	err := session.Delete(store)

	require.NoError(t, err)
	assert.False(t, store.HasDay(day))
}

func TestEditSession_DeleteWithoutRangeFails(t *testing.T) {
	store := schedule.NewStore()
	session := &EditSession{Day: day}

	err := session.Delete(store)

	assert.ErrorIs(t, err, ErrIncompleteRange)
}
