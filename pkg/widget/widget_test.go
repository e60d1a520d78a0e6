package widget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotcal/slotcal/internal/event_bus"
	"github.com/slotcal/slotcal/internal/utils"
	"github.com/slotcal/slotcal/pkg/gateway"
	"github.com/slotcal/slotcal/pkg/schedule"
)

const identity = "someone@example.com"

func fixedClock() *utils.MockClock {
	// 2025-04-09 is a Wednesday
	return &utils.MockClock{FixedNow: time.Date(2025, 4, 9, 14, 30, 0, 0, time.Local)}
}

func setupWidget(t *testing.T) (*Widget, *gateway.GatewayStub, *gateway.FileCache) {
	t.Helper()
	stub := gateway.NewGatewayStub()
	cache := gateway.NewFileCache(t.TempDir())
	w := New(identity, stub, cache, event_bus.NewEventBus(), fixedClock())
	return w, stub, cache
}

func remoteMapping(title string, start, end int) schedule.Schedule {
	event := schedule.Event{Title: title, Color: "#79c314", StartMinute: start, EndMinute: end}
	minutes := make(map[int]schedule.Event)
	for i := start; i <= end; i++ {
		minutes[i] = event
	}
	return schedule.Schedule{"2025-04-09": minutes}
}

func TestWidget_LoadPrefersRemoteOverCache(t *testing.T) {
	w, stub, cache := setupWidget(t)
	require.NoError(t, cache.Store(remoteMapping("Cached", 0, 10)))
	stub.SetRemote(identity, remoteMapping("Remote", 600, 660))

	require.NoError(t, w.Load(context.Background()))

	got, ok := w.Store().Get("2025-04-09", 600)
	require.True(t, ok)
	assert.Equal(t, "Remote", got.Title)
	// replaced, not merged
	_, ok = w.Store().Get("2025-04-09", 0)
	assert.False(t, ok)
}

func TestWidget_LoadFallsBackToCacheOnFetchFailure(t *testing.T) {
	w, stub, cache := setupWidget(t)
	require.NoError(t, cache.Store(remoteMapping("Cached", 0, 10)))
	stub.SetFetchError(errors.New("network down"))

	err := w.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching events")
	got, ok := w.Store().Get("2025-04-09", 5)
	require.True(t, ok)
	assert.Equal(t, "Cached", got.Title)
}

func TestWidget_SaveWritesCacheAndPushesRemote(t *testing.T) {
	w, stub, cache := setupWidget(t)
	w.ClickSlot("2025-04-09", 605)
	session := w.ClickSlot("2025-04-09", 630)
	require.NotNil(t, session)
	session.Title = "Dentist"

	require.NoError(t, w.Save(context.Background()))

	// store holds the committed event
	got, ok := w.Store().Get("2025-04-09", 640)
	require.True(t, ok)
	assert.Equal(t, "Dentist", got.Title)
	assert.Nil(t, w.Session(), "edit surface must close after save")

	// cache was written
	cached, found, err := cache.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, w.Store().Snapshot(), cached)

	// remote push carried the full mapping and surfaced a result
	pushes := stub.Pushes()
	require.Len(t, pushes, 1)
	assert.Equal(t, cached, pushes[0])
	select {
	case result := <-w.Results():
		assert.NoError(t, result.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("push result never arrived")
	}
}

func TestWidget_DeletePushesRemoteLikeSave(t *testing.T) {
	w, stub, _ := setupWidget(t)
	w.Store().Put("2025-04-09", schedule.Event{Title: "Standup", StartMinute: 600, EndMinute: 660})
	session := w.ClickSlot("2025-04-09", 625)
	require.NotNil(t, session)

	require.NoError(t, w.Delete(context.Background()))

	assert.False(t, w.Store().HasDay("2025-04-09"))
	// delete is pushed remotely, symmetric with save
	require.Len(t, stub.Pushes(), 1)
	assert.Empty(t, stub.Pushes()[0])
}

func TestWidget_PushFailureDoesNotRollBackStore(t *testing.T) {
	w, stub, _ := setupWidget(t)
	stub.SetPushError(errors.New("server unreachable"))
	w.ClickSlot("2025-04-09", 605)
	require.NotNil(t, w.ClickSlot("2025-04-09", 630))

	require.NoError(t, w.Save(context.Background()))

	_, ok := w.Store().Get("2025-04-09", 610)
	assert.True(t, ok, "in-memory state keeps the change")
	select {
	case result := <-w.Results():
		assert.Error(t, result.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("push result never arrived")
	}
}

func TestWidget_SaveWithoutSessionFails(t *testing.T) {
	w, _, _ := setupWidget(t)

	assert.ErrorIs(t, w.Save(context.Background()), ErrNoSession)
	assert.ErrorIs(t, w.Delete(context.Background()), ErrNoSession)
}

func TestWidget_CancelDiscardsWithoutSideEffects(t *testing.T) {
	w, stub, cache := setupWidget(t)
	w.ClickSlot("2025-04-09", 605)
	require.NotNil(t, w.ClickSlot("2025-04-09", 630))

	w.Cancel()

	assert.Nil(t, w.Session())
	assert.False(t, w.Store().HasDay("2025-04-09"))
	assert.Empty(t, stub.Pushes())
	_, found, err := cache.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWidget_ClearAllEmptiesStoreAndCacheOnly(t *testing.T) {
	w, stub, cache := setupWidget(t)
	w.Store().Put("2025-04-09", schedule.Event{Title: "Standup", StartMinute: 600, EndMinute: 660})
	require.NoError(t, cache.Store(w.Store().Snapshot()))

	w.ClearAll(context.Background())

	assert.False(t, w.Store().HasDay("2025-04-09"))
	_, found, err := cache.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, stub.Pushes(), "clearing does not touch the remote store")
}

func TestWidget_Navigation(t *testing.T) {
	w, _, _ := setupWidget(t)
	anchor := time.Date(2025, 4, 9, 0, 0, 0, 0, time.Local)
	assert.Equal(t, anchor, w.CurrentDate())
	assert.Equal(t, ViewWeek, w.View())

	w.NextPeriod()
	assert.Equal(t, anchor.AddDate(0, 0, 7), w.CurrentDate())

	w.SetView(ViewDay)
	w.PrevPeriod()
	assert.Equal(t, anchor.AddDate(0, 0, 6), w.CurrentDate())

	w.SetView(ViewMonth)
	w.NextPeriod()
	assert.Equal(t, anchor.AddDate(0, 1, 6), w.CurrentDate())
}

func TestWidget_GoToDaySwitchesView(t *testing.T) {
	w, _, _ := setupWidget(t)
	target := time.Date(2025, 4, 20, 16, 45, 0, 0, time.Local)

	w.GoToDay(target)

	assert.Equal(t, ViewDay, w.View())
	assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, time.Local), w.CurrentDate())
}

func TestWidget_WeekStartsSunday(t *testing.T) {
	w, _, _ := setupWidget(t)

	week := w.Week()

	assert.Equal(t, time.Sunday, week[0].Weekday())
	assert.Equal(t, time.Date(2025, 4, 6, 0, 0, 0, 0, time.Local), week[0])
}
