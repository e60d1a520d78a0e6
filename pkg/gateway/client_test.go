package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotcal/slotcal/pkg/schedule"
)

func sampleMapping() schedule.Schedule {
	event := schedule.Event{Title: "Standup", Color: "#487de7", StartMinute: 600, EndMinute: 602}
	return schedule.Schedule{
		"2025-04-07": {600: event, 601: event, 602: event},
	}
}

func TestClient_Fetch(t *testing.T) {
	mapping := sampleMapping()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get_schedules/someone@example.com", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(mapping))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	got, err := client.Fetch(context.Background(), "someone@example.com")

	require.NoError(t, err)
	assert.Equal(t, mapping, got)
}

func TestClient_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, err := client.Fetch(context.Background(), "someone@example.com")

	assert.Error(t, err)
}

func TestClient_PushSendsFullMapping(t *testing.T) {
	received := make(chan schedule.SaveRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/save_schedules/", r.URL.Path)
		var request schedule.SaveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		received <- request
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	results := client.Push(context.Background(), "someone@example.com", sampleMapping())

	select {
	case result := <-results:
		require.NoError(t, result.Err)
		assert.NotEqual(t, uuid.Nil, result.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("push result never arrived")
	}

	request := <-received
	assert.Equal(t, "someone@example.com", request.Identity)
	assert.Equal(t, sampleMapping(), request.Schedules)
}

func TestClient_PushFailureIsReportedNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	results := client.Push(context.Background(), "someone@example.com", sampleMapping())

	select {
	case result := <-results:
		assert.Error(t, result.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("push result never arrived")
	}
}

func TestClient_PushResultDoesNotBlockWithoutConsumer(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
		close(done)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	// Nobody reads the channel; the buffered result must not leak a goroutine.
	client.Push(context.Background(), "someone@example.com", sampleMapping())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("push never reached the server")
	}
}
