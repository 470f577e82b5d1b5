package telemetry

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// mockObserver records observations and signals each arrival.
type mockObserver struct {
	mu       sync.Mutex
	observed []observation
	arrived  chan struct{}
}

type observation struct {
	sensorType string
	value      float64
}

func newMockObserver() *mockObserver {
	return &mockObserver{arrived: make(chan struct{}, 64)}
}

func (m *mockObserver) Observe(_ context.Context, sensorType string, value float64) error {
	m.mu.Lock()
	m.observed = append(m.observed, observation{sensorType: sensorType, value: value})
	m.mu.Unlock()
	m.arrived <- struct{}{}
	return nil
}

func (m *mockObserver) getObserved() []observation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]observation(nil), m.observed...)
}

func (m *mockObserver) waitFor(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-m.arrived:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for observation %d of %d", i+1, n)
		}
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOnMessageEnqueuesAndRunProcesses(t *testing.T) {
	obs := newMockObserver()
	ing := New(obs, 16, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ing.Run(ctx)

	if err := ing.OnMessage("sensors/gas", []byte(`{"value": 512}`)); err != nil {
		t.Fatalf("OnMessage() error = %v", err)
	}
	if err := ing.OnMessage("sensors/light", []byte(`{"value": 42.5}`)); err != nil {
		t.Fatalf("OnMessage() error = %v", err)
	}

	obs.waitFor(t, 2)

	got := obs.getObserved()
	if got[0].sensorType != "gas" || got[0].value != 512 {
		t.Errorf("first observation = %+v, want gas/512", got[0])
	}
	if got[1].sensorType != "light" || got[1].value != 42.5 {
		t.Errorf("second observation = %+v, want light/42.5", got[1])
	}
}

func TestOnMessagePreservesOrder(t *testing.T) {
	obs := newMockObserver()
	ing := New(obs, 64, testLogger())

	// Enqueue before starting the consumer so ordering is fully queued
	for i := 0; i < 10; i++ {
		payload := []byte(`{"value": ` + string(rune('0'+i)) + `}`)
		if err := ing.OnMessage("sensors/gas", payload); err != nil {
			t.Fatalf("OnMessage() error = %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ing.Run(ctx)

	obs.waitFor(t, 10)

	got := obs.getObserved()
	for i := 0; i < 10; i++ {
		if got[i].value != float64(i) {
			t.Fatalf("observation %d = %v, want %d (out of order)", i, got[i].value, i)
		}
	}
}

func TestOnMessageIgnoresForeignTopics(t *testing.T) {
	obs := newMockObserver()
	ing := New(obs, 16, testLogger())

	topics := []string{"actuators/door", "sensors/room/gas", "sensors/"}
	for _, topic := range topics {
		if err := ing.OnMessage(topic, []byte(`{"value": 1}`)); err != nil {
			t.Errorf("OnMessage(%q) error = %v, want nil", topic, err)
		}
	}
	if ing.QueueDepth() != 0 {
		t.Errorf("QueueDepth() = %d after foreign topics, want 0", ing.QueueDepth())
	}
}

func TestOnMessageRejectsMalformedPayloads(t *testing.T) {
	obs := newMockObserver()
	ing := New(obs, 16, testLogger())

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "hello"},
		{"missing value", `{"reading": 5}`},
		{"non-numeric value", `{"value": "high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ing.OnMessage("sensors/gas", []byte(tt.payload)); err == nil {
				t.Error("OnMessage() expected error for malformed payload")
			}
		})
	}

	if ing.QueueDepth() != 0 {
		t.Errorf("QueueDepth() = %d after malformed payloads, want 0", ing.QueueDepth())
	}
}

func TestOnMessageDropsOnFullQueue(t *testing.T) {
	obs := newMockObserver()
	ing := New(obs, 2, testLogger())

	// No consumer running; third message must be dropped, not block
	for i := 0; i < 3; i++ {
		if err := ing.OnMessage("sensors/gas", []byte(`{"value": 1}`)); err != nil {
			t.Fatalf("OnMessage() error = %v", err)
		}
	}
	if ing.QueueDepth() != 2 {
		t.Errorf("QueueDepth() = %d, want 2 (overflow dropped)", ing.QueueDepth())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	obs := newMockObserver()
	ing := New(obs, 16, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ing.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after context cancellation")
	}
}
