// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_SkipsNil(t *testing.T) {
	w := &mockWorker{}
	var absent Worker

	ws := NewWorkers(nil, w, absent)
	if ws.Len() != 1 {
		t.Fatalf("expected 1 worker, got %d", ws.Len())
	}
	ws.Run()
	if w.runCount != 1 {
		t.Errorf("expected runCount=1, got %d", w.runCount)
	}
}

func TestWorkers_RunsPool(t *testing.T) {
	p := NewPool(2, nil, logger.Nop())
	NewWorkers(p).Run()
	defer p.Close()

	got, err := Do(context.Background(), p, "test", func() (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Fatalf("Do() = %d, %v", got, err)
	}
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}
