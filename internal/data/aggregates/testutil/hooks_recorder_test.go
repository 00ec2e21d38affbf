package testutil

import (
	"testing"
	"time"
)

func TestHooksRecorderStatusesByOperation(t *testing.T) {
	h := &HooksRecorder{}
	h.ObserveOperation("orders.create", "success", 10*time.Millisecond)
	h.ObserveOperation("orders.update", "conflict", time.Millisecond)
	h.ObserveOperation("orders.create", "invalid_order", time.Millisecond)
	h.IncConflict("orders.update")

	got := h.Statuses("orders.create")
	if len(got) != 2 || got[0] != "success" || got[1] != "invalid_order" {
		t.Fatalf("unexpected statuses: %v", got)
	}
	if len(h.Conflicts) != 1 || h.Conflicts[0] != "orders.update" {
		t.Fatalf("unexpected conflicts: %+v", h.Conflicts)
	}

	h.Reset()
	if len(h.Operations) != 0 || len(h.Conflicts) != 0 || h.Statuses("orders.create") != nil {
		t.Fatalf("expected empty recorder after reset")
	}
}
