package testkit

import (
	"math"
	"testing"
)

func TestBatch_SinglePointPerBand(t *testing.T) {
	reg := DemoRegistry()
	gen := NewGenerator(3)

	batch := gen.Batch(DemoModel(reg, 55100), DemoBands(), 1, 0.1)
	if batch.Len() != len(DemoBands()) {
		t.Fatalf("got %d rows, want one per band (%d)", batch.Len(), len(DemoBands()))
	}
	for i := range batch.Time {
		if math.IsNaN(batch.Time[i]) {
			t.Errorf("row %d has NaN time", i)
		}
		if math.IsNaN(batch.Flux[i]) {
			t.Errorf("row %d has NaN flux", i)
		}
	}
}

func TestBatch_Deterministic(t *testing.T) {
	reg := DemoRegistry()
	a := NewGenerator(7).Batch(DemoModel(reg, 55100), DemoBands(), 10, 0.1)
	b := NewGenerator(7).Batch(DemoModel(reg, 55100), DemoBands(), 10, 0.1)

	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Flux {
		if a.Flux[i] != b.Flux[i] {
			t.Fatalf("row %d differs for the same seed: %v vs %v", i, a.Flux[i], b.Flux[i])
		}
	}
}
