package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.PrometheusRegistry() == nil {
		t.Fatal("underlying registry is nil")
	}

	// Independent registries do not share state.
	r2 := NewRegistry()
	r.ComparisonsTotal.Inc()
	if got := testutil.ToFloat64(r2.ComparisonsTotal); got != 0 {
		t.Errorf("second registry counter = %v, want 0", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry is not a singleton")
	}
}

func TestRecordModelLoad(t *testing.T) {
	r := NewRegistry()

	r.RecordModelLoad(nil, 10*time.Millisecond, 5, 4)
	r.RecordModelLoad(nil, 20*time.Millisecond, 7, 9)
	r.RecordModelLoad(errors.New("parse failed"), 0, 0, 0)

	if got := testutil.ToFloat64(r.ModelsLoadedTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("ok loads = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.ModelsLoadedTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("error loads = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.ModelLoadDuration); got != 1 {
		t.Errorf("duration histogram series = %d, want 1", got)
	}
}

func TestRecordScan(t *testing.T) {
	r := NewRegistry()
	r.RecordScan(time.Second, 7)
	if got := testutil.ToFloat64(r.UniqueTopologiesFound); got != 7 {
		t.Errorf("unique gauge = %v, want 7", got)
	}

	// The gauge tracks the latest scan, not a running total.
	r.RecordScan(time.Second, 3)
	if got := testutil.ToFloat64(r.UniqueTopologiesFound); got != 3 {
		t.Errorf("unique gauge = %v, want 3", got)
	}
}

func TestContactsClassified(t *testing.T) {
	r := NewRegistry()
	r.ContactsClassified.WithLabelValues("fault").Inc()
	r.ContactsClassified.WithLabelValues("fault").Inc()
	r.ContactsClassified.WithLabelValues("stratigraphic").Inc()

	if got := testutil.ToFloat64(r.ContactsClassified.WithLabelValues("fault")); got != 2 {
		t.Errorf("fault count = %v, want 2", got)
	}
}
