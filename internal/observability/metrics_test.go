package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordEntrySavedIncrementsOperationCounter(t *testing.T) {
	before := testutil.ToFloat64(entriesSaved.WithLabelValues(OperationCreate))
	RecordEntrySaved(OperationCreate)
	after := testutil.ToFloat64(entriesSaved.WithLabelValues(OperationCreate))
	if after != before+1 {
		t.Fatalf("expected create counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestRecordStoreFailureKeepsOperationsApart(t *testing.T) {
	loadBefore := testutil.ToFloat64(storeFailures.WithLabelValues(OperationLoad))
	deleteBefore := testutil.ToFloat64(storeFailures.WithLabelValues(OperationDelete))

	RecordStoreFailure(OperationLoad)

	if got := testutil.ToFloat64(storeFailures.WithLabelValues(OperationLoad)); got != loadBefore+1 {
		t.Fatalf("expected load failures %v, got %v", loadBefore+1, got)
	}
	if got := testutil.ToFloat64(storeFailures.WithLabelValues(OperationDelete)); got != deleteBefore {
		t.Fatalf("expected delete failures unchanged at %v, got %v", deleteBefore, got)
	}
}
