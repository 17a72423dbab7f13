package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLookup(t *testing.T) {
	hits := testutil.ToFloat64(ExportLookups.WithLabelValues(LookupHit))
	misses := testutil.ToFloat64(ExportLookups.WithLabelValues(LookupMiss))

	RecordLookup(true)
	RecordLookup(false)
	RecordLookup(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(ExportLookups.WithLabelValues(LookupHit)))
	assert.Equal(t, misses+2, testutil.ToFloat64(ExportLookups.WithLabelValues(LookupMiss)))
}

func TestRecordRefresh(t *testing.T) {
	for _, outcome := range []string{RefreshRefreshed, RefreshUpToDate, RefreshCleared, RefreshError} {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(ExportRefreshes.WithLabelValues(outcome))
			RecordRefresh(outcome)
			assert.Equal(t, before+1, testutil.ToFloat64(ExportRefreshes.WithLabelValues(outcome)))
		})
	}
}

func TestUpdateSnapshot(t *testing.T) {
	lastUpdated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	UpdateSnapshot(42, lastUpdated)
	assert.Equal(t, float64(42), testutil.ToFloat64(ExportEntries))
	assert.Equal(t, float64(lastUpdated.Unix()), testutil.ToFloat64(ExportLastUpdated))

	UpdateSnapshot(0, time.Time{})
	assert.Equal(t, float64(0), testutil.ToFloat64(ExportEntries))
	assert.Equal(t, float64(0), testutil.ToFloat64(ExportLastUpdated))
}

func TestTimeRefresh(t *testing.T) {
	// This should not panic
	timer := TimeRefresh()
	timer()
}
