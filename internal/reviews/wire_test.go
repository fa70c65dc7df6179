package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvista/landscaping-backend/pkg/enums"
)

func TestDecodeSnapshotFlatShape(t *testing.T) {
	raw := []byte(`{
		"success": true,
		"rating": 4.8,
		"totalReviews": 212,
		"reviews": [
			{"id": "r1", "name": "Maria T.", "platform": "google", "rating": 5, "text": "Great crew.", "date": "2026-05-12", "verified": true, "location": "dublin"},
			{"id": "r2", "name": "Dan W.", "platform": "nextdoor", "rating": 4, "text": "Solid work.", "date": "2026-04-02T10:30:00Z", "verified": false}
		]
	}`)

	snap, err := DecodeSnapshot(raw)
	require.NoError(t, err)

	assert.Equal(t, 4.8, snap.Rating)
	assert.Equal(t, 212, snap.TotalReviews)
	require.Len(t, snap.Reviews, 2)

	first := snap.Reviews[0]
	assert.Equal(t, "Maria T.", first.Customer)
	assert.Equal(t, enums.ReviewPlatformGoogle, first.Platform)
	assert.Equal(t, "dublin", first.Location)
	assert.True(t, first.Verified)
	assert.Equal(t, time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), first.Date)

	second := snap.Reviews[1]
	assert.Equal(t, time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC), second.Date)
}

func TestDecodeSnapshotLegacyResultShape(t *testing.T) {
	raw := []byte(`{
		"result": {
			"success": true,
			"rating": 4.9,
			"reviews": [
				{"id": "r1", "name": "Priya K.", "platform": "angi", "rating": 4, "text": "Smooth install.", "date": "2026-03-18"}
			]
		}
	}`)

	snap, err := DecodeSnapshot(raw)
	require.NoError(t, err)

	assert.Equal(t, 4.9, snap.Rating)
	// Legacy payloads often omit the total; it defaults to the list length.
	assert.Equal(t, 1, snap.TotalReviews)
	require.Len(t, snap.Reviews, 1)
	assert.Equal(t, enums.ReviewPlatformAngi, snap.Reviews[0].Platform)
}

func TestDecodeSnapshotUnknownPlatformFallsBackToInternal(t *testing.T) {
	raw := []byte(`{
		"reviews": [
			{"id": "r1", "name": "A.", "platform": "trustpilot", "rating": 5, "text": "ok", "date": "2026-01-01"}
		]
	}`)

	snap, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, enums.ReviewPlatformInternal, snap.Reviews[0].Platform)
}

func TestDecodeSnapshotRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "malformed json", raw: `{"reviews": [`},
		{name: "explicit failure", raw: `{"success": false, "reviews": [{"id": "r1", "rating": 5}]}`},
		{name: "empty review list", raw: `{"success": true, "reviews": []}`},
		{name: "rating out of range", raw: `{"reviews": [{"id": "r1", "name": "A.", "rating": 6, "text": "x", "date": "2026-01-01"}]}`},
		{name: "legacy failure", raw: `{"result": {"success": false, "reviews": [{"id": "r1", "rating": 5}]}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}
