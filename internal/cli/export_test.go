package cli

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamshop/opticut/internal/contract"
	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/testutil"
)

func sampleResponse(now time.Time) *contract.OptimizeResponse {
	job := testutil.NewTestJob("Bracket batch", now,
		testutil.WithJobID("job-a"),
		testutil.WithPriority(domain.PriorityUrgent),
		testutil.WithDueDate(now.Add(48*time.Hour)),
	)
	return &contract.OptimizeResponse{
		RunID:       "run-1",
		GeneratedAt: now,
		OptimizedSchedule: []domain.ScheduledJob{
			{
				Job:               job,
				AssignedMachine:   "laser-1",
				ScheduledStart:    now,
				ScheduledEnd:      now.Add(70 * time.Minute),
				SequenceNumber:    1,
				EffectiveSetupMin: 10,
				BufferMin:         6,
			},
		},
	}
}

func TestWriteScheduleCSV(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	var buf strings.Builder
	require.NoError(t, WriteScheduleCSV(&buf, sampleResponse(now)))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"sequence", "job_id", "job_name", "priority", "machine",
		"scheduled_start", "scheduled_end", "setup_min", "duration_min", "buffer_min", "due_date", "on_time",
	}, rows[0])

	row := rows[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "job-a", row[1])
	assert.Equal(t, "Bracket batch", row[2])
	assert.Equal(t, "urgent", row[3])
	assert.Equal(t, "laser-1", row[4])
	assert.Equal(t, "2026-03-15T08:00:00Z", row[5])
	assert.Equal(t, "2026-03-15T09:10:00Z", row[6])
	assert.Equal(t, "10.0", row[7])
	assert.Equal(t, "60", row[8])
	assert.Equal(t, "6.0", row[9])
	assert.Equal(t, "true", row[11])
}

func TestWriteResponseJSON_RoundTrips(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	var buf strings.Builder
	require.NoError(t, WriteResponseJSON(&buf, sampleResponse(now)))

	var decoded contract.OptimizeResponse
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.OptimizedSchedule, 1)
	assert.Equal(t, "job-a", decoded.OptimizedSchedule[0].Job.ID)
}
