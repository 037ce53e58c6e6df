package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/beamshop/opticut/internal/contract"
)

// WriteScheduleCSV emits the optimized sequence as one CSV row per job,
// the shape downstream spreadsheets expect.
func WriteScheduleCSV(w io.Writer, resp *contract.OptimizeResponse) error {
	cw := csv.NewWriter(w)
	header := []string{
		"sequence", "job_id", "job_name", "priority", "machine",
		"scheduled_start", "scheduled_end", "setup_min", "duration_min", "buffer_min", "due_date", "on_time",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range resp.OptimizedSchedule {
		row := []string{
			fmt.Sprintf("%d", s.SequenceNumber),
			s.Job.ID,
			s.Job.Name,
			string(s.Job.Priority),
			s.AssignedMachine,
			s.ScheduledStart.Format(time.RFC3339),
			s.ScheduledEnd.Format(time.RFC3339),
			fmt.Sprintf("%.1f", s.EffectiveSetupMin),
			fmt.Sprintf("%d", s.Job.EstimatedDurationMin),
			fmt.Sprintf("%.1f", s.BufferMin),
			s.Job.DueDate.Format(time.RFC3339),
			fmt.Sprintf("%t", s.OnTime()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResponseJSON emits the full result bundle as indented JSON.
func WriteResponseJSON(w io.Writer, resp *contract.OptimizeResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
