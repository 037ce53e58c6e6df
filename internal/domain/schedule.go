package domain

import "time"

// ScheduledJob is one placed entry in the optimized sequence. Derived,
// immutable for the duration of a run.
type ScheduledJob struct {
	Job             Job
	AssignedMachine string
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
	SequenceNumber  int

	// EffectiveSetupMin is the job's nominal setup time scaled by the
	// assigned machine's changeover multiplier.
	EffectiveSetupMin float64

	// BufferMin is the idle gap inserted after this job before the
	// machine may start the next one.
	BufferMin float64
}

// ProcessingMin returns setup plus cut time in minutes.
func (s ScheduledJob) ProcessingMin() float64 {
	return s.EffectiveSetupMin + float64(s.Job.EstimatedDurationMin)
}

// OnTime reports whether the job completes by its due date.
func (s ScheduledJob) OnTime() bool {
	return !s.ScheduledEnd.After(s.Job.DueDate)
}

// TardinessMin returns how many minutes past due the job completes,
// zero when on time.
func (s ScheduledJob) TardinessMin() float64 {
	if s.OnTime() {
		return 0
	}
	return s.ScheduledEnd.Sub(s.Job.DueDate).Minutes()
}
