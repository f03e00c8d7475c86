package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

// AbsenceJobs marks employees absent for the previous day.
type AbsenceJobs struct {
	attendanceService attendance.AttendanceService
	hour              int
	interval          time.Duration
	now               func() time.Time

	mu        sync.Mutex
	lastSwept string
}

// NewAbsenceJobs sweeps once per day, on the first run at or after hour.
// now must return times in the attendance time zone.
func NewAbsenceJobs(attendanceService attendance.AttendanceService, hour int, interval time.Duration, now func() time.Time) *AbsenceJobs {
	return &AbsenceJobs{
		attendanceService: attendanceService,
		hour:              hour,
		interval:          interval,
		now:               now,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", j.interval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees records yesterday's absences. It is a no-op before
// the configured hour and after a successful sweep of the same day.
func (j *AbsenceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.now()
	if now.Hour() < j.hour {
		return nil
	}
	date := attendance.FormatDate(now.AddDate(0, 0, -1))

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.lastSwept == date {
		return nil
	}

	marked, err := j.attendanceService.MarkAbsent(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to mark absences for %s: %w", date, err)
	}
	j.lastSwept = date

	slog.Info("absence sweep completed", "date", date, "marked", marked)
	return nil
}
