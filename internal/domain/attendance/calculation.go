package attendance

import (
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	lateHour   = 9
	lateMinute = 0
)

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders t as HH:MM:SS in its own location.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// parseHourMinute splits "HH:MM:SS" (or "HH:MM") into hour and minute.
// Seconds are ignored.
func parseHourMinute(s string) (int, int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// IsLate reports whether a clock-in time is after 09:00. Seconds are ignored,
// so 09:00:59 is on time and 09:01:00 is late.
func IsLate(clockIn string) bool {
	hour, minute, ok := parseHourMinute(clockIn)
	if !ok {
		return false
	}
	return hour > lateHour || (hour == lateHour && minute > lateMinute)
}

// CalculateHours returns the hours between two clock times at minute
// resolution. The result is negative when clockOut precedes clockIn.
func CalculateHours(clockIn, clockOut string) float64 {
	inHour, inMinute, ok := parseHourMinute(clockIn)
	if !ok {
		return 0
	}
	outHour, outMinute, ok := parseHourMinute(clockOut)
	if !ok {
		return 0
	}
	minutes := (outHour*60 + outMinute) - (inHour*60 + inMinute)
	return float64(minutes) / 60
}

// ClockIn applies a clock-in at now to the day's current record.
// current is nil when the employee has no record for date yet.
func ClockIn(current *Attendance, employeeID, date, now string) (Attendance, error) {
	if current != nil && current.ClockIn != nil {
		return Attendance{}, ErrAlreadyClockedIn
	}

	var next Attendance
	if current != nil {
		next = current.clone()
	} else {
		next = Attendance{EmployeeID: employeeID, Date: date}
	}

	clockIn := now
	next.ClockIn = &clockIn
	next.IsLate = IsLate(now)
	next.Status = StatusPresent
	return next, nil
}

// ClockOut applies a clock-out at now to the day's current record.
func ClockOut(current *Attendance, now string) (Attendance, error) {
	if current == nil || current.ClockIn == nil {
		return Attendance{}, ErrNotClockedIn
	}
	if current.ClockOut != nil {
		return Attendance{}, ErrAlreadyClockedOut
	}

	next := current.clone()
	clockOut := now
	next.ClockOut = &clockOut
	next.Status = StatusPresent
	return next, nil
}

// Apply dispatches action to ClockIn or ClockOut.
func Apply(action Action, current *Attendance, employeeID, date, now string) (Attendance, error) {
	switch action {
	case ActionClockIn:
		return ClockIn(current, employeeID, date, now)
	case ActionClockOut:
		return ClockOut(current, now)
	default:
		return Attendance{}, ErrInvalidAction
	}
}

func (a Attendance) clone() Attendance {
	c := a
	if a.ClockIn != nil {
		v := *a.ClockIn
		c.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := *a.ClockOut
		c.ClockOut = &v
	}
	return c
}
