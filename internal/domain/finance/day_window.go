package finance

import (
	"time"

	"github.com/vyapar/backend/internal/domain/shared"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
var ErrInvalidDate = shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")

// DayWindow is one calendar day in a specific location
type DayWindow struct {
	Start time.Time // 00:00:00.000
	End   time.Time // 23:59:59.999
	Next  time.Time // 00:00:00.000 of the following day
}

// ParseDay resolves a YYYY-MM-DD string to its window in loc.
// An empty string means the current day at now.
func ParseDay(value string, loc *time.Location, now time.Time) (DayWindow, error) {
	if loc == nil {
		loc = time.Local
	}
	var day time.Time
	if value == "" {
		n := now.In(loc)
		day = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation(DateLayout, value, loc)
		if err != nil {
			return DayWindow{}, ErrInvalidDate
		}
		day = parsed
	}
	return DayWindowOf(day), nil
}

// DayWindowOf returns the window of the calendar day containing t, in t's location
func DayWindowOf(t time.Time) DayWindow {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	next := start.AddDate(0, 0, 1)
	return DayWindow{
		Start: start,
		End:   time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location()),
		Next:  next,
	}
}
