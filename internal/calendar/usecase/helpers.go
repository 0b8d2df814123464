package usecase

import (
	"time"

	"calendar-webhook/internal/calendar"
)

const dateLayout = "2006-01-02"

// nextDate returns the calendar day after date, both YYYY-MM-DD. The
// computation runs in UTC so the local zone can never shift the result.
// All-day events use it as their exclusive end date.
func nextDate(date string) (string, error) {
	d, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return "", calendar.ErrInvalidDate
	}
	return d.AddDate(0, 0, 1).Format(dateLayout), nil
}
