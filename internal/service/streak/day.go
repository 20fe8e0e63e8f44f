package streak

import (
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// Day returns the calendar day of now in loc, formatted with domain.DateLayout.
func Day(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(domain.DateLayout)
}

// PreviousDay returns the calendar day before now in loc.
func PreviousDay(now time.Time, loc *time.Location) string {
	local := now.In(loc)
	// AddDate keeps the calendar day across DST changes, Add(-24h) does not.
	y, m, d := local.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, loc).AddDate(0, 0, -1).Format(domain.DateLayout)
}
