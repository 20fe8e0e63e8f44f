package domain

// DateLayout is the calendar-day format stored in streak records.
const DateLayout = "2006-01-02"

// Streak is the consecutive-day visit counter.
type Streak struct {
	Count         int    `json:"count"`
	LastVisitDate string `json:"lastVisitDate"`
}

// IsZero reports whether the streak was never initialized.
func (s Streak) IsZero() bool {
	return s.Count == 0 && s.LastVisitDate == ""
}
