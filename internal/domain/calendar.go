package domain

// MinutesPerDay bounds every minute-of-day value.
const MinutesPerDay = 24 * 60

// WeekdayHours is one row of the weekly operating-hours table.
// Weekday follows time.Weekday numbering (0 = Sunday).
// OpensAt/ClosesAt are minutes-of-day and only meaningful when !IsClosed.
type WeekdayHours struct {
	ID       int64 `json:"id"`
	Weekday  int   `json:"weekday" validate:"gte=0,lte=6"`
	OpensAt  int   `json:"opens_at"`
	ClosesAt int   `json:"closes_at"`
	IsClosed bool  `json:"is_closed"`
}

// BlackoutDate overrides the weekly table for a single calendar date.
// A full-day closure leaves OpensAt/ClosesAt nil; a partial override
// narrows the day's open range.
type BlackoutDate struct {
	ID       int64  `json:"id"`
	Date     string `json:"date" validate:"required"`
	FullDay  bool   `json:"full_day"`
	OpensAt  *int   `json:"opens_at,omitempty"`
	ClosesAt *int   `json:"closes_at,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// DefaultWeekHours is the shop's standing schedule: Sunday 10:00-19:00,
// Monday through Saturday 09:00-21:00.
func DefaultWeekHours() []WeekdayHours {
	week := []WeekdayHours{
		{Weekday: 0, OpensAt: 10 * 60, ClosesAt: 19 * 60},
	}
	for d := 1; d <= 6; d++ {
		week = append(week, WeekdayHours{Weekday: d, OpensAt: 9 * 60, ClosesAt: 21 * 60})
	}
	return week
}
