package holiday

import "time"

// Holiday is a public holiday entry in the calendar. The calendar is managed
// by HR but is intentionally not consulted by leave day counting, which
// excludes weekends only.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
}
