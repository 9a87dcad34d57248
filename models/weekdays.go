package models

import "fmt"

// weekdayOrder fixes the canonical sequence availability days are stored in.
var weekdayOrder = map[string]int{
	"Mon": 0,
	"Tue": 1,
	"Wed": 2,
	"Thu": 3,
	"Fri": 4,
	"Sat": 5,
	"Sun": 6,
}

// Weekdays is a doctor's set of available days, always kept deduplicated and
// in canonical Mon..Sun order.
type Weekdays []string

// CanonicalWeekdays validates the given day labels, drops duplicates and
// returns them sorted into canonical order.
func CanonicalWeekdays(days []string) (Weekdays, error) {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		if _, ok := weekdayOrder[d]; !ok {
			return nil, fmt.Errorf("unknown weekday: %q", d)
		}
		seen[d] = true
	}
	out := make(Weekdays, 0, len(seen))
	for _, d := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}
