package timezone

import (
	"strings"
	"time"
)

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM", "3 PM", "3PM"}

// IsOpen evaluates a weekday-keyed schedule ("monday": "08:00-17:00" or
// "closed") at t. Unknown or malformed days count as closed. A range whose
// end is not after its start runs past midnight into the next day.
func IsOpen(hours map[string]string, t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()

	if start, end, ok := parseRange(hours[weekday(t)]); ok {
		if end > start && minute >= start && minute < end {
			return true
		}
		if end < start && minute >= start {
			return true
		}
	}

	// After-midnight tail of the previous day's overnight range.
	if start, end, ok := parseRange(hours[weekday(t.AddDate(0, 0, -1))]); ok {
		return end < start && minute < end
	}
	return false
}

// IsWeekday accepts English weekday names in any case.
func IsWeekday(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if key == strings.ToLower(d.String()) {
			return true
		}
	}
	return false
}

func weekday(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

func parseRange(window string) (int, int, bool) {
	window = strings.TrimSpace(window)
	if window == "" || strings.EqualFold(window, "closed") {
		return 0, 0, false
	}

	parts := strings.SplitN(window, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, ok1 := parseClock(parts[0])
	end, ok2 := parseClock(parts[1])
	if !ok1 || !ok2 || start == end {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// ValidSchedule accepts "closed" or a parseable "start-end" range.
func ValidSchedule(window string) bool {
	if strings.EqualFold(strings.TrimSpace(window), "closed") {
		return true
	}
	_, _, ok := parseRange(window)
	return ok
}

// HoursFromJSON keeps the string entries of a decoded JSON object.
func HoursFromJSON(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[strings.ToLower(k)] = s
		}
	}
	return out
}
