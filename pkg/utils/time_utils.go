package utils

import "time"

// Analytics buckets are keyed on the UTC calendar day / month of the record.

func DayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func MonthKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01")
}

// ParseStoreTime reads the timestamp formats the content store emits.
// Returns the zero time when the value is missing or unparseable so callers
// can decide how to degrade.
func ParseStoreTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
