package utils

import "time"

// FormatTimestamp Converts time to RFC3339 timestamp in UTC. The zero time formats as empty.
func FormatTimestamp(timestamp time.Time) string {
	if timestamp.IsZero() {
		return ""
	}
	return timestamp.UTC().Format(time.RFC3339)
}
