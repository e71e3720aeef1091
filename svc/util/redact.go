package util

// RedactPassword keeps generated values out of the logs. Only the length
// is ever recorded.
func RedactPassword(v string) string {
	if len(v) == 0 {
		return ""
	}
	return "[REDACTED]"
}
