package domain

import (
	"time"
)

// RetentionWindow is how long a generated password stays in history.
// Entries older than this are pruned on every load and every append;
// there is no background timer.
const RetentionWindow = 30 * 24 * time.Hour

// Entry is one historical password record. Entries are immutable after
// creation and leave the collection only by explicit deletion or by
// age-based pruning.
type Entry struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	CreatedAt string `json:"createdAt"`
}

// Created parses the stored timestamp. The bool reports whether the
// timestamp is valid; invalid timestamps are dropped during pruning, so
// code past that point never sees one.
func (e Entry) Created() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, e.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Expired reports whether the entry falls outside the retention window
// at the given instant. The boundary is inclusive: an entry exactly 30
// days old survives. An unparsable timestamp counts as expired.
func (e Entry) Expired(now time.Time) bool {
	t, ok := e.Created()
	if !ok {
		return true
	}
	return now.Sub(t) > RetentionWindow
}
