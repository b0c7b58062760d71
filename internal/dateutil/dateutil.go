// Package dateutil provides time helpers.
package dateutil

import "time"

// Timestamp returns t as unix seconds. The zero time means now.
func Timestamp(t time.Time) int64 {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Unix()
}
