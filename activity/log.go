// Package activity is an append-only, time-ordered log of game events.
package activity

import "time"

// Activity is a single timestamped entry
type Activity struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

// Log records activities against a clock. Entries come back in the order
// they were added.
type Log struct {
	clock   func() time.Time
	entries []Activity
}

// NewLog constructs a Log. A nil clock uses time.Now.
func NewLog(clock func() time.Time) *Log {
	if clock == nil {
		clock = time.Now
	}
	return &Log{clock: clock}
}

// AddActivity appends text and returns the time it was recorded at
func (l *Log) AddActivity(text string) time.Time {
	now := l.clock()
	l.entries = append(l.entries, Activity{Time: now, Text: text})
	return now
}

// ActivitiesAfter returns the entries recorded strictly after t
func (l *Log) ActivitiesAfter(t time.Time) []Activity {
	found := []Activity{}
	for _, a := range l.entries {
		if a.Time.After(t) {
			found = append(found, a)
		}
	}
	return found
}

// Monotonic wraps clock so that successive readings always increase, even
// when the underlying clock repeats itself. Logs sharing one Monotonic clock
// can be merged by timestamp without ties. Not safe for concurrent use.
func Monotonic(clock func() time.Time) func() time.Time {
	if clock == nil {
		clock = time.Now
	}
	var last time.Time
	return func() time.Time {
		now := clock()
		if !now.After(last) {
			now = last.Add(time.Nanosecond)
		}
		last = now
		return now
	}
}
