package ui

import (
	. "docdiff/internal/diff"
	. "docdiff/internal/render"
	"time"
)

// EventCompareDone carries a finished comparison from the compute
// goroutine back onto the event loop. The result is applied there in a
// single assignment, partial updates are never observable.
type EventCompareDone struct {
	when   time.Time
	key    string
	result Result
	linesA []Line
	linesB []Line
}

func (this *EventCompareDone) When() time.Time { return this.when }

// EventFilesChanged is posted by the file watchers.
type EventFilesChanged struct {
	when time.Time
}

func (this *EventFilesChanged) When() time.Time { return this.when }

func NewEventFilesChanged() *EventFilesChanged {
	return &EventFilesChanged{when: time.Now()}
}
