package domain

import "time"

// Kind of manifest change written to the Captain's log.
type LogOp string

const (
	LogOpAdd    LogOp = "add"
	LogOpModify LogOp = "modify"
	LogOpRemove LogOp = "remove"
)

// One line of the Captain's log. Entries are scoped to a single play session
// and ordered by Seq.
type LogEntry struct {
	SessionID string
	Seq       int
	Op        LogOp
	Delivery  Delivery
	At        time.Time
}
