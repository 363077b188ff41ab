package model

// Priority is the urgency of a todo. It is a closed set with an explicit
// ordering: LOW < MEDIUM < HIGH.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// DefaultPriority is applied when a todo is created without a priority.
const DefaultPriority = PriorityMedium

var priorityRanks = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Rank returns the position of p in the LOW < MEDIUM < HIGH ordering.
// Unknown values rank below LOW.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

// Status is the lifecycle state of a todo. Unlike Priority the values
// carry no ordering.
type Status string

const (
	StatusReady      Status = "READY"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPaused     Status = "PAUSED"
	StatusBlocked    Status = "BLOCKED"
	StatusDone       Status = "DONE"
)

// DefaultStatus is applied when a todo is created without a status.
const DefaultStatus = StatusReady

var validStatuses = map[Status]struct{}{
	StatusReady:      {},
	StatusInProgress: {},
	StatusPaused:     {},
	StatusBlocked:    {},
	StatusDone:       {},
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}
