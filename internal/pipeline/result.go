package pipeline

import "time"

// Mode says whether a run covered every unit or a single one.
type Mode string

const (
	ModeAll    Mode = "all"
	ModeSingle Mode = "single"
)

// State is an orchestrator lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateExecuting  State = "executing"
	StateReporting  State = "reporting"
	StateSucceeded  State = "disconnected(success)"
	StateFailed     State = "disconnected(failure)"
)

// Result describes one completed unit.
type Result struct {
	Unit       string
	Label      string
	Collection string
	Created    int // documents acknowledged by the store
	Skipped    int // data items dropped for missing prerequisites
	Duration   time.Duration
}

// Summary is the outcome of one pipeline invocation. Results holds only the
// units that completed, in execution order.
type Summary struct {
	Mode     Mode
	Planned  []string
	Results  []Result
	Failed   string // unit that failed, empty when the failure was the connection
	Err      error
	State    State
	Duration time.Duration
}

// OK reports whether the run reached the success state.
func (s *Summary) OK() bool {
	return s.State == StateSucceeded
}

// Result returns the result recorded for unit name.
func (s *Summary) Result(name string) (Result, bool) {
	for _, r := range s.Results {
		if r.Unit == name {
			return r, true
		}
	}
	return Result{}, false
}

// Created returns the total number of documents inserted.
func (s *Summary) Created() int {
	n := 0
	for _, r := range s.Results {
		n += r.Created
	}
	return n
}

// Skipped returns the total number of dropped data items.
func (s *Summary) Skipped() int {
	n := 0
	for _, r := range s.Results {
		n += r.Skipped
	}
	return n
}
