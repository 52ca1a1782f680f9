package extraction

import (
	"encoding/json"
	"fmt"
	"time"
)

// OperationState is where an analysis operation sits in the submit/poll protocol.
type OperationState int

const (
	StateSubmitted OperationState = iota
	StatePolling
	StateSucceeded
	StateFailed
	StateTimedOut
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

func (s OperationState) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	case StatePolling:
		return "polling"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed_out"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s OperationState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateTimedOut
}

var allowedTransitions = map[OperationState][]OperationState{
	StateSubmitted: {StatePolling},
	StatePolling:   {StatePolling, StateSucceeded, StateFailed, StateTimedOut},
}

// classifyStatus maps the backend's open status string onto the state machine.
// Anything other than succeeded/failed, including an empty status, keeps the operation polling.
func classifyStatus(status string) OperationState {
	switch status {
	case statusSucceeded:
		return StateSucceeded
	case statusFailed:
		return StateFailed
	default:
		return StatePolling
	}
}

// operation tracks one accepted submission. It is owned by a single SubmitAndAwait call.
type operation struct {
	location string
	state    OperationState
	started  time.Time
	attempts int
}

func newOperation(location string, started time.Time) *operation {
	return &operation{location: location, state: StateSubmitted, started: started}
}

func (o *operation) advance(to OperationState) error {
	for _, allowed := range allowedTransitions[o.state] {
		if allowed == to {
			o.state = to
			return nil
		}
	}
	return fmt.Errorf("illegal operation transition %s -> %s", o.state, to)
}

func (o *operation) expired(now time.Time, budget time.Duration) bool {
	return now.Sub(o.started) > budget
}

// pollResponse is the part of a poll body the loop needs to classify it.
type pollResponse struct {
	Status string          `json:"status"`
	Error  json.RawMessage `json:"error,omitempty"`
}
