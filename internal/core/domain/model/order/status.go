package order

import "fmt"

// ErrInvalidTransition is returned when a lifecycle operation is requested on
// an order whose current status forbids it, including any operation on an
// order already in a terminal status.
var ErrInvalidTransition = fmt.Errorf("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │             │
//	   └──> Cancelled <──┘
//
// Pending is the sole initial state; Completed and Cancelled are terminal.
// Status is a value object that validates state transitions and provides
// string representations for display and history recording.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status wait in a backlog lane for processing.
	Pending

	// Processing indicates the order has been dequeued and is being fulfilled.
	Processing

	// Completed indicates the order has been fulfilled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Processing, Completed, and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the lowercase name of the status, as recorded in history
// entries. It implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Process transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing
//
// Returns (0, ErrInvalidTransition) from any other status.
func (s Status) Process() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s cannot start processing", ErrInvalidTransition, s)
	}
	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed
//
// Returns (0, ErrInvalidTransition) from any other status.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, fmt.Errorf("%w: %s cannot complete", ErrInvalidTransition, s)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//
// Returns (0, ErrInvalidTransition) from a terminal or invalid status.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Processing {
		return 0, fmt.Errorf("%w: %s cannot be cancelled", ErrInvalidTransition, s)
	}
	return Cancelled, nil
}
