package services

import (
	"fulfillment/internal/core/domain/model/customer"
)

// Lane identifies one of the two backlog containers holding pending order ids.
type Lane int

const (
	// LaneUnknown represents an invalid or undefined lane.
	LaneUnknown Lane = iota

	// LaneRegular is the first-in-first-out lane for standard orders.
	LaneRegular

	// LanePriority is the last-in-first-out lane for loyalty-tier orders.
	// It is always drained before the regular lane.
	LanePriority
)

// String returns the human-readable name of the lane.
func (l Lane) String() string {
	switch l {
	case LaneRegular:
		return "regular"
	case LanePriority:
		return "priority"
	default:
		return "unknown"
	}
}

// BacklogRouter is a domain service that decides, at order-creation time,
// which backlog lane an order enters.
//
// Business rules:
//   - Customers at or above the loyalty priority threshold route to the
//     priority lane (drained last-in-first-out, with strict precedence)
//   - All other customers route to the regular lane (first-in-first-out)
//
// The routing decision is made once at admission; an order never moves
// between lanes.
type BacklogRouter struct{}

// NewBacklogRouter creates a new BacklogRouter instance.
func NewBacklogRouter() BacklogRouter {
	return BacklogRouter{}
}

// Route selects the backlog lane for an order placed by the given customer.
func (r BacklogRouter) Route(c *customer.Customer) (Lane, error) {
	if err := c.Validate(); err != nil {
		return LaneUnknown, err
	}

	if c.IsPriority() {
		return LanePriority, nil
	}
	return LaneRegular, nil
}
