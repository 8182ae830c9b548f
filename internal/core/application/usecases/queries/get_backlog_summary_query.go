package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetBacklogSummaryQueryIsNotConstructed = errors.New(
	"GetBacklogSummaryQuery must be created via NewGetBacklogSummaryQuery constructor",
)

// GetBacklogSummaryQuery retrieves the current size of each backlog lane.
// This is a parameterless query used for monitoring the pending workload.
type GetBacklogSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBacklogSummaryQuery creates a query for the backlog lane sizes.
func NewGetBacklogSummaryQuery() GetBacklogSummaryQuery {
	return GetBacklogSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBacklogSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetBacklogSummaryQueryIsNotConstructed)
}

// GetBacklogSummaryQueryResponse represents the backlog lane sizes.
type GetBacklogSummaryQueryResponse struct {
	Regular  int
	Priority int
}
