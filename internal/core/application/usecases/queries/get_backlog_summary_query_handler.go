package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// GetBacklogSummaryQueryHandler reads the lane sizes of the backlog.
type GetBacklogSummaryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetBacklogSummaryQueryHandler creates a handler for backlog summaries.
func NewGetBacklogSummaryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetBacklogSummaryQueryHandler {
	return GetBacklogSummaryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the current size of each lane without mutating the backlog.
func (h GetBacklogSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetBacklogSummaryQuery,
) (GetBacklogSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBacklogSummaryQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetBacklogSummaryQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	summary, err := uow.Backlog().Summary(ctx)
	if err != nil {
		return GetBacklogSummaryQueryResponse{}, err
	}

	return GetBacklogSummaryQueryResponse{
		Regular:  summary.Regular,
		Priority: summary.Priority,
	}, nil
}
