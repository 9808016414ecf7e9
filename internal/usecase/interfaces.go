package usecase

import (
	"context"

	"github.com/admitly/lead-capture-api/internal/entity"
)

// SheetClient mirrors leads into the external spreadsheet. Ordinary
// failure modes (not configured, quota, network) come back as errors,
// never panics; the coordinator turns them into reported results.
type SheetClient interface {
	// IsAvailable is false when no spreadsheet credentials were
	// supplied; every other call short-circuits in that case.
	IsAvailable() bool

	// AppendLeadRow appends one row in the fixed column layout and
	// returns the 1-based row position reported by the service.
	AppendLeadRow(ctx context.Context, lead *entity.Lead) (int, error)

	// UpdateStatusCell rewrites only the status cell of the given row.
	UpdateStatusCell(ctx context.Context, row int, status entity.LeadStatus) error
}

// SyncDispatcher hands sync work off the request path. Implementations
// must return immediately; outcomes are only ever logged and counted,
// the caller holds no reference to completion.
type SyncDispatcher interface {
	LeadCreated(lead *entity.Lead)
	LeadStatusChanged(row int, status entity.LeadStatus)
}

// ReconcileNotifier receives the summary of a sweep that had failures.
type ReconcileNotifier interface {
	NotifyReconcileReport(summary *ReconcileSummary) error
}
