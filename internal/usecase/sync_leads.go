package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/admitly/lead-capture-api/internal/entity"
)

const DefaultReconcileBatchSize = 100

type SyncOutcome string

const (
	SyncOutcomeSynced        SyncOutcome = "synced"
	SyncOutcomeAlreadySynced SyncOutcome = "already_synced"
	SyncOutcomeUnavailable   SyncOutcome = "unavailable"
	SyncOutcomeFailed        SyncOutcome = "failed"
)

// SyncResult is a reported outcome, never an error that escalates: by
// the time a sync runs, the primary response has already been sent.
type SyncResult struct {
	Outcome SyncOutcome `json:"outcome"`
	Row     int         `json:"row,omitempty"`
	Reason  string      `json:"reason,omitempty"`
}

type SyncFailure struct {
	LeadID int    `json:"lead_id"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type ReconcileSummary struct {
	Attempted int           `json:"attempted"`
	Synced    int           `json:"synced"`
	Failed    int           `json:"failed"`
	Failures  []SyncFailure `json:"failures,omitempty"`
}

// SyncLeadsUseCase mediates between the lead store and the spreadsheet:
// appends new leads exactly once, stamps the returned row reference
// back on the lead, propagates status changes, and sweeps leads the
// fire-and-forget path missed.
type SyncLeadsUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Sheet SheetClient
}

func NewSyncLeadsUseCase(repo entity.LeadRepositoryInterface, sheet SheetClient) *SyncLeadsUseCase {
	return &SyncLeadsUseCase{
		Repo:  repo,
		Sheet: sheet,
	}
}

// SyncLead appends one lead to the sheet and records the row reference.
// The lead is re-read from the store first: a set row reference is the
// durable "already synced" marker, and it protects against a direct
// append racing a reconciliation sweep. The guard is best effort, not
// transactional — a narrow window for a duplicate row remains when both
// paths read before either writes back, and that is accepted.
func (uc *SyncLeadsUseCase) SyncLead(ctx context.Context, leadID int) SyncResult {
	if !uc.Sheet.IsAvailable() {
		return SyncResult{Outcome: SyncOutcomeUnavailable, Reason: "sheet client not configured"}
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return SyncResult{Outcome: SyncOutcomeFailed, Reason: fmt.Sprintf("re-reading lead: %v", err)}
	}
	if lead == nil {
		return SyncResult{Outcome: SyncOutcomeFailed, Reason: "lead no longer exists"}
	}
	if lead.SheetRow.Synced() {
		return SyncResult{Outcome: SyncOutcomeAlreadySynced, Row: lead.SheetRow.Number}
	}

	row, err := uc.Sheet.AppendLeadRow(ctx, lead)
	if err != nil {
		return SyncResult{Outcome: SyncOutcomeFailed, Reason: fmt.Sprintf("appending row: %v", err)}
	}

	claimed, err := uc.Repo.SetSheetRow(ctx, leadID, row)
	if err != nil {
		// The row exists on the sheet but the lead still looks
		// unsynced; a later sweep will retry and the conditional
		// update keeps the first stamp authoritative.
		return SyncResult{Outcome: SyncOutcomeFailed, Reason: fmt.Sprintf("stamping row reference: %v", err)}
	}
	if !claimed {
		log.Printf("[SYNC] lead %d: row %d appended but reference already claimed (duplicate append race)", leadID, row)
		return SyncResult{Outcome: SyncOutcomeAlreadySynced, Row: row}
	}

	log.Printf("[SYNC] lead %d mirrored to sheet row %d", leadID, row)
	return SyncResult{Outcome: SyncOutcomeSynced, Row: row}
}

// PropagateStatus rewrites the status cell of an already-synced row.
// It never re-queues on failure; a missed status cell is tolerated.
func (uc *SyncLeadsUseCase) PropagateStatus(ctx context.Context, row int, status entity.LeadStatus) SyncResult {
	if !status.IsValid() {
		return SyncResult{Outcome: SyncOutcomeFailed, Reason: fmt.Sprintf("invalid status %q", status)}
	}
	if !uc.Sheet.IsAvailable() {
		return SyncResult{Outcome: SyncOutcomeUnavailable, Reason: "sheet client not configured"}
	}

	if err := uc.Sheet.UpdateStatusCell(ctx, row, status); err != nil {
		return SyncResult{Outcome: SyncOutcomeFailed, Row: row, Reason: fmt.Sprintf("updating status cell: %v", err)}
	}

	log.Printf("[SYNC] sheet row %d status set to %s", row, status)
	return SyncResult{Outcome: SyncOutcomeSynced, Row: row}
}

// Reconcile sweeps leads that never made it onto the sheet, oldest
// first, and retries them one at a time — sequential on purpose, the
// spreadsheet API rate-limits aggressively. A lead the idempotency
// guard reports as already synced mid-sweep is a benign race and
// counts as neither synced nor failed.
func (uc *SyncLeadsUseCase) Reconcile(ctx context.Context, batchSize int) (*ReconcileSummary, error) {
	if !uc.Sheet.IsAvailable() {
		return nil, &DomainError{
			Code:    "SHEET_UNAVAILABLE",
			Message: "sheet client not configured",
		}
	}

	if batchSize <= 0 {
		batchSize = DefaultReconcileBatchSize
	}

	leads, err := uc.Repo.ListUnsynced(ctx, batchSize)
	if err != nil {
		return nil, err
	}

	summary := &ReconcileSummary{}
	for i := range leads {
		lead := &leads[i]
		result := uc.SyncLead(ctx, lead.ID)

		switch result.Outcome {
		case SyncOutcomeSynced:
			summary.Attempted++
			summary.Synced++
		case SyncOutcomeAlreadySynced:
			// raced with a direct append, nothing to do
		default:
			summary.Attempted++
			summary.Failed++
			summary.Failures = append(summary.Failures, SyncFailure{
				LeadID: lead.ID,
				Email:  lead.Email,
				Reason: result.Reason,
			})
		}
	}

	log.Printf("[SYNC] reconcile completed: %d synced, %d failed", summary.Synced, summary.Failed)
	return summary, nil
}
