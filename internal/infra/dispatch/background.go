// Package dispatch hands sync work off the request path as detached
// goroutines. Outcomes are logged and counted; the request that
// triggered the work holds no reference to its completion.
package dispatch

import (
	"context"
	"log"

	"github.com/admitly/lead-capture-api/internal/entity"
	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
	"github.com/admitly/lead-capture-api/internal/usecase"
)

type BackgroundDispatcher struct {
	Sync *usecase.SyncLeadsUseCase
}

func NewBackgroundDispatcher(sync *usecase.SyncLeadsUseCase) *BackgroundDispatcher {
	return &BackgroundDispatcher{Sync: sync}
}

func (d *BackgroundDispatcher) LeadCreated(lead *entity.Lead) {
	leadID := lead.ID
	go func() {
		defer logPanic("lead sync")

		result := d.Sync.SyncLead(context.Background(), leadID)
		middleware.RecordSheetSync(string(result.Outcome))
		if result.Outcome == usecase.SyncOutcomeFailed {
			middleware.RecordIntegrationError("sheets")
			log.Printf("[DISPATCH] lead %d sync failed: %s", leadID, result.Reason)
		}
	}()
}

func (d *BackgroundDispatcher) LeadStatusChanged(row int, status entity.LeadStatus) {
	go func() {
		defer logPanic("status propagation")

		result := d.Sync.PropagateStatus(context.Background(), row, status)
		middleware.RecordSheetSync(string(result.Outcome))
		if result.Outcome == usecase.SyncOutcomeFailed {
			middleware.RecordIntegrationError("sheets")
			log.Printf("[DISPATCH] status propagation for row %d failed: %s", row, result.Reason)
		}
	}()
}

// logPanic is the error boundary of the detached task: the response was
// already sent, so there is no caller left to observe a panic.
func logPanic(task string) {
	if r := recover(); r != nil {
		log.Printf("[DISPATCH] recovered panic in %s: %v", task, r)
	}
}
