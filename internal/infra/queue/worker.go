package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/admitly/lead-capture-api/internal/entity"
	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
	"github.com/admitly/lead-capture-api/internal/usecase"
)

// Worker drains the sheet-sync queue and runs each job through the
// coordinator. A failed sync is Acked anyway: the lead stays unsynced
// in the store and the reconcile sweep retries it, so requeueing here
// would only hammer a rate-limited API.
type Worker struct {
	Channel *amqp.Channel
	Sync    *usecase.SyncLeadsUseCase
}

func NewWorker(ch *amqp.Channel, sync *usecase.SyncLeadsUseCase) *Worker {
	return &Worker{
		Channel: ch,
		Sync:    sync,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] registering consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job SyncJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("[WORKER] malformed payload: %s", err)
				// poison message, reject without requeue
				d.Nack(false, false)
				continue
			}

			result := w.process(context.Background(), job)
			middleware.RecordSheetSync(string(result.Outcome))

			if result.Outcome == usecase.SyncOutcomeFailed {
				middleware.RecordIntegrationError("sheets")
				log.Printf("[WORKER] job %s (%s) failed: %s", job.JobID, job.Kind, result.Reason)
			}
			d.Ack(false)
		}
	}()

	log.Printf("[WORKER] consuming queue %q", queueName)
	<-forever
}

func (w *Worker) process(ctx context.Context, job SyncJob) usecase.SyncResult {
	switch job.Kind {
	case JobLeadCreated:
		return w.Sync.SyncLead(ctx, job.LeadID)

	case JobStatusChanged:
		return w.Sync.PropagateStatus(ctx, job.SheetRow, entity.LeadStatus(job.Status))

	default:
		log.Printf("[WORKER] unknown job kind %q, dropping", job.Kind)
		return usecase.SyncResult{Outcome: usecase.SyncOutcomeFailed, Reason: "unknown job kind"}
	}
}
