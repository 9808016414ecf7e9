package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/admitly/lead-capture-api/internal/entity"
)

const (
	JobLeadCreated   = "lead_created"
	JobStatusChanged = "status_changed"
)

// SyncJob is the wire payload for queued sheet-sync work. The worker
// re-reads the lead from the store, so only identifiers travel.
type SyncJob struct {
	JobID    string `json:"job_id"`
	Kind     string `json:"kind"`
	LeadID   int    `json:"lead_id,omitempty"`
	SheetRow int    `json:"sheet_row,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Producer publishes sync jobs instead of running them in-process. It
// satisfies the same dispatcher contract as the goroutine dispatcher:
// publishing failures are logged, never surfaced — the reconcile sweep
// covers anything the queue drops.
type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) LeadCreated(lead *entity.Lead) {
	p.publish(SyncJob{
		JobID:  uuid.New().String(),
		Kind:   JobLeadCreated,
		LeadID: lead.ID,
	})
}

func (p *Producer) LeadStatusChanged(row int, status entity.LeadStatus) {
	p.publish(SyncJob{
		JobID:    uuid.New().String(),
		Kind:     JobStatusChanged,
		SheetRow: row,
		Status:   string(status),
	})
}

func (p *Producer) publish(job SyncJob) {
	body, err := json.Marshal(job)
	if err != nil {
		log.Printf("[QUEUE] marshaling job %s: %v", job.JobID, err)
		return
	}

	err = p.Ch.PublishWithContext(context.Background(),
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		log.Printf("[QUEUE] publishing job %s (%s): %v", job.JobID, job.Kind, err)
	}
}
