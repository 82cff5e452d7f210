package messaging

import (
	"context"
	"time"

	"github.com/sphera-world/market-engine/internal/domain"
)

// JobFailureEvent reports a market job that exhausted its attempts
type JobFailureEvent struct {
	// EventID is a ULID, sortable by emission time
	EventID    string         `json:"eventId"`
	JobID      string         `json:"jobId"`
	Kind       domain.JobKind `json:"kind"`
	Job        domain.Job     `json:"job"`
	Error      string         `json:"error"`
	Retryable  bool           `json:"retryable"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishJobFailure publishes a terminal job failure to the message broker
	PublishJobFailure(ctx context.Context, event JobFailureEvent) error
	// Close closes the connection
	Close()
}
