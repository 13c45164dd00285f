package messaging

import (
	"context"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
)

// Publisher defines the interface for publishing ingestion events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishRunCompleted publishes the outcome of a finished ingestion run
	PublishRunCompleted(ctx context.Context, event *domain.RunCompletedEvent) error
	// Close closes the connection
	Close()
}
