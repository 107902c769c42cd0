package service

import (
	"context"
	"time"
)

// ListingEventType names a listing lifecycle change.
type ListingEventType string

const (
	ListingEventCreated   ListingEventType = "listing.created"
	ListingEventApplied   ListingEventType = "listing.candidate_applied"
	ListingEventUnapplied ListingEventType = "listing.candidate_unapplied"
	ListingEventClosed    ListingEventType = "listing.closed"
	ListingEventCancelled ListingEventType = "listing.cancelled"
)

// ListingEvent is published after a listing change has been committed.
type ListingEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	Type        ListingEventType `json:"type"`
	ListingID   string           `json:"listing_id"`
	BusinessID  string           `json:"business_id,omitempty"`
	CandidateID string           `json:"candidate_id,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
