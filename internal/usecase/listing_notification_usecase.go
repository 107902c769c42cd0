package usecase

import (
	"context"

	"jobboard/internal/domain/service"
)

// ListingNotificationUsecase turns committed listing events into emails for the
// accounts they concern.
type ListingNotificationUsecase interface {
	// HandleListingEvent sends the notifications for event. Event types without a
	// notification are accepted and ignored.
	HandleListingEvent(ctx context.Context, event *service.ListingEvent) error
}
