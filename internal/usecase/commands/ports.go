package commands

import (
	"context"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/space"

	"github.com/google/uuid"
)

// ReservationReceipt is the backend origin's acknowledgement of a submitted request.
type ReservationReceipt struct {
	ID     uuid.UUID
	Status reservation.Status
}

type SpaceGateway interface {
	RegisterSpace(ctx context.Context, sp *space.Space) (uuid.UUID, error)
}

type ReservationGateway interface {
	SubmitReservation(ctx context.Context, r *reservation.Reservation) (*ReservationReceipt, error)
}

// CacheInvalidator drops cached entries whose keys match a glob pattern.
type CacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}
