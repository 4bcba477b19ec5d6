package commands

import (
	"context"
	"log/slog"

	"gongsil-api/internal/domain/reservation"
	reqdto "gongsil-api/internal/handler/dto/request"
	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationResult struct {
	ID      uuid.UUID
	Status  reservation.Status
	SpaceID uuid.UUID
	People  int
	Summary queries.TimeTableSummary
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, spaceID uuid.UUID, req reqdto.CreateReservationRequest) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	source    queries.TimeTableSource
	gateway   ReservationGateway
	cache     CacheInvalidator
	services  *reservation.Services
	keyPrefix string
	logger    *slog.Logger
}

func NewReservationCommands(
	source queries.TimeTableSource,
	gateway ReservationGateway,
	cache CacheInvalidator,
	services *reservation.Services,
	cfg config.Config,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		source:    source,
		gateway:   gateway,
		cache:     cache,
		services:  services,
		keyPrefix: cfg.Cache.KeyPrefix,
		logger:    logger,
	}
}

func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	spaceID uuid.UUID,
	req reqdto.CreateReservationRequest,
) (*CreateReservationResult, error) {
	entries, err := reqdto.ToEntries(req.TimeTable)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	spec, err := queries.LoadSpec(ctx, c.source, spaceID, entries)
	if err != nil {
		return nil, err
	}

	res, err := req.ToDomain(c.services, spec)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	receipt, err := c.gateway.SubmitReservation(ctx, res)
	if err != nil {
		return nil, infra.MarkUpstream(err)
	}

	// availability for this space is stale now
	pattern := c.keyPrefix + ":availability:" + spaceID.String() + ":*"
	if err := c.cache.DeleteByPattern(ctx, pattern); err != nil {
		c.logger.Warn("failed to invalidate availability cache",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
	}

	c.logger.Info("reservation submitted",
		slog.String("reservation_id", receipt.ID.String()),
		slog.String("space_id", spaceID.String()),
		slog.Int64("price", res.Price().Won()))

	return &CreateReservationResult{
		ID:      receipt.ID,
		Status:  receipt.Status,
		SpaceID: spaceID,
		People:  res.People(),
		Summary: queries.Summarize(res.Slots(), spec.PricePerHour, c.services.PriceCalculator),
	}, nil
}
