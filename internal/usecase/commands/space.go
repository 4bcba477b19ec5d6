package commands

import (
	"context"
	"log/slog"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/space"
	reqdto "gongsil-api/internal/handler/dto/request"
	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterSpaceResult struct {
	ID      uuid.UUID
	Summary queries.TimeTableSummary
}

type SpaceCommands interface {
	RegisterSpace(ctx context.Context, req reqdto.RegisterSpaceRequest, photos []space.Photo) (*RegisterSpaceResult, error)
}

type spaceCommandsImpl struct {
	gateway         SpaceGateway
	priceCalculator reservation.PriceCalculator
	logger          *slog.Logger
}

func NewSpaceCommands(gateway SpaceGateway, priceCalculator reservation.PriceCalculator, logger *slog.Logger) SpaceCommands {
	return &spaceCommandsImpl{
		gateway:         gateway,
		priceCalculator: priceCalculator,
		logger:          logger,
	}
}

func (c *spaceCommandsImpl) RegisterSpace(ctx context.Context, req reqdto.RegisterSpaceRequest, photos []space.Photo) (*RegisterSpaceResult, error) {
	sp, err := req.ToDomain(photos)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.gateway.RegisterSpace(ctx, sp)
	if err != nil {
		return nil, infra.MarkUpstream(err)
	}

	c.logger.Info("space registered",
		slog.String("space_id", id.String()),
		slog.Int("photos", len(photos)),
		slog.Float64("available_hours", sp.AvailableHours()))

	return &RegisterSpaceResult{
		ID:      id,
		Summary: queries.Summarize(sp.Availability(), sp.PricePerHour(), c.priceCalculator),
	}, nil
}
