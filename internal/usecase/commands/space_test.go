//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/domain/space"
	reqdto "gongsil-api/internal/handler/dto/request"
	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/tests/common/builder"
	commandsmock "gongsil-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterSpace(t *testing.T) {
	setup := func(t *testing.T) (*commandsmock.MockSpaceGateway, commands.SpaceCommands) {
		ctrl := gomock.NewController(t)
		gateway := commandsmock.NewMockSpaceGateway(ctrl)
		return gateway, commands.NewSpaceCommands(gateway, reservation.NewHourlyPriceCalculator(), discardLogger())
	}

	t.Run("forwards the validated space and summarizes its timetable", func(t *testing.T) {
		gateway, cmds := setup(t)
		id := uuid.New()
		photos := []space.Photo{{Filename: "a.png", ContentType: "image/png", Data: []byte("png")}}

		gateway.EXPECT().RegisterSpace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sp *space.Space) (uuid.UUID, error) {
				assert.Equal(t, "성수 루프탑 스튜디오", sp.Name())
				assert.Len(t, sp.Photos(), 1)
				assert.Equal(t, []slot.Entry{
					{Date: "2030-05-01", Slots: []slot.Slot{19, 20, 21, 22}},
					{Date: "2030-05-02", Slots: []slot.Slot{27, 28}},
				}, sp.Availability().Entries())
				return id, nil
			})

		result, err := cmds.RegisterSpace(context.Background(), builder.NewSpaceBuilder().BuildRequestDTO(), photos)
		require.NoError(t, err)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, 6, result.Summary.TotalSlots)
		assert.Equal(t, int64(60000), result.Summary.TotalPrice)
	})

	t.Run("domain failures never reach the origin", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.SpaceBuilder)
			req    func(*reqdto.RegisterSpaceRequest)
			cause  error
		}{
			{name: "blank name", mutate: func(b *builder.SpaceBuilder) { b.Name = "   " }, cause: space.ErrEmptySpaceName},
			{name: "no slots", mutate: func(b *builder.SpaceBuilder) { b.TimeTable = nil }, cause: space.ErrEmptyTimeTable},
			{name: "zero capacity", mutate: func(b *builder.SpaceBuilder) { b.MaxPeople = 0 }, cause: space.ErrInvalidMaxPeople},
			{
				name: "slot 49",
				req: func(r *reqdto.RegisterSpaceRequest) {
					r.EnrollmentTimeTable = []reqdto.TimeTableDate{{Date: "2030-05-01", AvailableSlot: []reqdto.SlotItem{{Slot: 49}}}}
				},
				cause: slot.ErrInvalidSlot,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, cmds := setup(t)
				b := builder.NewSpaceBuilder()
				if tt.mutate != nil {
					b.With(tt.mutate)
				}
				req := b.BuildRequestDTO()
				if tt.req != nil {
					tt.req(&req)
				}

				_, err := cmds.RegisterSpace(context.Background(), req, nil)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got %v", err)
				assert.True(t, errs.Is(err, tt.cause), "got %v", err)
			})
		}
	})

	t.Run("origin rejection is marked", func(t *testing.T) {
		gateway, cmds := setup(t)
		gateway.EXPECT().RegisterSpace(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapUpstreamErr(discardLogger(), infra.KindRejected, http.StatusBadRequest, "register space", nil))

		_, err := cmds.RegisterSpace(context.Background(), builder.NewSpaceBuilder().BuildRequestDTO(), nil)
		assert.True(t, errs.Is(err, errs.ErrUpstreamRejected), "got %v", err)
	})
}
