//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("정상 요청", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.SpaceID, actual.SpaceID())
		assert.Equal(t, reservation.StatusRequested, actual.Status())
		assert.Equal(t, "김게스트", actual.Guest().Name())
		assert.Equal(t, 4, actual.People())
		assert.InDelta(t, 1.5, actual.TotalHours(), 0)
		assert.Equal(t, int64(30000), actual.Price().Won())
		assert.Equal(t, "촬영 목적", actual.Note().String())

		want := []slot.Entry{{Date: "2030-05-01", Slots: []slot.Slot{19, 20, 21}}}
		if diff := cmp.Diff(want, actual.Entries()); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("2.5시간 요금", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.PricePerHour = 15000
			b.Entries = []slot.Entry{
				{Date: "2030-05-01", Slots: []slot.Slot{19, 20, 21}},
				{Date: "2030-05-02", Slots: []slot.Slot{27, 28}},
			}
		}).BuildDomain()
		require.NoError(t, err)
		assert.InDelta(t, 2.5, actual.TotalHours(), 0)
		assert.Equal(t, int64(37500), actual.Price().Won())
	})

	t.Run("당일 예약은 허용", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Now = time.Date(2030, 5, 1, 23, 0, 0, 0, time.FixedZone("KST", 9*60*60))
		}).BuildDomain()
		assert.NoError(t, err)
	})

	t.Run("검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "지난 날짜",
				mutate: func(b *builder.ReservationBuilder) { b.Now = time.Date(2030, 5, 2, 0, 0, 0, 0, time.UTC) },
				errIs:  reservation.ErrPastDate,
			},
			{
				name:   "슬롯 없음",
				mutate: func(b *builder.ReservationBuilder) { b.Entries = []slot.Entry{{Date: "2030-05-01"}} },
				errIs:  reservation.ErrNoSlots,
			},
			{
				name: "공개되지 않은 슬롯",
				mutate: func(b *builder.ReservationBuilder) {
					b.Entries = []slot.Entry{{Date: "2030-05-01", Slots: []slot.Slot{18, 19}}}
				},
				errIs: slot.ErrSlotNotAllowed,
			},
			{
				name: "공개되지 않은 날짜",
				mutate: func(b *builder.ReservationBuilder) {
					b.Entries = []slot.Entry{{Date: "2030-05-03", Slots: []slot.Slot{19}}}
				},
				errIs: slot.ErrSlotNotAllowed,
			},
			{
				name: "범위 밖 슬롯",
				mutate: func(b *builder.ReservationBuilder) {
					b.Entries = []slot.Entry{{Date: "2030-05-01", Slots: []slot.Slot{49}}}
				},
				errIs: slot.ErrInvalidSlot,
			},
			{
				name: "잘못된 날짜",
				mutate: func(b *builder.ReservationBuilder) {
					b.Entries = []slot.Entry{{Date: "2030-5-1", Slots: []slot.Slot{19}}}
				},
				errIs: slot.ErrInvalidDate,
			},
			{
				name:   "인원 0명",
				mutate: func(b *builder.ReservationBuilder) { b.People = 0 },
				errIs:  reservation.ErrInvalidPeople,
			},
			{
				name:   "최대 인원",
				mutate: func(b *builder.ReservationBuilder) { b.People = 8 },
			},
			{
				name:   "최대 인원 초과",
				mutate: func(b *builder.ReservationBuilder) { b.People = 9 },
				errIs:  reservation.ErrInvalidPeople,
			},
			{
				name:   "빈 게스트 이름",
				mutate: func(b *builder.ReservationBuilder) { b.GuestName = " " },
				errIs:  reservation.ErrEmptyGuestName,
			},
			{
				name:   "휴대전화가 아닌 번호",
				mutate: func(b *builder.ReservationBuilder) { b.PhoneNumber = "02-123-4567" },
				errIs:  reservation.ErrInvalidGuestPhone,
			},
			{
				name:   "너무 긴 메모",
				mutate: func(b *builder.ReservationBuilder) { b.Note = strings.Repeat("a", reservation.MaxNoteLength+1) },
				errIs:  reservation.ErrNoteTooLong,
			},
		})
	})
}

func TestHourlyPriceCalculator(t *testing.T) {
	s := slot.NewStore()
	s.SetSlot("2030-05-01", 1, true)
	pc := reservation.NewHourlyPriceCalculator()
	assert.Equal(t, int64(5000), pc.CalculatePrice(10000, s).Won())
	assert.Equal(t, int64(0), pc.CalculatePrice(10000, slot.NewStore()).Won())
}

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(300), reservation.NewMoney(100).Add(reservation.NewMoney(200)).Won())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
