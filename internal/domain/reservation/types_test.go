//go:build unit

package reservation_test

import (
	"testing"

	"gongsil-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want reservation.Status
	}{
		{raw: "requested", want: reservation.StatusRequested},
		{raw: "CONFIRMED", want: reservation.StatusConfirmed},
		{raw: " canceled ", want: reservation.StatusCanceled},
		{raw: "cancelled", want: reservation.StatusCanceled},
		{raw: "", want: reservation.StatusRequested},
		{raw: "pending-payment", want: reservation.StatusRequested},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.ParseStatus(tt.raw))
		})
	}
}
