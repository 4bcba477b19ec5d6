package response

import (
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	SpaceID uuid.UUID       `json:"spaceId"`
	People  int             `json:"people"`
	Summary SummaryResponse `json:"summary"`
}

type ReservationResponse struct {
	ID      uuid.UUID       `json:"id"`
	SpaceID uuid.UUID       `json:"spaceId"`
	Status  string          `json:"status"`
	People  int             `json:"people"`
	Summary SummaryResponse `json:"summary"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		SpaceID: v.SpaceID,
		People:  v.People,
		Summary: FromSummary(v.Summary),
	}
}

func FromCreateReservationResult(r *commands.CreateReservationResult) *ReservationResponse {
	return &ReservationResponse{
		ID:      r.ID,
		SpaceID: r.SpaceID,
		Status:  r.Status.String(),
		People:  r.People,
		Summary: FromSummary(r.Summary),
	}
}
