package response

import (
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterSpaceResponse struct {
	ID      uuid.UUID       `json:"id"`
	Summary SummaryResponse `json:"summary"`
}

type AvailabilityResponse struct {
	SpaceID             uuid.UUID       `json:"spaceId"`
	Name                string          `json:"name"`
	MaxPeople           int             `json:"maxPeople"`
	Price               int64           `json:"price"`
	EnrollmentTimeTable []TimeTableDate `json:"enrollmentTimeTable"`
	Summary             SummaryResponse `json:"summary"`
}

func FromRegisterSpaceResult(r *commands.RegisterSpaceResult) *RegisterSpaceResponse {
	return &RegisterSpaceResponse{
		ID:      r.ID,
		Summary: FromSummary(r.Summary),
	}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		SpaceID:             v.SpaceID,
		Name:                v.Name,
		MaxPeople:           v.MaxPeople,
		Price:               v.PricePerHour,
		EnrollmentTimeTable: FromEntries(v.TimeTable),
		Summary:             FromSummary(v.Summary),
	}
}
