package request

import (
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/domain/space"
)

// RegisterSpaceRequest is the host submission. Multipart uploads carry it as the "data" part.
type RegisterSpaceRequest struct {
	Name                string          `json:"name" binding:"required"`
	PhoneNumber         string          `json:"phoneNumber" binding:"required"`
	Address             string          `json:"address" binding:"required"`
	Account             string          `json:"account"`
	MaxPeople           int             `json:"maxPeople"`
	Price               int64           `json:"price"`
	Memo                string          `json:"memo"`
	OptionList          []string        `json:"optionList"`
	ChipList            []string        `json:"chipList"`
	EnrollmentTimeTable []TimeTableDate `json:"enrollmentTimeTable"`
}

func (r RegisterSpaceRequest) ToDomain(photos []space.Photo) (*space.Space, error) {
	entries, err := ToEntries(r.EnrollmentTimeTable)
	if err != nil {
		return nil, err
	}
	availability, err := slot.FromEntries(entries, nil)
	if err != nil {
		return nil, err
	}

	return space.NewSpace(space.Params{
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		Account:      r.Account,
		MaxPeople:    r.MaxPeople,
		PricePerHour: r.Price,
		Memo:         r.Memo,
		OptionList:   r.OptionList,
		ChipList:     r.ChipList,
		Photos:       photos,
	}, availability)
}
