//go:build unit || e2e

package builder

import (
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/domain/space"
	reqdto "gongsil-api/internal/handler/dto/request"
)

type SpaceBuilder struct {
	Name         string
	PhoneNumber  string
	Address      string
	Account      string
	MaxPeople    int
	PricePerHour int64
	Memo         string
	OptionList   []string
	ChipList     []string
	TimeTable    []slot.Entry
	Photos       []space.Photo
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		Name:         "성수 루프탑 스튜디오",
		PhoneNumber:  "010-1234-5678",
		Address:      "서울 성동구 성수이로 1",
		Account:      "국민 123456-01-123456",
		MaxPeople:    8,
		PricePerHour: 20000,
		Memo:         "주차 1대 가능",
		OptionList:   []string{"wifi", "projector"},
		ChipList:     []string{"루프탑"},
		TimeTable: []slot.Entry{
			{Date: "2030-05-01", Slots: []slot.Slot{19, 20, 21, 22}},
			{Date: "2030-05-02", Slots: []slot.Slot{27, 28}},
		},
	}
}

func (b *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(b)
	return b
}

func (b *SpaceBuilder) Params() space.Params {
	return space.Params{
		Name:         b.Name,
		PhoneNumber:  b.PhoneNumber,
		Address:      b.Address,
		Account:      b.Account,
		MaxPeople:    b.MaxPeople,
		PricePerHour: b.PricePerHour,
		Memo:         b.Memo,
		OptionList:   b.OptionList,
		ChipList:     b.ChipList,
		Photos:       b.Photos,
	}
}

func (b *SpaceBuilder) Availability() *slot.Store {
	s := slot.NewStore()
	for _, e := range b.TimeTable {
		s.SelectDate(e.Date)
		for _, id := range e.Slots {
			s.SetSlot(e.Date, id, true)
		}
	}
	return s
}

func (b *SpaceBuilder) BuildDomain() (*space.Space, error) {
	return space.NewSpace(b.Params(), b.Availability())
}

func (b *SpaceBuilder) BuildRequestDTO() reqdto.RegisterSpaceRequest {
	table := make([]reqdto.TimeTableDate, 0, len(b.TimeTable))
	for _, e := range b.TimeTable {
		slots := make([]reqdto.SlotItem, 0, len(e.Slots))
		for _, id := range e.Slots {
			slots = append(slots, reqdto.SlotItem{Slot: id.Int()})
		}
		table = append(table, reqdto.TimeTableDate{Date: e.Date.String(), AvailableSlot: slots})
	}
	return reqdto.RegisterSpaceRequest{
		Name:                b.Name,
		PhoneNumber:         b.PhoneNumber,
		Address:             b.Address,
		Account:             b.Account,
		MaxPeople:           b.MaxPeople,
		Price:               b.PricePerHour,
		Memo:                b.Memo,
		OptionList:          b.OptionList,
		ChipList:            b.ChipList,
		EnrollmentTimeTable: table,
	}
}
