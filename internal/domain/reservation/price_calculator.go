package reservation

import "gongsil-api/internal/domain/slot"

type PriceCalculator interface {
	CalculatePrice(pricePerHour int64, slots *slot.Store) Money
}

// HourlyPriceCalculator charges the hourly price for every half-hour slot pro rata.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) CalculatePrice(pricePerHour int64, slots *slot.Store) Money {
	hours := slots.TotalHours()
	return NewMoney(int64(hours * float64(pricePerHour)))
}
