//go:build unit

package slot_test

import (
	"testing"

	"gongsil-api/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	day1 slot.DateKey = "2025-01-01"
	day2 slot.DateKey = "2025-01-02"
)

func TestStoreSetSlot(t *testing.T) {
	t.Run("없는 날짜는 새로 만든다", func(t *testing.T) {
		s := slot.NewStore()
		s.SetSlot(day1, 3, true)
		assert.True(t, s.HasDate(day1))
		assert.Equal(t, []slot.Slot{3}, s.Slots(day1))
	})

	t.Run("두 번 켜도 한 번과 같다", func(t *testing.T) {
		once := slot.NewStore()
		once.SetSlot(day1, 3, true)
		twice := slot.NewStore()
		twice.SetSlot(day1, 3, true)
		twice.SetSlot(day1, 3, true)
		assert.Equal(t, once.Slots(day1), twice.Slots(day1))
	})

	t.Run("끄기", func(t *testing.T) {
		s := slot.NewStore()
		s.SetSlot(day1, 3, true)
		s.SetSlot(day1, 3, false)
		s.SetSlot(day1, 4, false)
		assert.True(t, s.HasDate(day1))
		assert.Empty(t, s.Slots(day1))
	})

	t.Run("범위 밖 슬롯은 무시", func(t *testing.T) {
		s := slot.NewStore()
		s.SetSlot(day1, 0, true)
		s.SetSlot(day1, 49, true)
		assert.False(t, s.HasDate(day1))
		assert.Zero(t, s.TotalSlots())
	})
}

func TestStoreSetAllForDate(t *testing.T) {
	s := slot.NewStore()
	s.SetAllForDate(day1, true)
	assert.Equal(t, slot.All(), s.Slots(day1))
	assert.Equal(t, 48, s.Len(day1))

	s.SetAllForDate(day1, false)
	assert.True(t, s.HasDate(day1))
	assert.Empty(t, s.Slots(day1))
}

func TestStoreTotals(t *testing.T) {
	s := slot.NewStore()
	for _, id := range []slot.Slot{1, 2, 3, 4} {
		s.SetSlot(day1, id, true)
	}
	s.SetSlot(day2, 10, true)

	assert.Equal(t, 5, s.TotalSlots())
	assert.InDelta(t, 2.5, s.TotalHours(), 1e-9)
}

func TestStoreDateLifecycle(t *testing.T) {
	s := slot.NewStore()
	s.SelectDate(day2)
	s.SetSlot(day1, 5, true)
	assert.Equal(t, []slot.DateKey{day1, day2}, s.Dates())

	s.RemoveDate(day1)
	assert.Equal(t, []slot.DateKey{day2}, s.Dates())

	s.Reset()
	assert.Empty(t, s.Dates())
}

func TestStoreEntries(t *testing.T) {
	s := slot.NewStore()
	s.SetSlot(day2, 9, true)
	s.SetSlot(day2, 2, true)
	s.SelectDate("2025-01-03")
	s.SetSlot(day1, 48, true)

	want := []slot.Entry{
		{Date: day1, Slots: []slot.Slot{48}},
		{Date: day2, Slots: []slot.Slot{2, 9}},
	}
	if diff := cmp.Diff(want, s.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []slot.Range{{Start: 2, End: 2}, {Start: 9, End: 9}}, s.Ranges(day2))
}

func TestMaskedStore(t *testing.T) {
	host := slot.NewStore()
	for _, id := range []slot.Slot{10, 11, 12} {
		host.SetSlot(day1, id, true)
	}

	t.Run("마스크 밖 슬롯은 바뀌지 않는다", func(t *testing.T) {
		guest := slot.NewMaskedStore(host)
		guest.SetSlot(day1, 5, true)
		guest.SetSlot(day1, 11, true)
		assert.Equal(t, []slot.Slot{11}, guest.Slots(day1))
		assert.False(t, guest.Enabled(day1, 5))
		assert.False(t, guest.Enabled(day2, 11))
	})

	t.Run("하루 전체 선택은 허용된 슬롯만", func(t *testing.T) {
		guest := slot.NewMaskedStore(host)
		guest.SetAllForDate(day1, true)
		assert.Equal(t, []slot.Slot{10, 11, 12}, guest.Slots(day1))
	})
}

func TestFromEntries(t *testing.T) {
	host := slot.NewStore()
	host.SetSlot(day1, 10, true)

	t.Run("정상 로드", func(t *testing.T) {
		s, err := slot.FromEntries([]slot.Entry{{Date: day1, Slots: []slot.Slot{10}}}, host)
		require.NoError(t, err)
		assert.Equal(t, 1, s.TotalSlots())
	})

	t.Run("범위 밖 슬롯 NG", func(t *testing.T) {
		_, err := slot.FromEntries([]slot.Entry{{Date: day1, Slots: []slot.Slot{49}}}, nil)
		assert.ErrorIs(t, err, slot.ErrInvalidSlot)
	})

	t.Run("마스크 밖 슬롯 NG", func(t *testing.T) {
		_, err := slot.FromEntries([]slot.Entry{{Date: day1, Slots: []slot.Slot{11}}}, host)
		assert.ErrorIs(t, err, slot.ErrSlotNotAllowed)
	})

	t.Run("날짜 형식 NG", func(t *testing.T) {
		_, err := slot.FromEntries([]slot.Entry{{Date: "01/02/2025", Slots: []slot.Slot{1}}}, nil)
		assert.ErrorIs(t, err, slot.ErrInvalidDate)
	})
}
