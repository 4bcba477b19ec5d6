//go:build unit

package slot_test

import (
	"testing"

	"gongsil-api/internal/domain/slot"

	"github.com/stretchr/testify/assert"
)

func TestDragSelector(t *testing.T) {
	t.Run("추가 모드에서 다시 들어온 셀은 토글하지 않는다", func(t *testing.T) {
		s := slot.NewStore()
		d := slot.NewDragSelector(s, nil)

		assert.True(t, d.PointerDown(day1, 1))
		assert.Equal(t, slot.ModeAdd, d.Mode())
		assert.True(t, d.PointerEnter(day1, 2))
		assert.True(t, d.PointerEnter(day1, 3))
		assert.False(t, d.PointerEnter(day1, 1))
		d.Release()

		assert.Equal(t, []slot.Slot{1, 2, 3}, s.Slots(day1))
		assert.False(t, d.Dragging())
	})

	t.Run("켜진 셀에서 시작하면 제거 모드", func(t *testing.T) {
		s := slot.NewStore()
		for _, id := range []slot.Slot{4, 5, 6} {
			s.SetSlot(day1, id, true)
		}
		d := slot.NewDragSelector(s, nil)

		d.PointerDown(day1, 5)
		assert.Equal(t, slot.ModeRemove, d.Mode())
		d.PointerEnter(day1, 6)
		d.PointerEnter(day1, 7)
		d.Release()

		assert.Equal(t, []slot.Slot{4}, s.Slots(day1))
	})

	t.Run("날짜 열마다 방문을 따로 기록", func(t *testing.T) {
		s := slot.NewStore()
		d := slot.NewDragSelector(s, nil)

		d.PointerDown(day1, 10)
		assert.True(t, d.PointerEnter(day2, 10))
		assert.False(t, d.PointerEnter(day2, 10))
		d.Release()

		assert.Equal(t, []slot.Slot{10}, s.Slots(day1))
		assert.Equal(t, []slot.Slot{10}, s.Slots(day2))
	})

	t.Run("드래그 중이 아니면 enter 무시", func(t *testing.T) {
		s := slot.NewStore()
		d := slot.NewDragSelector(s, nil)
		assert.False(t, d.PointerEnter(day1, 1))
		assert.Zero(t, s.TotalSlots())
	})

	t.Run("새 제스처는 방문 기록을 초기화", func(t *testing.T) {
		s := slot.NewStore()
		d := slot.NewDragSelector(s, nil)
		d.PointerDown(day1, 1)
		d.Release()

		d.PointerDown(day1, 2)
		assert.True(t, d.PointerEnter(day1, 1))
		d.Release()
		assert.Equal(t, []slot.Slot{2}, s.Slots(day1))
	})
}

func TestDragSelectorMask(t *testing.T) {
	host := slot.NewStore()
	for _, id := range []slot.Slot{3, 4, 6} {
		host.SetSlot(day1, id, true)
	}

	t.Run("비활성 슬롯에서 시작하지 않는다", func(t *testing.T) {
		guest := slot.NewMaskedStore(host)
		d := slot.NewDragSelector(guest, nil)

		assert.False(t, d.PointerDown(day1, 5))
		assert.False(t, d.Dragging())
		assert.Zero(t, guest.TotalSlots())
	})

	t.Run("드래그가 비활성 슬롯을 건너뛴다", func(t *testing.T) {
		guest := slot.NewMaskedStore(host)
		d := slot.NewDragSelector(guest, nil)

		d.PointerDown(day1, 3)
		d.PointerEnter(day1, 4)
		assert.False(t, d.PointerEnter(day1, 5))
		d.PointerEnter(day1, 6)
		d.Release()

		assert.Equal(t, []slot.Slot{3, 4, 6}, guest.Slots(day1))
	})
}

func TestDragSelectorGlobalRelease(t *testing.T) {
	bus := slot.NewPointerBus()
	s := slot.NewStore()
	d := slot.NewDragSelector(s, bus)

	assert.Zero(t, bus.Subscribers())

	d.PointerDown(day1, 1)
	assert.Equal(t, 1, bus.Subscribers())

	// pointer released outside the grid
	bus.Release()
	assert.False(t, d.Dragging())
	assert.Zero(t, bus.Subscribers())

	assert.False(t, d.PointerEnter(day1, 2))
	assert.Equal(t, []slot.Slot{1}, s.Slots(day1))

	t.Run("드래그 중 다시 누르면 구독은 하나", func(t *testing.T) {
		d.PointerDown(day1, 5)
		d.PointerDown(day1, 6)
		assert.Equal(t, 1, bus.Subscribers())
		d.Release()
		assert.Zero(t, bus.Subscribers())
	})
}
