package slot

// Mode is the toggle direction shared by every cell of one drag gesture.
type Mode int

const (
	ModeNone Mode = iota
	ModeAdd
	ModeRemove
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeRemove:
		return "remove"
	default:
		return "none"
	}
}

// CellKey identifies a grid cell across date columns.
type CellKey struct {
	Date DateKey
	Slot Slot
}

// ReleaseSource delivers pointer-up events that happen anywhere, including
// outside the grid. The returned cancel func must stop further deliveries.
type ReleaseSource interface {
	OnRelease(fn func()) (cancel func())
}

// DragSelector turns a pointer-down followed by pointer-enters into slot toggles
// that all use the direction picked at the origin cell.
type DragSelector struct {
	store   *Store
	release ReleaseSource

	mode          Mode
	visited       map[CellKey]struct{}
	cancelRelease func()
}

// NewDragSelector drives store. release may be nil when the caller ends
// gestures with Release itself.
func NewDragSelector(store *Store, release ReleaseSource) *DragSelector {
	return &DragSelector{store: store, release: release}
}

func (d *DragSelector) Dragging() bool { return d.mode != ModeNone }

func (d *DragSelector) Mode() Mode { return d.mode }

// PointerDown starts a gesture on an enabled cell. It reports whether a gesture started.
func (d *DragSelector) PointerDown(date DateKey, id Slot) bool {
	if !d.store.Enabled(date, id) {
		return false
	}
	if d.Dragging() {
		d.Release()
	}

	d.mode = ModeAdd
	if d.store.Has(date, id) {
		d.mode = ModeRemove
	}
	d.visited = make(map[CellKey]struct{})
	if d.release != nil {
		d.cancelRelease = d.release.OnRelease(d.Release)
	}

	d.apply(CellKey{Date: date, Slot: id})
	return true
}

// PointerEnter applies the gesture mode to a cell not yet visited in this gesture.
func (d *DragSelector) PointerEnter(date DateKey, id Slot) bool {
	if !d.Dragging() || !d.store.Enabled(date, id) {
		return false
	}
	key := CellKey{Date: date, Slot: id}
	if _, seen := d.visited[key]; seen {
		return false
	}
	d.apply(key)
	return true
}

// Release ends the gesture and drops the release subscription. Safe to call when idle.
func (d *DragSelector) Release() {
	if !d.Dragging() {
		return
	}
	d.mode = ModeNone
	d.visited = nil
	if cancel := d.cancelRelease; cancel != nil {
		d.cancelRelease = nil
		cancel()
	}
}

func (d *DragSelector) apply(key CellKey) {
	d.store.SetSlot(key.Date, key.Slot, d.mode == ModeAdd)
	d.visited[key] = struct{}{}
}

// PointerBus is an in-process ReleaseSource. Not safe for concurrent use.
type PointerBus struct {
	nextID int
	subs   map[int]func()
}

func NewPointerBus() *PointerBus {
	return &PointerBus{subs: make(map[int]func())}
}

func (b *PointerBus) OnRelease(fn func()) func() {
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

// Release notifies every current subscriber once.
func (b *PointerBus) Release() {
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

func (b *PointerBus) Subscribers() int {
	return len(b.subs)
}
