package ui

import (
	"errors"
)

// ErrMounted is returned when mounting a tracker that is already mounted.
var ErrMounted = errors.New("ui: tracker already mounted")

// ScrollEvent is a window scroll signal.
type ScrollEvent struct {
	Offset   float64
	Progress float64
}

// PointerEvent is a window pointer-move signal.
type PointerEvent struct {
	X, Y   float64
	Target *Element
}

// EventSource delivers window-level signals. Each subscription returns the
// func that removes it.
type EventSource interface {
	OnScroll(func(ScrollEvent)) (unsubscribe func())
	OnPointerMove(func(PointerEvent)) (unsubscribe func())
}

// Tracker keeps a State in sync with window scroll and pointer signals for
// as long as it is mounted.
type Tracker struct {
	state  *State
	unsubs []func()
}

// NewTracker returns an unmounted tracker writing to state.
func NewTracker(state *State) *Tracker {
	return &Tracker{state: state}
}

// Mount subscribes to src.
func (t *Tracker) Mount(src EventSource) error {
	if t.Mounted() {
		return ErrMounted
	}
	t.unsubs = []func(){
		src.OnScroll(t.state.HandleScroll),
		src.OnPointerMove(t.state.HandlePointerMove),
	}
	return nil
}

// Unmount removes every subscription. It is safe to call more than once.
func (t *Tracker) Unmount() {
	for _, unsub := range t.unsubs {
		unsub()
	}
	t.unsubs = nil
}

// Mounted reports whether the tracker currently holds subscriptions.
func (t *Tracker) Mounted() bool {
	return len(t.unsubs) > 0
}

// Dispatcher is an in-process EventSource. Events go synchronously to
// every current listener in subscription order.
type Dispatcher struct {
	nextID  int
	scroll  map[int]func(ScrollEvent)
	pointer map[int]func(PointerEvent)
	order   []int
}

// NewDispatcher returns a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		scroll:  make(map[int]func(ScrollEvent)),
		pointer: make(map[int]func(PointerEvent)),
	}
}

func (d *Dispatcher) add() int {
	d.nextID++
	d.order = append(d.order, d.nextID)
	return d.nextID
}

func (d *Dispatcher) remove(id int) {
	delete(d.scroll, id)
	delete(d.pointer, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

// OnScroll implements EventSource.
func (d *Dispatcher) OnScroll(fn func(ScrollEvent)) func() {
	id := d.add()
	d.scroll[id] = fn
	return func() { d.remove(id) }
}

// OnPointerMove implements EventSource.
func (d *Dispatcher) OnPointerMove(fn func(PointerEvent)) func() {
	id := d.add()
	d.pointer[id] = fn
	return func() { d.remove(id) }
}

// Scroll delivers a scroll event.
func (d *Dispatcher) Scroll(ev ScrollEvent) {
	for _, id := range d.order {
		if fn, ok := d.scroll[id]; ok {
			fn(ev)
		}
	}
}

// PointerMove delivers a pointer-move event.
func (d *Dispatcher) PointerMove(ev PointerEvent) {
	for _, id := range d.order {
		if fn, ok := d.pointer[id]; ok {
			fn(ev)
		}
	}
}

// Listeners is the number of live subscriptions.
func (d *Dispatcher) Listeners() int {
	return len(d.order)
}
