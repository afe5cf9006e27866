// Package ui models the page's transient interaction state: scroll flag,
// pointer position, hover flag, mobile drawer and one-shot reveals.
//
// Values here are owned by a single event loop. They are not safe for
// concurrent mutation; each rendering of the page builds its own State.
package ui

// Viewport breakpoints in CSS pixels.
const (
	// MobileBreakpoint is the width below which the drawer replaces the
	// desktop nav. Parallax is disabled at or below it.
	MobileBreakpoint = 768
	// CursorBreakpoint is the width from which the pointer follower shows.
	CursorBreakpoint = 1024
)

// LoadBlock is the pseudo reveal block that fires once the page mounts.
// Blocks triggered by it animate in on load rather than on view.
const LoadBlock = "load"

// ScrollThreshold is the vertical offset past which the nav turns opaque.
const ScrollThreshold = 50

// Point is a pointer position in viewport coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the host window size. A zero Width means unknown, in which
// case layout decisions are left to CSS media queries.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// State is the page's UI state container. Handlers overwrite fields in
// place; renderers read them.
type State struct {
	Scrolled bool   `json:"scrolled"`
	Pointer  Point  `json:"pointer"`
	Hovering bool   `json:"hovering"`
	Menu     Drawer `json:"menu"`

	// Progress is document scroll progress in [0, 1].
	Progress float64    `json:"progress"`
	Viewport Viewport   `json:"viewport"`
	Reveals  *RevealSet `json:"-"`
}

// NewState returns the state of a freshly loaded page.
func NewState(vp Viewport) *State {
	return &State{
		Viewport: vp,
		Reveals:  NewRevealSet(),
	}
}

// Loaded marks the page as mounted.
func (s *State) Loaded() {
	s.Reveals.Register(LoadBlock, 0).Observe(1)
}

// IsLoaded reports whether Loaded has been called.
func (s *State) IsLoaded() bool {
	return s.Reveals.IsRevealed(LoadBlock)
}

// HandleScroll applies a scroll signal.
func (s *State) HandleScroll(ev ScrollEvent) {
	s.Scrolled = IsScrolled(ev.Offset)
	s.Progress = clamp01(ev.Progress)
}

// HandlePointerMove applies a pointer-move signal.
func (s *State) HandlePointerMove(ev PointerEvent) {
	s.Pointer = Point{X: ev.X, Y: ev.Y}
	s.Hovering = IsInteractive(ev.Target)
}

// IsScrolled reports whether offset is past ScrollThreshold. The boundary
// itself counts as not scrolled.
func IsScrolled(offset float64) bool {
	return offset > ScrollThreshold
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
