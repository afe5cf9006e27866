package ui

import (
	"fmt"
	"strconv"

	"github.com/RED1EYE/portfolio/internal/motion"
)

// ParallaxSpec is the hero's scroll-linked mapping.
type ParallaxSpec struct {
	Range      [2]float64 `json:"range"`
	Y          [2]float64 `json:"y"`
	Opacity    [2]float64 `json:"opacity"`
	Breakpoint float64    `json:"breakpoint"`
}

// HeroParallax is the mapping applied to the hero block.
var HeroParallax = ParallaxSpec{
	Range:      [2]float64{0, 0.3},
	Y:          [2]float64{0, 100},
	Opacity:    [2]float64{1, 0},
	Breakpoint: MobileBreakpoint,
}

// Frame is a computed visual offset for one element.
type Frame struct {
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
}

// At computes the frame for a scroll progress and viewport width. At or
// below the breakpoint the effect is off. An unknown width (0) counts as
// wide.
func (p ParallaxSpec) At(progress, width float64) Frame {
	if width > 0 && width <= p.Breakpoint {
		return Frame{Y: p.Y[0], Opacity: p.Opacity[0]}
	}
	in := p.Range[:]
	return Frame{
		Y:       motion.Transform(progress, in, p.Y[:]),
		Opacity: motion.Transform(progress, in, p.Opacity[:]),
	}
}

// Style renders the frame as inline CSS.
func (f Frame) Style() string {
	return motion.Props{motion.PropY: f.Y, motion.PropOpacity: f.Opacity}.Style()
}

// ScrollProgress converts a scroll offset into document progress in [0, 1].
func ScrollProgress(offset, docHeight, viewportHeight float64) float64 {
	scrollable := docHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp01(offset / scrollable)
}

// CursorSpec configures the pointer follower.
type CursorSpec struct {
	Offset      float64           `json:"offset"`
	HoverOffset float64           `json:"hoverOffset"`
	HoverScale  float64           `json:"hoverScale"`
	Breakpoint  float64           `json:"breakpoint"`
	Transition  motion.Transition `json:"transition"`
	ScaleTime   float64           `json:"scaleDuration"`
}

// CursorFollower is the pointer follower configuration.
var CursorFollower = CursorSpec{
	Offset:      10,
	HoverOffset: 20,
	HoverScale:  2,
	Breakpoint:  CursorBreakpoint,
	Transition:  motion.SpringTransition(200, 30),
	ScaleTime:   0.2,
}

// Cursor is the follower's target placement.
type Cursor struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
	Visible bool    `json:"visible"`
}

// At places the follower for the current state. It is hidden below the
// breakpoint; an unknown width leaves visibility to CSS and reports true.
func (c CursorSpec) At(s *State) Cursor {
	offset, scale := c.Offset, 1.0
	if s.Hovering {
		offset, scale = c.HoverOffset, c.HoverScale
	}
	w := s.Viewport.Width
	return Cursor{
		X:       s.Pointer.X - offset,
		Y:       s.Pointer.Y - offset,
		Scale:   scale,
		Visible: w <= 0 || w >= c.Breakpoint,
	}
}

// Style renders the placement as inline CSS. Position and scale use the
// individual transform properties so they can transition independently.
func (c Cursor) Style() string {
	return fmt.Sprintf("translate:%spx %spx;scale:%s",
		strconv.FormatFloat(c.X, 'f', -1, 64),
		strconv.FormatFloat(c.Y, 'f', -1, 64),
		strconv.FormatFloat(c.Scale, 'f', -1, 64))
}

// CSS is the transition for the follower: the spring moves it,
// a short tween scales it.
func (c CursorSpec) CSS() string {
	scale := motion.Tween(c.ScaleTime, motion.EaseOut)
	return c.Transition.CSS("translate") + ", " + scale.CSS("scale")
}
