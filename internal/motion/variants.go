package motion

import (
	"sort"
	"strings"
)

// Animated property keys understood by Props.Style.
const (
	PropOpacity  = "opacity"
	PropX        = "x"
	PropXPercent = "xPercent"
	PropY        = "y"
	PropScale    = "scale"
	PropRotate   = "rotate"
)

// Props is a set of animated property values. Translations are pixels
// unless the key says otherwise, rotation is in degrees.
type Props map[string]float64

// Style renders the props as an inline CSS declaration list.
func (p Props) Style() string {
	var decls []string
	if v, ok := p[PropOpacity]; ok {
		decls = append(decls, "opacity:"+num(v))
	}
	if t := p.transform(); t != "" {
		decls = append(decls, "transform:"+t)
	}
	return strings.Join(decls, ";")
}

// Properties lists the CSS properties Style touches.
func (p Props) Properties() []string {
	var out []string
	if _, ok := p[PropOpacity]; ok {
		out = append(out, "opacity")
	}
	if p.transform() != "" {
		out = append(out, "transform")
	}
	return out
}

func (p Props) transform() string {
	var parts []string

	x, hasX := p[PropX]
	xp, hasXP := p[PropXPercent]
	y, hasY := p[PropY]
	if hasX || hasXP || hasY {
		tx := num(x) + "px"
		if hasXP {
			tx = num(xp) + "%"
		}
		parts = append(parts, "translate3d("+tx+","+num(y)+"px,0)")
	}
	if v, ok := p[PropScale]; ok {
		parts = append(parts, "scale("+num(v)+")")
	}
	if v, ok := p[PropRotate]; ok {
		parts = append(parts, "rotate("+num(v)+"deg)")
	}
	return strings.Join(parts, " ")
}

// Variant state names.
const (
	Hidden  = "hidden"
	Visible = "visible"
	Closed  = "closed"
	Open    = "open"
)

// Target is one named state of an element: where it animates to and how.
type Target struct {
	Props      Props       `json:"props"`
	Transition *Transition `json:"transition,omitempty"`
}

// Variants maps state names to targets.
type Variants map[string]Target

// States returns the declared state names in sorted order.
func (v Variants) States() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transition returns the transition used to enter state, offset by
// extraDelay seconds. States without one use the default tween.
func (v Variants) Transition(state string, extraDelay float64) Transition {
	t := Tween(DefaultDuration, EaseOut)
	if target, ok := v[state]; ok && target.Transition != nil {
		t = *target.Transition
	}
	if extraDelay != 0 {
		t.Delay = round3(t.Delay + extraDelay)
	}
	return t
}

// Resolved is one state of an element ready for the document.
type Resolved struct {
	// Style is the inline style of the state.
	Style string
	// Transition is the CSS transition moving an element into the state.
	Transition string
	// Settle is the delay plus active time of that transition, in seconds.
	Settle float64
}

// Resolve renders state for the element at index in its list, offset by
// extraDelay seconds.
func (v Variants) Resolve(state string, extraDelay float64, index int) Resolved {
	props := v[state].Props
	t := v.Transition(state, extraDelay).ForIndex(index)
	return Resolved{
		Style:      props.Style(),
		Transition: t.CSS(props.Properties()...),
		Settle:     round3(t.Delay + t.Length()),
	}
}

// Pulse is a looping keyframe animation that swings scale and opacity from
// their first value to their second and back.
type Pulse struct {
	Scale    [2]float64 `json:"scale"`
	Opacity  [2]float64 `json:"opacity"`
	Duration float64    `json:"duration"`
	Delay    float64    `json:"delay,omitempty"`
	Ease     Ease       `json:"ease"`
}

// Style renders the pulse as CSS custom properties plus an animation
// shorthand referencing the shared "pulse" keyframes.
func (p Pulse) Style() string {
	decls := []string{
		"--pulse-s0:" + num(p.Scale[0]),
		"--pulse-s1:" + num(p.Scale[1]),
		"--pulse-o0:" + num(p.Opacity[0]),
		"--pulse-o1:" + num(p.Opacity[1]),
		"animation:pulse " + num(p.Duration) + "s " + p.Ease.CSS() + " " + num(p.Delay) + "s infinite",
	}
	return strings.Join(decls, ";")
}

// Hover is a cosmetic pointer-over affordance. Nothing is retained once
// the pointer leaves.
type Hover struct {
	Y            float64 `json:"y,omitempty"`
	X            float64 `json:"x,omitempty"`
	Scale        float64 `json:"scale,omitempty"`
	Rotate       float64 `json:"rotate,omitempty"`
	Duration     float64 `json:"duration"`
	OverlayScale float64 `json:"overlayScale,omitempty"`
}

// Style renders the affordance as CSS custom properties consumed by the
// stylesheet's :hover rules.
func (h Hover) Style() string {
	scale := h.Scale
	if scale == 0 {
		scale = 1
	}
	overlay := h.OverlayScale
	if overlay == 0 {
		overlay = 1
	}
	decls := []string{
		"--hover-x:" + num(h.X) + "px",
		"--hover-y:" + num(h.Y) + "px",
		"--hover-scale:" + num(scale),
		"--hover-rotate:" + num(h.Rotate) + "deg",
		"--hover-duration:" + num(h.Duration) + "s",
		"--overlay-from:" + num(overlay),
	}
	return strings.Join(decls, ";")
}
