package motion

import (
	"fmt"
	"math"
)

// Ease names an easing curve. The named curves are the usual CSS
// cubic-bezier presets.
type Ease string

const (
	Linear    Ease = "linear"
	EaseIn    Ease = "easeIn"
	EaseOut   Ease = "easeOut"
	EaseInOut Ease = "easeInOut"
)

var bezierPoints = map[Ease][4]float64{
	Linear:    {0, 0, 1, 1},
	EaseIn:    {0.42, 0, 1, 1},
	EaseOut:   {0, 0, 0.58, 1},
	EaseInOut: {0.42, 0, 0.58, 1},
}

// Bezier returns the control points (x1, y1, x2, y2). Unknown names fall back to linear.
func (e Ease) Bezier() [4]float64 {
	if p, ok := bezierPoints[e]; ok {
		return p
	}
	return bezierPoints[Linear]
}

// CSS renders the curve as a CSS timing function.
func (e Ease) CSS() string {
	if e == Linear || e == "" {
		return "linear"
	}
	p := e.Bezier()
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", num(p[0]), num(p[1]), num(p[2]), num(p[3]))
}

// At evaluates the curve for a time fraction t in [0, 1].
func (e Ease) At(t float64) float64 {
	t = clamp01(t)
	p := e.Bezier()
	if p[0] == p[1] && p[2] == p[3] {
		return t
	}
	s := solveBezierX(t, p[0], p[2])
	return bezier(s, p[1], p[3])
}

// bezier evaluates one axis of a cubic bezier anchored at 0 and 1.
func bezier(s, c1, c2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*c1 + 3*inv*s*s*c2 + s*s*s
}

func bezierSlope(s, c1, c2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*c1 + 6*inv*s*(c2-c1) + 3*s*s*(1-c2)
}

// solveBezierX finds the curve parameter whose x equals x. Newton first,
// bisection when the slope is too flat to trust.
func solveBezierX(x, x1, x2 float64) float64 {
	s := x
	for i := 0; i < 8; i++ {
		diff := bezier(s, x1, x2) - x
		if math.Abs(diff) < 1e-7 {
			return s
		}
		slope := bezierSlope(s, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= diff / slope
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 50; i++ {
		v := bezier(s, x1, x2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
