package server

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/RED1EYE/portfolio/internal/ui"
)

// ErrBadSnapshot marks an unusable snapshot query.
var ErrBadSnapshot = errors.New("bad snapshot query")

// Snapshot query keys.
const (
	qScroll   = "scroll"
	qProgress = "progress"
	qX        = "x"
	qY        = "y"
	qOver     = "over"
	qMenu     = "menu"
	qSelect   = "select"
	qWidth    = "width"
	qHeight   = "height"
	qDoc      = "doc"
	qReveal   = "reveal"
)

var snapshotKeys = []string{qScroll, qProgress, qX, qY, qOver, qMenu, qSelect, qWidth, qHeight, qDoc, qReveal}

// IsSnapshot reports whether q asks for a specific UI state.
func IsSnapshot(q url.Values) bool {
	for _, k := range snapshotKeys {
		if q.Has(k) {
			return true
		}
	}
	return false
}

// ParseSnapshot replays the query as window signals against a fresh page
// state. Without snapshot keys the state is that of a page that has not
// mounted yet, so load animations still play.
//
// scroll and progress describe the same position. When only one is given,
// doc and height (document and viewport height) derive the other.
func ParseSnapshot(q url.Values) (*ui.State, error) {
	width, err := floatParam(q, qWidth, 0, -1)
	if err != nil {
		return nil, err
	}
	height, err := floatParam(q, qHeight, 0, -1)
	if err != nil {
		return nil, err
	}
	state := ui.NewState(ui.Viewport{Width: width, Height: height})
	if !IsSnapshot(q) {
		return state, nil
	}

	scroll, err := floatParam(q, qScroll, 0, -1)
	if err != nil {
		return nil, err
	}
	progress, err := floatParam(q, qProgress, 0, 1)
	if err != nil {
		return nil, err
	}
	doc, err := floatParam(q, qDoc, 0, -1)
	if err != nil {
		return nil, err
	}
	if hasScroll := q.Has(qScroll); hasScroll != q.Has(qProgress) {
		if doc == 0 || height == 0 {
			return nil, fmt.Errorf("%w: scroll and progress need each other, or doc and height", ErrBadSnapshot)
		}
		if hasScroll {
			progress = ui.ScrollProgress(scroll, doc, height)
		} else {
			scroll = progress * max(doc-height, 0)
		}
	}
	x, err := floatParam(q, qX, 0, -1)
	if err != nil {
		return nil, err
	}
	y, err := floatParam(q, qY, 0, -1)
	if err != nil {
		return nil, err
	}

	src := ui.NewDispatcher()
	tracker := ui.NewTracker(state)
	if err := tracker.Mount(src); err != nil {
		return nil, err
	}
	defer tracker.Unmount()

	state.Loaded()
	if q.Has(qScroll) || q.Has(qProgress) {
		src.Scroll(ui.ScrollEvent{Offset: scroll, Progress: progress})
	}
	if q.Has(qX) || q.Has(qY) || q.Has(qOver) {
		src.PointerMove(ui.PointerEvent{X: x, Y: y, Target: ui.ParsePath(q.Get(qOver))})
	}

	switch menu := q.Get(qMenu); menu {
	case "", "closed":
	case "open":
		state.Menu.Toggle()
	default:
		return nil, fmt.Errorf("%w: menu must be open or closed, got %q", ErrBadSnapshot, menu)
	}
	switch sel := q.Get(qSelect); sel {
	case "":
	case "link":
		state.Menu.SelectLink()
	default:
		return nil, fmt.Errorf("%w: select must be link, got %q", ErrBadSnapshot, sel)
	}

	if reveal := q.Get(qReveal); reveal == "all" {
		state.Reveals.RevealAll()
	} else if reveal != "" {
		for _, id := range strings.Split(reveal, ",") {
			if id = strings.TrimSpace(id); id != "" {
				state.Reveals.Register(id, 0)
				state.Reveals.Observe(id, 1)
			}
		}
	}

	return state, nil
}

// floatParam reads a non-negative number. A positive limit caps it.
func floatParam(q url.Values, key string, def, limit float64) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadSnapshot, key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || (limit > 0 && v > limit) {
		return 0, fmt.Errorf("%w: %s out of range: %s", ErrBadSnapshot, key, raw)
	}
	return v, nil
}
