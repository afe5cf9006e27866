package ui

import "strings"

// Element is the minimal view of a DOM node needed for hover detection.
type Element struct {
	Tag    string
	Role   string
	Parent *Element
}

// Closest returns e or its nearest ancestor matching match, or nil.
func (e *Element) Closest(match func(*Element) bool) *Element {
	for n := e; n != nil; n = n.Parent {
		if match(n) {
			return n
		}
	}
	return nil
}

// isInteractiveNode matches anchors, buttons and explicit button roles.
func isInteractiveNode(e *Element) bool {
	switch strings.ToLower(e.Tag) {
	case "a", "button":
		return true
	}
	return strings.EqualFold(e.Role, "button")
}

// IsInteractive reports whether target sits on or inside an interactive
// element.
func IsInteractive(target *Element) bool {
	return target.Closest(isInteractiveNode) != nil
}

// ParsePath builds an element chain from a path such as
// "section>a>span" or "div[button]", outermost first, and returns the
// innermost element. A bracketed suffix sets the role.
func ParsePath(path string) *Element {
	var cur *Element
	for _, seg := range strings.Split(path, ">") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		el := &Element{Tag: seg, Parent: cur}
		if i := strings.IndexByte(seg, '['); i >= 0 && strings.HasSuffix(seg, "]") {
			el.Tag = seg[:i]
			el.Role = seg[i+1 : len(seg)-1]
		}
		cur = el
	}
	return cur
}
