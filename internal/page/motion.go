package page

import (
	"html"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/RED1EYE/portfolio/internal/motion"
	"github.com/RED1EYE/portfolio/internal/ui"
)

// Motion is a two-state animated element as rendered into the document.
// Reveal blocks move from hidden to visible once; toggles (the drawer and
// its items) move both ways.
type Motion struct {
	ID string
	// Trigger names the block whose reveal also reveals this one. Empty
	// means the element is observed on its own.
	Trigger string
	Amount  float64
	Toggle  bool
	Active  bool

	From  string
	To    string
	Enter string
	Leave string
	// Settle is how long, in milliseconds, entering takes including delay.
	Settle int
	// Extra is static style kept in both states.
	Extra string
}

// Style is the inline style for the current state.
func (m Motion) Style() string {
	s := m.From
	if m.Active {
		s = m.To
	}
	if m.Extra != "" {
		if s != "" {
			s += ";"
		}
		s += m.Extra
	}
	return s
}

// State names the current state the way the client script does.
func (m Motion) State() string {
	switch {
	case m.Toggle && m.Active:
		return motion.Open
	case m.Toggle:
		return motion.Closed
	case m.Active:
		return motion.Visible
	default:
		return motion.Hidden
	}
}

// Attrs renders the data attributes and inline style consumed by app.js.
func (m Motion) Attrs() template.HTMLAttr {
	var b strings.Builder
	attr := func(name, value string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}

	if m.Toggle {
		attr("data-toggle", m.ID)
		attr("data-leave", m.Leave)
	} else {
		attr("data-reveal", m.ID)
		if m.Trigger != "" {
			attr("data-trigger", m.Trigger)
		} else {
			attr("data-amount", strconv.FormatFloat(m.Amount, 'f', -1, 64))
		}
	}
	attr("data-state", m.State())
	attr("data-from", m.From)
	attr("data-to", m.To)
	attr("data-enter", m.Enter)
	attr("data-settle", strconv.Itoa(m.Settle))
	if m.Extra != "" {
		attr("data-extra", m.Extra)
	}
	if style := m.Style(); style != "" {
		attr("style", style)
	}
	return template.HTMLAttr(b.String())
}

// block describes one animated element before it is resolved against the
// catalog and the UI state.
type block struct {
	id      string
	variant string
	trigger string
	amount  float64
	delay   float64
	index   int
	extra   string
}

// builder resolves blocks. The first catalog error sticks.
type builder struct {
	state       *ui.State
	catalog     motion.Catalog
	placeholder string
	err         error
}

func (b *builder) variants(name string) motion.Variants {
	v, err := b.catalog.Get(name)
	if err != nil && b.err == nil {
		b.err = err
	}
	return v
}

// reveal resolves a one-shot hidden to visible block.
func (b *builder) reveal(bl block) Motion {
	v := b.variants(bl.variant)
	if v == nil {
		return Motion{ID: bl.id}
	}

	var active bool
	if bl.trigger == "" {
		active = b.state.Reveals.Register(bl.id, bl.amount).IsRevealed()
	} else {
		active = b.state.Reveals.IsRevealed(bl.trigger)
	}

	enter := v.Resolve(motion.Visible, bl.delay, bl.index)
	return Motion{
		ID:      bl.id,
		Trigger: bl.trigger,
		Amount:  bl.amount,
		Active:  active,
		From:    v.Resolve(motion.Hidden, 0, 0).Style,
		To:      enter.Style,
		Enter:   enter.Transition,
		Settle:  settle(enter),
		Extra:   bl.extra,
	}
}

// toggle resolves a closed/open element such as the drawer.
func (b *builder) toggle(id, variant string, index int, open bool) Motion {
	v := b.variants(variant)
	if v == nil {
		return Motion{ID: id, Toggle: true}
	}

	enter := v.Resolve(motion.Open, 0, index)
	leave := v.Resolve(motion.Closed, 0, 0)
	return Motion{
		ID:     id,
		Toggle: true,
		Active: open,
		From:   leave.Style,
		To:     enter.Style,
		Enter:  enter.Transition,
		Leave:  leave.Transition,
		Settle: max(settle(enter), settle(leave)),
	}
}

func settle(r motion.Resolved) int {
	return int(math.Round(r.Settle * 1000))
}
