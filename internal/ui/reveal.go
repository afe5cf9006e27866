package ui

// RevealState is the state of a reveal-on-view block.
type RevealState int

const (
	Unseen RevealState = iota
	Revealed
)

func (s RevealState) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "unseen"
}

// Reveal is a one-shot block animation trigger. The only transition is
// Unseen to Revealed, taken the first time enough of the block is visible.
type Reveal struct {
	ID     string
	Amount float64
	state  RevealState
}

// Observe feeds the block's current intersection ratio and reports
// whether this call revealed it. Amount 0 reveals on any intersection.
func (r *Reveal) Observe(ratio float64) bool {
	if r.state == Revealed {
		return false
	}
	if ratio <= 0 || ratio < r.Amount {
		return false
	}
	r.state = Revealed
	return true
}

// State returns the current state.
func (r *Reveal) State() RevealState {
	return r.state
}

// IsRevealed reports whether the block has been revealed.
func (r *Reveal) IsRevealed() bool {
	return r.state == Revealed
}

// RevealSet tracks the reveal blocks of one page, in registration order.
type RevealSet struct {
	blocks map[string]*Reveal
	order  []string
	all    bool
}

// NewRevealSet returns an empty set.
func NewRevealSet() *RevealSet {
	return &RevealSet{blocks: make(map[string]*Reveal)}
}

// Register adds a block, or returns the existing one with that ID.
func (s *RevealSet) Register(id string, amount float64) *Reveal {
	if r, ok := s.blocks[id]; ok {
		return r
	}
	r := &Reveal{ID: id, Amount: amount}
	if s.all {
		r.state = Revealed
	}
	s.blocks[id] = r
	s.order = append(s.order, id)
	return r
}

// Observe feeds an intersection ratio to a registered block. Unknown IDs
// are ignored.
func (s *RevealSet) Observe(id string, ratio float64) bool {
	r, ok := s.blocks[id]
	if !ok {
		return false
	}
	return r.Observe(ratio)
}

// IsRevealed reports whether id has been revealed. Unregistered IDs are
// revealed only after RevealAll.
func (s *RevealSet) IsRevealed(id string) bool {
	if r, ok := s.blocks[id]; ok {
		return r.IsRevealed()
	}
	return s.all
}

// RevealAll reveals every current and future block.
func (s *RevealSet) RevealAll() {
	s.all = true
	for _, r := range s.blocks {
		r.state = Revealed
	}
}

// IDs returns the registered block IDs in registration order.
func (s *RevealSet) IDs() []string {
	return append([]string(nil), s.order...)
}
