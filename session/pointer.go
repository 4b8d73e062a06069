package session

// gesture tracks one down/move/up pointer stroke.
type gesture struct {
	down   bool
	last   [2]int
	inCell bool // last holds a cell of the current stroke
}

// PointerDown starts a stroke at pixel (px, py) and toggles the cell
// under it.
func (s *Session) PointerDown(px, py int) {
	s.pointer = gesture{down: true}
	g := s.editing()
	x, y, ok := s.painter.CellAt(px, py, g.Width(), g.Height())
	if !ok {
		s.logf("pointer down at (%d,%d) outside the grid", px, py)
		return
	}
	if _, err := g.Toggle(x, y); err != nil {
		s.logf("pointer down: %v", err)
		return
	}
	s.pointer.last, s.pointer.inCell = [2]int{x, y}, true
	s.repaintCell(x, y)
}

// PointerMove paints cells alive while a stroke is in progress. A cell is
// painted once each time the pointer enters it.
func (s *Session) PointerMove(px, py int) {
	if !s.pointer.down {
		return
	}
	g := s.editing()
	x, y, ok := s.painter.CellAt(px, py, g.Width(), g.Height())
	if !ok {
		s.pointer.inCell = false
		return
	}
	if s.pointer.inCell && s.pointer.last == [2]int{x, y} {
		return
	}
	s.pointer.last, s.pointer.inCell = [2]int{x, y}, true
	if g.Alive(x, y) {
		return
	}
	if err := g.Set(x, y, true); err != nil {
		s.logf("pointer move: %v", err)
		return
	}
	s.repaintCell(x, y)
}

// PointerUp ends the current stroke.
func (s *Session) PointerUp() {
	s.pointer = gesture{}
}

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.pointer.down }
