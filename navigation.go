package main

// moveCursor moves the card selection across the grid
func (m *model) moveCursor(dx, dy int) {
	if len(m.books) == 0 {
		return
	}
	next := m.cursor + dx + dy*m.columns()
	if next < 0 || next >= len(m.books) {
		return
	}
	m.cursor = next
	m.refreshBody()
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls so the selected card row is on screen
func (m *model) ensureCursorVisible() {
	top := (m.cursor / m.columns()) * cardHeight
	bottom := top + cardHeight
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// columns is how many cards fit side by side
func (m *model) columns() int {
	return max(1, m.width/cardWidth)
}
