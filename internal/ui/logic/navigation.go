package logic

// Range is a half-open span of row indices [From, To)
type Range struct {
	From int
	To   int
}

// Empty reports whether the range holds no rows
func (r Range) Empty() bool {
	return r.To <= r.From
}

// Contains reports whether index lies in the range
func (r Range) Contains(index int) bool {
	return index >= r.From && index < r.To
}

// Navigator handles scrolling and viewport management for a flat list
type Navigator struct {
	itemCount      int
	viewportOffset int
	viewportHeight int
}

// NewNavigator creates a navigator for itemCount rows
func NewNavigator(itemCount int) *Navigator {
	return &Navigator{itemCount: itemCount}
}

// ItemCount returns the number of rows
func (n *Navigator) ItemCount() int {
	return n.itemCount
}

// GetViewportOffset returns the index of the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns the number of visible rows
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight changes the visible row count and keeps the offset in
// bounds. It reports whether the offset had to move.
func (n *Navigator) SetViewportHeight(height int) bool {
	if height < 0 {
		height = 0
	}
	n.viewportHeight = height
	return n.setOffset(n.viewportOffset)
}

// MaxOffset returns the largest offset that still fills the viewport
func (n *Navigator) MaxOffset() int {
	limit := n.itemCount - n.viewportHeight
	if limit < 0 {
		return 0
	}
	return limit
}

// ScrollBy moves the viewport by delta rows and reports whether it moved
func (n *Navigator) ScrollBy(delta int) bool {
	return n.setOffset(n.viewportOffset + delta)
}

// PageDown scrolls forward by one viewport
func (n *Navigator) PageDown() bool {
	return n.ScrollBy(n.pageSize())
}

// PageUp scrolls back by one viewport
func (n *Navigator) PageUp() bool {
	return n.ScrollBy(-n.pageSize())
}

// GoToTop scrolls to the first row
func (n *Navigator) GoToTop() bool {
	return n.setOffset(0)
}

// GoToBottom scrolls so the last row is visible
func (n *Navigator) GoToBottom() bool {
	return n.setOffset(n.MaxOffset())
}

// VisibleRange returns the rows currently inside the viewport
func (n *Navigator) VisibleRange() Range {
	from := n.viewportOffset
	to := from + n.viewportHeight
	if to > n.itemCount {
		to = n.itemCount
	}
	if from > to {
		from = to
	}
	return Range{From: from, To: to}
}

// NewlyVisible lists the rows in next that were not in prev, in the order a
// scrolling list reveals them: ascending when the list moved forward,
// descending when it moved back.
func NewlyVisible(prev, next Range) []int {
	var rows []int
	if prev.Empty() {
		for i := next.From; i < next.To; i++ {
			rows = append(rows, i)
		}
		return rows
	}
	if next.From < prev.From {
		for i := min(prev.From, next.To) - 1; i >= next.From; i-- {
			rows = append(rows, i)
		}
	}
	for i := max(prev.To, next.From); i < next.To; i++ {
		if !prev.Contains(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

func (n *Navigator) pageSize() int {
	if n.viewportHeight > 1 {
		return n.viewportHeight - 1
	}
	return 1
}

func (n *Navigator) setOffset(offset int) bool {
	if offset > n.MaxOffset() {
		offset = n.MaxOffset()
	}
	if offset < 0 {
		offset = 0
	}
	if offset == n.viewportOffset {
		return false
	}
	n.viewportOffset = offset
	return true
}
