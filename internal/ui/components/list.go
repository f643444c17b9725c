package components

// List is a scrollable cursor list with optional multi-select.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int

	selected map[int]bool
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	return &List{PageSize: pageSize, selected: make(map[int]bool)}
}

// SetItems replaces items and resets cursor and selection.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Cursor = 0
	l.Offset = 0
	l.selected = make(map[int]bool)
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset++
		}
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		if l.Cursor < l.Offset {
			l.Offset--
		}
	}
}

// Visible returns the currently visible items.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := l.Offset + l.PageSize
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.Offset:end]
}

// Selected returns the index of the cursor item.
func (l *List) Selected() int {
	return l.Cursor
}

// IsCursor reports whether the given absolute index is the cursor.
func (l *List) IsCursor(index int) bool {
	return index == l.Cursor
}

// ToggleMark flips multi-select state for the cursor item.
func (l *List) ToggleMark() {
	if len(l.Items) == 0 {
		return
	}
	if l.selected[l.Cursor] {
		delete(l.selected, l.Cursor)
		return
	}
	l.selected[l.Cursor] = true
}

// IsMarked reports whether an absolute index is multi-selected.
func (l *List) IsMarked(index int) bool {
	return l.selected[index]
}

// Marked returns the multi-selected indices in ascending order.
func (l *List) Marked() []int {
	if len(l.selected) == 0 {
		return nil
	}
	out := make([]int, 0, len(l.selected))
	for i := range l.Items {
		if l.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

// MarkedCount returns the number of multi-selected items.
func (l *List) MarkedCount() int {
	return len(l.selected)
}

// ClearMarks drops all multi-select state.
func (l *List) ClearMarks() {
	l.selected = make(map[int]bool)
}
