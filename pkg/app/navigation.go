package app

// Focus tracks which widget receives key presses.
type Focus struct {
	order []string
	index int
}

// NewFocus returns a Focus over ids, focused on the first.
func NewFocus(ids ...string) Focus {
	return Focus{order: ids}
}

// Current returns the focused id, or "" when there are no widgets.
func (f *Focus) Current() string {
	if len(f.order) == 0 {
		return ""
	}
	return f.order[f.index]
}

// Forward moves focus to the next widget, wrapping around after the last.
func (f *Focus) Forward() {
	if len(f.order) == 0 {
		return
	}
	f.index = (f.index + 1) % len(f.order)
}

// Backward moves focus to the previous widget, wrapping around before the
// first.
func (f *Focus) Backward() {
	if len(f.order) == 0 {
		return
	}
	f.index = (f.index - 1 + len(f.order)) % len(f.order)
}

// Set focuses id. Unknown ids leave focus unchanged.
func (f *Focus) Set(id string) {
	for i, o := range f.order {
		if o == id {
			f.index = i
			return
		}
	}
}
