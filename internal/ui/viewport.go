package ui

// adjustScroll returns the smallest change to offset that brings selected
// inside the visible window. It never re-centers: an already-visible
// selection leaves the offset untouched.
func adjustScroll(selected, offset, visibleRows int) int {
	if visibleRows <= 0 {
		return 0
	}
	if selected < offset {
		offset = selected
	} else if selected >= offset+visibleRows {
		offset = selected - visibleRows + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
