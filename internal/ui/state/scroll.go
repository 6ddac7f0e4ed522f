package state

// ScrollToLine returns the smallest change to offset that keeps line visible
// in a window of height rows over total rows.
func ScrollToLine(offset, height, total, line int) int {
	if height <= 0 || total <= 0 {
		return 0
	}
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if line < 0 {
		line = 0
	}
	if line >= total {
		line = total - 1
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if line < offset {
		return line
	}
	if upper := offset + height - 1; line > upper {
		offset = line - height + 1
		if offset > maxOffset {
			offset = maxOffset
		}
	}
	return offset
}
