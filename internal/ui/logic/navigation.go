package logic

// ScrollOffset returns the viewport offset that keeps selected visible in a
// window of height rows over total rows, moving as little as possible
func ScrollOffset(selected, offset, height, total int) int {
	if height <= 0 || total <= 0 {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+height {
		offset = selected - height + 1
	}
	if maxOffset := total - height; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
