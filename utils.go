package archon

// max returns the larger of two ints. componentColumn.reserve uses it to
// pick a growth target: the greater of the geometric doubling and the
// caller's requested minimum.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
