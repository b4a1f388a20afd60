package render

// Slice is a half-open range of framebuffer rows assigned to one worker.
type Slice struct {
	Start, End int
}

// Slices partitions [0, height) into exactly n contiguous slices. Rows are
// split by floor division with the remainder assigned to the last slice,
// so the union always covers every row exactly once; when n exceeds
// height, the leading slices are empty.
func Slices(height, n int) []Slice {
	if n < 1 {
		n = 1
	}
	rows := height / n
	s := make([]Slice, n)
	for i := range s {
		s[i] = Slice{Start: i * rows, End: (i + 1) * rows}
	}
	s[n-1].End = height
	return s
}
