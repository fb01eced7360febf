package scratch

// SamplePoint is one sampled pointer position in the stroke log.
// NewSegment is true for the first sample of a drag (pointer down); moves
// within the same drag append with NewSegment false. Samples are immutable
// once appended.
type SamplePoint struct {
	Point
	NewSegment bool
}

// Segments groups a stroke log into contiguous segments, splitting at every
// NewSegment marker. Each segment renders as one continuous round-capped
// stroke. The returned slices alias the log; callers must not mutate them.
func Segments(log []SamplePoint) [][]SamplePoint {
	var segs [][]SamplePoint
	start := 0
	for i, s := range log {
		if s.NewSegment && i > start {
			segs = append(segs, log[start:i])
			start = i
		}
	}
	if start < len(log) {
		segs = append(segs, log[start:])
	}
	return segs
}
