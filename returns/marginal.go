package returns

// MarginalReturnStream is a restartable, finite iterator over the
// marginal (single-period fractional) returns of a Series of length N,
// producing N-1 values r_i = (v_i - v_{i-1}) / v_{i-1}. Index i of the
// stream aligns with sample i of the Series: it is "the return for
// interval (i-1, i)".
type MarginalReturnStream struct {
	series Series
	i      int // index of the next sample to consume, starts at 1
}

// NewMarginalReturnStream builds a stream over s, positioned before the
// first return.
func NewMarginalReturnStream(s Series) *MarginalReturnStream {
	return &MarginalReturnStream{series: s, i: 1}
}

// Reset rewinds the stream to its initial position so it can be replayed
// from the start without rebuilding it.
func (m *MarginalReturnStream) Reset() {
	m.i = 1
}

// Next returns the next marginal return and true, or (0, false) once the
// stream is exhausted. For a Series of length N it yields exactly N-1
// values.
func (m *MarginalReturnStream) Next() (float64, bool) {
	if m.i >= len(m.series) {
		return 0, false
	}

	prev := m.series[m.i-1].Value
	cur := m.series[m.i].Value
	m.i++

	return (cur - prev) / prev, true
}

// Collect drains the stream into a slice. It resets the stream first so
// repeated calls to Collect observe the same sequence.
func (m *MarginalReturnStream) Collect() []float64 {
	m.Reset()

	out := make([]float64, 0, len(m.series)-1)
	for {
		r, ok := m.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}

	return out
}
