package sampler

// DefaultHistoryLen is one minute of samples at the default tick.
const DefaultHistoryLen = 60

// History is a fixed-capacity FIFO of recent aggregate CPU percentages.
type History struct {
	capacity int
	values   []float64
}

// NewHistory returns an empty History. Non-positive capacities fall back to
// DefaultHistoryLen.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryLen
	}
	return &History{
		capacity: capacity,
		values:   make([]float64, 0, capacity),
	}
}

// Append pushes v, dropping the oldest value once the buffer is full.
func (h *History) Append(v float64) {
	if len(h.values) < h.capacity {
		h.values = append(h.values, v)
		return
	}
	copy(h.values, h.values[1:])
	h.values[len(h.values)-1] = v
}

// Values returns a copy, oldest first.
func (h *History) Values() []float64 {
	return append([]float64(nil), h.values...)
}

func (h *History) Len() int { return len(h.values) }
func (h *History) Cap() int { return h.capacity }
