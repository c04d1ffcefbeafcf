// Package wheel implements the weighted-random reward selector. The
// selector is stateless: it maps a uniform draw to a configured segment and
// leaves all state change to the caller.
package wheel

import (
	"fmt"

	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/random"
	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// Selector maps uniform random draws onto weighted reward segments.
// Segment declaration order is preserved exactly as configured: selection
// walks cumulative weights in order and ties break toward the earliest
// segment.
type Selector struct {
	segments    []config.WheelSegment
	cumulative  []float64
	totalWeight float64
}

// New validates the segment table and builds a selector. Non-positive
// weights and an empty table are configuration errors, rejected here at
// load time so a malformed wheel never serves a spin.
func New(segments []config.WheelSegment) (*Selector, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: wheel has no segments", model.ErrInvalidWeight)
	}

	cumulative := make([]float64, len(segments))
	total := 0.0
	for i, seg := range segments {
		if seg.Weight <= 0 {
			return nil, fmt.Errorf("%w: segment %d (%q) has weight %v", model.ErrInvalidWeight, i, seg.Label, seg.Weight)
		}
		total += seg.Weight
		cumulative[i] = total
	}

	return &Selector{
		segments:    append([]config.WheelSegment(nil), segments...),
		cumulative:  cumulative,
		totalWeight: total,
	}, nil
}

// TotalWeight returns the sum of all segment weights.
func (s *Selector) TotalWeight() float64 {
	return s.totalWeight
}

// Segments returns the configured segments in declaration order.
func (s *Selector) Segments() []config.WheelSegment {
	return s.segments
}

// Pick selects the first segment whose cumulative weight exceeds r, for a
// draw r in [0, totalWeight). Draws at or beyond totalWeight land on the
// last segment.
func (s *Selector) Pick(r float64) (int, config.WheelSegment) {
	for i, c := range s.cumulative {
		if r < c {
			return i, s.segments[i]
		}
	}
	last := len(s.segments) - 1
	return last, s.segments[last]
}

// Spin draws uniformly over the total weight and picks a segment.
func (s *Selector) Spin(rnd random.Random) (int, config.WheelSegment) {
	return s.Pick(rnd.Float64() * s.totalWeight)
}
