package main

import (
	"fmt"
	"io"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dulp"
	"github.com/hupe1980/dulp/internal/conv"
)

// Summary aggregates element-wise order distances.
type Summary struct {
	Count int
	// Differing holds the indices whose distance is non-zero.
	Differing *roaring.Bitmap
	MaxAbs    float64
	SumAbs    float64
}

// Summarize builds a Summary over dist.
func Summarize[F dulp.Float](dist []F) (*Summary, error) {
	s := &Summary{
		Count:     len(dist),
		Differing: roaring.New(),
	}
	for i, d := range dist {
		if d == 0 {
			continue
		}
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		s.Differing.Add(idx)

		abs := math.Abs(float64(d))
		s.MaxAbs = max(s.MaxAbs, abs)
		s.SumAbs += abs
	}
	return s, nil
}

// FirstDiffering returns up to n of the smallest differing indices.
func (s *Summary) FirstDiffering(n int) []uint32 {
	n = max(n, 0)
	out := make([]uint32, 0, min(n, int(s.Differing.GetCardinality())))
	it := s.Differing.Iterator()
	for len(out) < n && it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// Write prints the summary, listing up to show differing indices.
func (s *Summary) Write(w io.Writer, show int) error {
	differing := s.Differing.GetCardinality()
	mean := 0.0
	if s.Count > 0 {
		mean = s.SumAbs / float64(s.Count)
	}

	_, err := fmt.Fprintf(w, "elements:   %d\ndiffering:  %d\nmax |dulp|: %.0f\nmean |dulp|: %g\n",
		s.Count, differing, s.MaxAbs, mean)
	if err != nil {
		return err
	}
	if show > 0 && differing > 0 {
		_, err = fmt.Fprintf(w, "first differing: %v\n", s.FirstDiffering(show))
	}
	return err
}
