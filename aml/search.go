package aml

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrSearchExhausted indicates that no candidate area was found even
// after relaxing the aspect-ratio tolerance up to the sweep cap.
// This happens when the step size exceeds the canvas in either
// dimension, or when every candidate scores NaN.
var ErrSearchExhausted = errors.New("search exhausted: no candidate area")

// Search scores every candidate area against the query and returns the
// strict maximum, keeping the earliest candidate in enumeration order
// when scores tie exactly.
// If a sweep selects no candidate, the aspect-ratio tolerance factor
// is increased by 0.5 and the whole sweep repeated, at most maxSweeps
// times before giving up with ErrSearchExhausted.
func Search(query []float64, ii *IntegralImage, aspectRatio, factor float64, step, maxSweeps int) (Area, float64, error) {
	canvas := image.Pt(ii.Image.Width, ii.Image.Height)
	var (
		best  Area
		found bool
	)
	score := math.Inf(-1)
	for sweep := 0; sweep < maxSweeps; sweep++ {
		gen := NewAreaGen(canvas, step, aspectRatio, factor)
		for a, ok := gen.Next(); ok; a, ok = gen.Next() {
			if s := ii.Score(query, a); s > score {
				best, score = a, s
				found = true
			}
		}
		if found {
			return best, score, nil
		}
		factor += 0.5
	}
	return Area{}, 0, fmt.Errorf("%w: step %d, canvas %dx%d, %d sweeps",
		ErrSearchExhausted, step, canvas.X, canvas.Y, maxSweeps)
}
