package aml

import (
	"fmt"
	"image"

	"github.com/jvlmdr/go-cv/detect"
	"github.com/jvlmdr/go-cv/rimg64"
)

// Options are the parameters of the localization search.
type Options struct {
	// StepSize is the grid granularity of candidate areas.
	// Must be at least 1.
	StepSize int
	// AspectRatioFactor bounds how far the aspect ratio of a candidate
	// may deviate from that of the query image.
	// Must be greater than 1.
	AspectRatioFactor float64
	// Exp is the exponent of the approximate max pooling.
	// Must be at least 1.
	Exp float64
	// Iterations is the number of refinement rounds per step size.
	Iterations int
	// MaxStep is the largest refinement step size.
	MaxStep int
	// MaxSweeps caps the number of aspect-ratio relaxations of the
	// coarse search before it fails with ErrSearchExhausted.
	MaxSweeps int
}

// DefaultOptions gives the parameters of the reference algorithm.
func DefaultOptions() *Options {
	return &Options{
		StepSize:          3,
		AspectRatioFactor: 1.1,
		Exp:               Exp,
		Iterations:        10,
		MaxStep:           3,
		MaxSweeps:         64,
	}
}

// Localize finds the area of the feature map whose approximate
// max-pooled descriptor is most similar to the query.
// The query must be L2-normalized by the caller and have one element
// per channel of the feature map.
// querySize is the pixel size of the query image and is used only to
// obtain the target aspect ratio of the search.
// If opts is nil, DefaultOptions() is used.
//
// The integral image is built once, a coarse grid search selects the
// best candidate area, and coordinate descent refines it.
// The result is a half-open rectangle in feature-map coordinates with
// its cosine similarity score.
//
// Localize allocates no shared state, so independent calls may run
// concurrently.
func Localize(query []float64, f *rimg64.Multi, querySize image.Point, opts *Options) (detect.Det, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(query) != f.Channels {
		return detect.Det{}, fmt.Errorf("channels differ: query %d, features %d", len(query), f.Channels)
	}
	if f.Width < 1 || f.Height < 1 {
		return detect.Det{}, fmt.Errorf("empty feature map: %dx%d", f.Width, f.Height)
	}
	if querySize.X < 1 || querySize.Y < 1 {
		return detect.Det{}, fmt.Errorf("non-positive query size: %dx%d", querySize.X, querySize.Y)
	}
	if opts.StepSize < 1 {
		return detect.Det{}, fmt.Errorf("step size less than one: %d", opts.StepSize)
	}
	if opts.AspectRatioFactor <= 1 {
		return detect.Det{}, fmt.Errorf("aspect ratio factor not greater than one: %g", opts.AspectRatioFactor)
	}
	if opts.Exp < 1 {
		return detect.Det{}, fmt.Errorf("exponent less than one: %g", opts.Exp)
	}

	aspect := float64(querySize.X) / float64(querySize.Y)
	ii := Integral(f, opts.Exp)
	area, score, err := Search(query, ii, aspect, opts.AspectRatioFactor, opts.StepSize, opts.MaxSweeps)
	if err != nil {
		return detect.Det{}, err
	}
	area, score = Refine(query, area, score, ii, opts.Iterations, opts.MaxStep)
	return detect.Det{Score: score, Rect: area.Rect()}, nil
}
