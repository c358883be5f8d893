package aml

import (
	"image"
	"math"
)

// AreaGen enumerates candidate areas of a canvas whose sides lie on a
// regular grid and whose aspect ratio is within a multiplicative factor
// of a target ratio.
// Both sides of every candidate span a multiple of the step size.
// The tolerance is applied in the log domain so that it is symmetric
// under inversion of the ratio: for a target of 1, candidates of ratio
// 2 and 1/2 deviate by the same amount.
//
// Candidates are visited in order of increasing left, then right,
// then top, then bottom edge.
// The sequence is finite and restartable; the only state is the
// position of the four edges.
type AreaGen struct {
	canvas image.Point
	step   int
	// Logs of the target ratio and of the tolerance factor.
	logRatio, maxDiv float64

	x1, y1, x2, y2 int
}

// NewAreaGen prepares an enumeration of the areas of a canvas of the
// given size.
// The target aspect ratio is width over height, and maxAspectRatioDiv
// is the factor by which a candidate's ratio may deviate from it.
func NewAreaGen(canvas image.Point, step int, aspectRatio, maxAspectRatioDiv float64) *AreaGen {
	g := &AreaGen{
		canvas:   canvas,
		step:     step,
		logRatio: math.Log(aspectRatio),
		maxDiv:   math.Log(maxAspectRatioDiv),
	}
	g.Reset()
	return g
}

// Reset restarts the sequence from the beginning.
func (g *AreaGen) Reset() {
	g.x1, g.y1 = 0, 0
	g.x2 = g.step - 1
	g.y2 = g.step - 1
}

// Next returns the next candidate area,
// or false once the sequence is exhausted.
func (g *AreaGen) Next() (Area, bool) {
	for g.x1 < g.canvas.X {
		if g.x2 >= g.canvas.X {
			g.x1 += g.step
			g.x2 = g.x1 + g.step - 1
			continue
		}
		if g.y1 >= g.canvas.Y {
			g.x2 += g.step
			g.y1 = 0
			g.y2 = g.step - 1
			continue
		}
		if g.y2 >= g.canvas.Y {
			g.y1 += g.step
			g.y2 = g.y1 + g.step - 1
			continue
		}
		a := Area{Left: g.x1, Top: g.y1, Right: g.x2, Bottom: g.y2}
		g.y2 += g.step
		if math.Abs(g.logRatio-math.Log(a.AspectRatio())) > g.maxDiv {
			continue
		}
		return a, true
	}
	return Area{}, false
}
