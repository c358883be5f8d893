package aml

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
	"github.com/jvlmdr/go-cv/rimg64"
)

const eps = 1e-9

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

// Generates a random feature image with entries in [0, 1).
func randImage(width, height, channels int) *rimg64.Multi {
	f := rimg64.NewMulti(width, height, channels)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			for k := 0; k < channels; k++ {
				f.Set(i, j, k, rand.Float64())
			}
		}
	}
	return f
}

// Generates a random unit vector.
func randQuery(dim int) []float64 {
	x := make([]float64, dim)
	for i := range x {
		x[i] = rand.NormFloat64()
	}
	floats.Scale(1/floats.Norm(x, 2), x)
	return x
}

// Sum of powered entries over an inclusive area, by brute force.
func naiveSum(f *rimg64.Multi, a Area, exp float64) []float64 {
	v := make([]float64, f.Channels)
	for i := a.Left; i <= a.Right; i++ {
		for j := a.Top; j <= a.Bottom; j++ {
			for k := 0; k < f.Channels; k++ {
				v[k] += math.Pow(f.At(i, j, k), exp)
			}
		}
	}
	return v
}

// Normalized approximate max-pooled descriptor of an area,
// computed by brute force.
func poolDescriptor(f *rimg64.Multi, a Area, exp float64) []float64 {
	v := naiveSum(f, a, exp)
	for k := range v {
		v[k] = math.Pow(v[k], 1/exp)
	}
	floats.Scale(1/floats.Norm(v, 2), v)
	return v
}

// Enumerates every area of a canvas.
func allAreas(width, height int) []Area {
	var areas []Area
	for x1 := 0; x1 < width; x1++ {
		for x2 := x1; x2 < width; x2++ {
			for y1 := 0; y1 < height; y1++ {
				for y2 := y1; y2 < height; y2++ {
					areas = append(areas, Area{x1, y1, x2, y2})
				}
			}
		}
	}
	return areas
}

func testAreaEq(t *testing.T, want, got Area) {
	if want != got {
		t.Errorf("areas differ: want (%d, %d, %d, %d), got (%d, %d, %d, %d)",
			want.Left, want.Top, want.Right, want.Bottom,
			got.Left, got.Top, got.Right, got.Bottom,
		)
	}
}
