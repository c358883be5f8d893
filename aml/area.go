package aml

import "image"

// Area is a rectangular region of a feature map.
// All four sides are inclusive, with Left <= Right and Top <= Bottom.
type Area struct {
	Left, Top, Right, Bottom int
}

// Rect converts the inclusive area to a half-open rectangle.
func (a Area) Rect() image.Rectangle {
	return image.Rect(a.Left, a.Top, a.Right+1, a.Bottom+1)
}

// Size gives the width and height of the area.
func (a Area) Size() image.Point {
	return image.Pt(a.Right-a.Left+1, a.Bottom-a.Top+1)
}

// AspectRatio gives width over height.
func (a Area) AspectRatio() float64 {
	return float64(a.Right-a.Left+1) / float64(a.Bottom-a.Top+1)
}

// Coordinates are addressed by index during refinement.
// The order matches (left, upper, right, lower).
func (a Area) coord(i int) int {
	switch i {
	case 0:
		return a.Left
	case 1:
		return a.Top
	case 2:
		return a.Right
	case 3:
		return a.Bottom
	}
	panic("coordinate index out of range")
}

func (a *Area) setCoord(i, x int) {
	switch i {
	case 0:
		a.Left = x
	case 1:
		a.Top = x
	case 2:
		a.Right = x
	case 3:
		a.Bottom = x
	default:
		panic("coordinate index out of range")
	}
}
