package aml

// Refine improves an area by coordinate descent on its four edges.
//
// This follows the iterative refinement of arXiv:1511.05879v2 as given
// in the authors' released C code, except that the eight candidate
// moves of an iteration are all scored against the box at the start of
// the iteration and only the single best move is adopted, so the box
// changes by at most one coordinate per iteration.
//
// For each step size from maxStep down to 1, up to iterations rounds
// are run: each edge is moved by -step and +step in turn, clamped to
// the canvas on one side and to the current opposite edge on the
// other, so the box can degenerate to a single cell but never invert.
// If no move strictly improves the score, refinement proceeds to the
// next smaller step size.
//
// The returned score is that of the returned area and is never less
// than initScore.
func Refine(query []float64, init Area, initScore float64, ii *IntegralImage, iterations, maxStep int) (Area, float64) {
	width, height := ii.Image.Width, ii.Image.Height
	best, bestScore := init, initScore

	for step := maxStep; step >= 1; step-- {
		for it := 0; it < iterations; it++ {
			iterBest, iterScore := best, bestScore
			lo := [4]int{0, 0, best.Left, best.Top}
			hi := [4]int{best.Right, best.Bottom, width - 1, height - 1}
			for coord := 0; coord < 4; coord++ {
				a := best
				a.setCoord(coord, max(best.coord(coord)-step, lo[coord]))
				if s := ii.Score(query, a); s > iterScore {
					iterBest, iterScore = a, s
				}

				a = best
				a.setCoord(coord, min(best.coord(coord)+step, hi[coord]))
				if s := ii.Score(query, a); s > iterScore {
					iterBest, iterScore = a, s
				}
			}
			if iterScore == bestScore {
				break
			}
			best, bestScore = iterBest, iterScore
		}
	}
	return best, bestScore
}
