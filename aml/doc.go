/*
Package aml locates a query descriptor in a dense convolutional feature map
using approximate max-pooling localization (arXiv:1511.05879v2).

To find the region of a feature image which best matches an L2-normalized
query vector:
	det, err := aml.Localize(query, feats, image.Pt(width, height), nil)
where (width, height) is the shape of the query image,
used only to obtain a target aspect ratio.

The pieces of the search are exposed for callers which want to
re-use an integral image across queries of the same exponent:
	ii := aml.Integral(feats, aml.Exp)
	area, score, err := aml.Search(query, ii, aspect, 1.1, 3, 64)
	area, score = aml.Refine(query, area, score, ii, 10, 3)

Scores are cosine similarities in [-1, 1].
The feature map is assumed to contain no negative entries.
*/
package aml
