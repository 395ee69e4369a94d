// Package variogram evaluates theoretical variogram models on points and
// regions and assembles them into pairwise matrices.
//
// A model is a scalar function of lag. Evaluate lifts it to any pair of
// points and geometries: a geometry is reduced to its discretization sample
// and the point evaluations are averaged, which approximates the
// regularized variogram between supports. Pairwise and PairwiseCross fill
// gonum matrices from these evaluations.
package variogram
