// Package airfoil holds the ordered 2D coordinate representation of a
// single airfoil section, cosine resampling, and the upper/lower and
// camber/thickness decompositions consumed by the paneller and the 2D
// panel method.
package airfoil

import (
	"fmt"
	"sort"

	"github.com/notargets/aeromdao/geom"
)

// Airfoil is an ordered sequence of 2D points in Selig order: upper
// surface from trailing edge to leading edge, then lower surface back
// to the trailing edge.
type Airfoil struct {
	Points []geom.Point2D
}

// New wraps a Selig-ordered point slice. It does not copy pts.
func New(pts []geom.Point2D) (*Airfoil, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("airfoil: need at least 3 points, have %d", len(pts))
	}
	return &Airfoil{Points: pts}, nil
}

// leadingEdgeIndex returns the index of the minimum-x point, which
// splits the Selig-ordered sequence into upper (before) and lower
// (at-and-after) surfaces.
func (a *Airfoil) leadingEdgeIndex() int {
	idx := 0
	minX := a.Points[0][0]
	for i, p := range a.Points {
		if p[0] < minX {
			minX = p[0]
			idx = i
		}
	}
	return idx
}

// Split returns the upper surface (trailing edge to leading edge,
// inclusive) and lower surface (leading edge to trailing edge,
// inclusive) as separate point slices.
func (a *Airfoil) Split() (upper, lower []geom.Point2D) {
	le := a.leadingEdgeIndex()
	upper = append(upper, a.Points[:le+1]...)
	lower = append(lower, a.Points[le:]...)
	return
}

// CosineResample rebuilds the airfoil with n points per surface spaced
// at cosine-clustered x-stations, linearly interpolating the matching
// upper/lower y onto those stations. Both surfaces share the same x
// grid so Camber/Thickness can be taken directly from the resampled
// result.
func (a *Airfoil) CosineResample(n int) (*Airfoil, error) {
	upper, lower := a.Split()
	xMin, xMax := a.Points[a.leadingEdgeIndex()][0], maxX(a.Points)

	xs := geom.CosineSpacing(xMax, xMin, n) // TE(x=xMax) -> LE(x=xMin)
	upperY, err := interpY(upper, xs)
	if err != nil {
		return nil, fmt.Errorf("airfoil: resample upper surface: %w", err)
	}

	xsLower := geom.CosineSpacing(xMin, xMax, n) // LE -> TE
	lowerY, err := interpY(lower, xsLower)
	if err != nil {
		return nil, fmt.Errorf("airfoil: resample lower surface: %w", err)
	}

	pts := make([]geom.Point2D, 0, 2*n-1)
	for i := 0; i < n; i++ {
		pts = append(pts, geom.Point2D{xs[i], upperY[i]})
	}
	for i := 1; i < n; i++ {
		pts = append(pts, geom.Point2D{xsLower[i], lowerY[i]})
	}
	return &Airfoil{Points: pts}, nil
}

func maxX(pts []geom.Point2D) float64 {
	m := pts[0][0]
	for _, p := range pts {
		if p[0] > m {
			m = p[0]
		}
	}
	return m
}

// interpY linearly interpolates the surface's y(x) onto the requested
// x stations; surface must be monotonic in x (true for a single wing
// surface branch).
func interpY(surface []geom.Point2D, xs []float64) ([]float64, error) {
	sorted := append([]geom.Point2D(nil), surface...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	out := make([]float64, len(xs))
	for k, x := range xs {
		i := sort.Search(len(sorted), func(i int) bool { return sorted[i][0] >= x })
		switch {
		case i == 0:
			out[k] = sorted[0][1]
		case i >= len(sorted):
			out[k] = sorted[len(sorted)-1][1]
		default:
			p0, p1 := sorted[i-1], sorted[i]
			if p1[0] == p0[0] {
				out[k] = p0[1]
				continue
			}
			mu := (x - p0[0]) / (p1[0] - p0[0])
			out[k] = geom.Interp(p0[1], p1[1], mu)
		}
	}
	return out, nil
}

// CamberThickness splits a cosine-resampled airfoil (equal-count,
// matched-x upper/lower surfaces) into camber (average) and thickness
// (half-difference) at each shared x-station. xs is returned for
// convenience since it is common to both.
func (a *Airfoil) CamberThickness(n int) (xs, camber, thickness []float64, err error) {
	r, err := a.CosineResample(n)
	if err != nil {
		return nil, nil, nil, err
	}
	upper := r.Points[:n]
	lower := r.Points[n-1:]
	xs = make([]float64, n)
	camber = make([]float64, n)
	thickness = make([]float64, n)
	for i := 0; i < n; i++ {
		// upper is ordered TE->LE; reverse so index 0 is LE for both.
		up := upper[n-1-i]
		lo := lower[i]
		xs[i] = lo[0]
		camber[i] = 0.5 * (up[1] + lo[1])
		thickness[i] = 0.5 * (up[1] - lo[1])
	}
	return
}

// CamberLine returns the camber-line points (x, camber(x)) used as the
// section profile for the VLM's camber mesh.
func (a *Airfoil) CamberLine(n int) ([]geom.Point2D, error) {
	xs, camber, _, err := a.CamberThickness(n)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point2D, n)
	for i := range xs {
		pts[i] = geom.Point2D{xs[i], camber[i]}
	}
	return pts, nil
}
