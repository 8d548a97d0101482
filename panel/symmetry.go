package panel

import (
	"math"

	"github.com/james-bowman/sparse"
)

// MirrorMap is a sparse permutation-like matrix pairing each panel
// index with its y-symmetric counterpart (MirrorMap[i][j]=1 iff panel
// j is panel i's mirror image). Built once per solve and consulted by
// the AIC assembly's symmetry option, instead of a hand-rolled index
// slice, the way the teacher expresses small structural relations as
// sparse matrices (utils/sparse.go) rather than ad hoc maps.
type MirrorMap struct {
	dok *sparse.DOK
	n   int
}

// BuildMirrorMap pairs each panel's collocation point with the panel
// whose collocation point matches under y -> -y, within tol. Panels
// that lie on the symmetry plane (y ~ 0) are paired with themselves.
func BuildMirrorMap(collocation []float64 /* flattened [x,y,z] per panel */, tol float64) *MirrorMap {
	n := len(collocation) / 3
	dok := sparse.NewDOK(n, n)
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		xi, yi, zi := collocation[3*i], collocation[3*i+1], collocation[3*i+2]
		if math.Abs(yi) <= tol {
			dok.Set(i, i, 1)
			used[i] = true
			continue
		}
		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			xj, yj, zj := collocation[3*j], collocation[3*j+1], collocation[3*j+2]
			if math.Abs(xi-xj) <= tol && math.Abs(yi+yj) <= tol && math.Abs(zi-zj) <= tol {
				dok.Set(i, j, 1)
				dok.Set(j, i, 1)
				used[i], used[j] = true, true
				break
			}
		}
	}
	return &MirrorMap{dok: dok, n: n}
}

// Mirror returns the panel index mirroring i, or i itself if i lies on
// the symmetry plane or no mirror was found.
func (m *MirrorMap) Mirror(i int) int {
	for j := 0; j < m.n; j++ {
		if m.dok.At(i, j) != 0 {
			return j
		}
	}
	return i
}
