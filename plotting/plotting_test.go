package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotAirfoilWritesFile(t *testing.T) {
	pts := []geom.Point2D{{1, 0}, {0.5, 0.05}, {0, 0}, {0.5, -0.05}, {1, 0}}
	af, err := airfoil.New(pts)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "airfoil.png")
	require.NoError(t, PlotAirfoil(af, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotSpanLoadingWritesFile(t *testing.T) {
	panels := []panel.Panel3D{
		{P1: geom.Point3D{0, 0, 0}, P2: geom.Point3D{0, 1, 0}, P3: geom.Point3D{1, 1, 0}, P4: geom.Point3D{1, 0, 0}},
		{P1: geom.Point3D{0, 1, 0}, P2: geom.Point3D{0, 2, 0}, P3: geom.Point3D{1, 2, 0}, P4: geom.Point3D{1, 1, 0}},
	}
	gamma := []float64{1.0, 0.8}

	path := filepath.Join(t.TempDir(), "loading.png")
	require.NoError(t, PlotSpanLoading(panels, gamma, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotSpanLoadingRejectsMismatchedLengths(t *testing.T) {
	panels := []panel.Panel3D{{}}
	err := PlotSpanLoading(panels, nil, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestPlotStreamlinesWritesFile(t *testing.T) {
	lines := [][]geom.Point3D{
		{{0, 0, 0}, {1, 0, 0.1}, {2, 0, 0.2}},
		{{0, 1, 0}, {1, 1, 0.05}, {2, 1, 0.1}},
	}
	path := filepath.Join(t.TempDir(), "streamlines.png")
	require.NoError(t, PlotStreamlines(lines, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotStreamlinesRejectsEmpty(t *testing.T) {
	err := PlotStreamlines(nil, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}
