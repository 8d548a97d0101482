package airfoilio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSelig = `NACA 0012
1.000000  0.001260
0.500000  0.037814
0.000000  0.000000
0.500000 -0.037814
1.000000 -0.001260
`

func TestReadSeligSkipsHeaderLine(t *testing.T) {
	pts, err := ReadSelig(strings.NewReader(sampleSelig))
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Equal(t, 1.0, pts[0][0])
	assert.InDelta(t, 0.00126, pts[0][1], 1e-9)
	assert.Equal(t, 0.0, pts[2][0])
}

func TestReadSeligNoHeaderLine(t *testing.T) {
	data := "1.0 0.0\n0.5 0.05\n0.0 0.0\n0.5 -0.05\n1.0 0.0\n"
	pts, err := ReadSelig(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, pts, 5)
}

func TestReadSeligSkipsBlankLines(t *testing.T) {
	data := "NACA 0012\n\n1.0 0.0\n\n0.5 0.05\n0.0 0.0\n"
	pts, err := ReadSelig(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, pts, 3)
}

func TestReadSeligRejectsMalformedLine(t *testing.T) {
	data := "NACA 0012\n1.0 0.0\nnot-a-number also-not\n0.0 0.0\n"
	_, err := ReadSelig(strings.NewReader(data))
	assert.Error(t, err)
}

func TestReadSeligRejectsTooFewPoints(t *testing.T) {
	data := "NACA 0012\n1.0 0.0\n0.0 0.0\n"
	_, err := ReadSelig(strings.NewReader(data))
	assert.Error(t, err)
}
