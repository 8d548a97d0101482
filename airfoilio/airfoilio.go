// Package airfoilio reads airfoil coordinate files in Selig format:
// an optional non-numeric title line followed by whitespace-delimited
// x/y pairs, one per line. It stays outside the solver's own error
// taxonomy (component G's error kinds) since it is a boundary/IO
// concern, not a solver one.
package airfoilio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/aeromdao/geom"
)

// ReadSelig tokenizes each line of r into two floats, skipping a
// leading non-numeric header line (a title, e.g. "NACA 0012") if one
// is present, and blank lines throughout. Selig ordering (upper
// surface trailing-edge to leading-edge, then lower surface back to
// the trailing edge) is a property of the input file; ReadSelig does
// not reorder or validate it.
func ReadSelig(r io.Reader) ([]geom.Point2D, error) {
	scanner := bufio.NewScanner(r)
	var pts []geom.Point2D
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			if lineNo == 1 {
				continue // title line
			}
			return nil, fmt.Errorf("airfoilio: line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			if lineNo == 1 {
				continue // title line happened to have two whitespace-separated tokens
			}
			return nil, fmt.Errorf("airfoilio: line %d: malformed coordinate pair %q", lineNo, line)
		}
		pts = append(pts, geom.Point2D{x, y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("airfoilio: %w", err)
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf("airfoilio: need at least 3 coordinate points, got %d", len(pts))
	}
	return pts, nil
}
