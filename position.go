package geom

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CoordPos is the position of a coordinate relative to a geometry: in its
// interior, on its boundary, or in its exterior. The values double as DE-9IM
// matrix row/column indices.
type CoordPos uint8

const (
	PosInside CoordPos = iota
	PosOnBoundary
	PosOutside
)

func (pos CoordPos) String() string {
	switch pos {
	case PosInside:
		return "Inside"
	case PosOnBoundary:
		return "OnBoundary"
	case PosOutside:
		return "Outside"
	}
	return fmt.Sprintf("CoordPos(%d)", uint8(pos))
}

// Position returns the position of p relative to g. Boundary contributions of
// the components of g combine by the mod-2 rule: a point that is an endpoint
// of an odd number of line strings is on the boundary, of an even number it
// is in the interior.
func Position(g Geometry, p Point) CoordPos {
	if g.Empty() {
		return PosOutside
	}

	inside := false
	boundary := 0
	g.addPosition(p, &inside, &boundary)
	if boundary%2 == 1 {
		return PosOnBoundary
	} else if inside || 0 < boundary {
		return PosInside
	}
	return PosOutside
}

// posInRing returns the position of q relative to the area enclosed by a
// closed ring, irrespective of the ring's winding order. It uses the winding
// number algorithm with a short circuit for boundary points, so coordinates
// exactly on an edge are classified OnBoundary rather than by rounding luck.
func posInRing(q Point, ring LineString) CoordPos {
	if len(ring) < 4 || !ring.Closed() {
		logrus.Warnf("geom: ring with %d coordinates is not closed, result undefined", len(ring))
		return PosOutside
	}

	winding := 0
	for i := 1; i < len(ring); i++ {
		a, b := ring[i-1], ring[i]
		if a == b {
			continue
		}
		if onSegment(q, a, b) {
			return PosOnBoundary
		}
		if a.Y <= q.Y {
			// upward crossing counts when q is strictly left of (a,b)
			if q.Y < b.Y && robust.Orient(a, b, q) == CounterClockwise {
				winding++
			}
		} else {
			// downward crossing counts when q is strictly right of (a,b)
			if b.Y <= q.Y && robust.Orient(a, b, q) == Clockwise {
				winding--
			}
		}
	}
	if winding != 0 {
		return PosInside
	}
	return PosOutside
}
