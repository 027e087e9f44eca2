package geom

// quadrant returns the quadrant of the direction vector (dx,dy), numbered
// counter clockwise from 0 (NE, both non-negative) to 3 (SE). A zero vector
// has no quadrant and yields -1.
func quadrant(dx, dy float64) int {
	if dx == 0.0 && dy == 0.0 {
		return -1
	}
	if 0.0 <= dy {
		if 0.0 <= dx {
			return 0
		}
		return 1
	}
	if dx < 0.0 {
		return 2
	}
	return 3
}

// edgeEndKey orders edge ends around a node by the angle of their direction
// ray with the positive x axis. Comparing the quadrant first keeps the
// orientation test well conditioned, it is only consulted within a quadrant.
type edgeEndKey struct {
	coord0, coord1 Point
	delta          Point
	quadrant       int
}

// compareDirection returns -1, 0, or +1 as the key's ray sorts before, equal
// to, or after other's in counter clockwise order from the positive x axis.
func (k edgeEndKey) compareDirection(other edgeEndKey) int {
	if k.delta == other.delta {
		return 0
	}
	if 0 <= k.quadrant && 0 <= other.quadrant && k.quadrant != other.quadrant {
		if k.quadrant < other.quadrant {
			return -1
		}
		return 1
	}
	switch robust.Orient(other.coord0, other.coord1, k.coord1) {
	case Clockwise:
		return -1
	case CounterClockwise:
		return 1
	}
	return 0
}

// edgeEnd is the stub of an edge incident to a node: the node coordinate and
// the direction ray towards the edge's next point, with the edge's label.
type edgeEnd struct {
	label label
	key   edgeEndKey
}

func newEdgeEnd(coord0, coord1 Point, lbl label) *edgeEnd {
	delta := coord1.Sub(coord0)
	return &edgeEnd{
		label: lbl,
		key: edgeEndKey{
			coord0:   coord0,
			coord1:   coord1,
			delta:    delta,
			quadrant: quadrant(delta.X, delta.Y),
		},
	}
}

func (ee *edgeEnd) coordinate() Point {
	return ee.key.coord0
}

// computeEdgeEnds creates the edge-end stubs for all edges: two per interior
// intersection point (one towards each neighbour along the edge) and one per
// edge endpoint.
func computeEdgeEnds(edges []*edge) []*edgeEnd {
	var list []*edgeEnd
	for _, e := range edges {
		list = computeEdgeEndsForEdge(e, list)
	}
	return list
}

func computeEdgeEndsForEdge(e *edge, list []*edgeEnd) []*edgeEnd {
	e.addEndpointIntersections()

	for i := range e.intersections {
		var prev, next *edgeIntersection
		if 0 < i {
			prev = &e.intersections[i-1]
		}
		if i+1 < len(e.intersections) {
			next = &e.intersections[i+1]
		}
		list = appendEdgeEndForPrev(e, list, &e.intersections[i], prev)
		list = appendEdgeEndForNext(e, list, &e.intersections[i], next)
	}
	return list
}

// appendEdgeEndForPrev adds the stub pointing backwards along the edge from
// curr, if any. The stub ends at the previous intersection when that lies
// beyond the previous vertex. Since the stub runs against the edge's
// direction, the label's sides flip.
func appendEdgeEndForPrev(e *edge, list []*edgeEnd, curr, prev *edgeIntersection) []*edgeEnd {
	iPrev := curr.segIndex
	if curr.dist == 0.0 {
		if iPrev == 0 {
			return list
		}
		iPrev--
	}

	coordPrev := e.coords[iPrev]
	if prev != nil && iPrev <= prev.segIndex {
		coordPrev = prev.coord
	}

	lbl := e.label
	lbl.flip()
	return append(list, newEdgeEnd(curr.coord, coordPrev, lbl))
}

// appendEdgeEndForNext adds the stub pointing forwards along the edge from
// curr, if any. The stub ends at the next intersection when that lies within
// the current segment.
func appendEdgeEndForNext(e *edge, list []*edgeEnd, curr, next *edgeIntersection) []*edgeEnd {
	iNext := curr.segIndex + 1
	if len(e.coords) <= iNext && next == nil {
		return list
	}

	var coordNext Point
	if next != nil && next.segIndex == curr.segIndex {
		coordNext = next.coord
	} else if iNext < len(e.coords) {
		coordNext = e.coords[iNext]
	} else {
		panic("bug: intersection beyond the last edge vertex")
	}

	return append(list, newEdgeEnd(curr.coord, coordNext, e.label))
}
