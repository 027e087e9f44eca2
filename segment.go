package geom

// segmentIntersector computes intersections between the segments of graph
// edges and records them in the edges' intersection ledgers. It also tracks
// whether any proper intersection, and any proper intersection interior to
// both geometries, was seen.
type segmentIntersector struct {
	sameGeometry bool

	hasProper         bool
	hasProperInterior bool
	boundaryNodes     [2][]*node
	boundaryNodesSet  bool
}

func newSegmentIntersector(sameGeometry bool) *segmentIntersector {
	return &segmentIntersector{sameGeometry: sameGeometry}
}

func (si *segmentIntersector) setBoundaryNodes(nodes0, nodes1 []*node) {
	if si.boundaryNodesSet {
		panic("bug: boundary nodes set twice")
	}
	si.boundaryNodes = [2][]*node{nodes0, nodes1}
	si.boundaryNodesSet = true
}

func (si *segmentIntersector) isBoundaryPoint(pt Point) bool {
	for _, nodes := range si.boundaryNodes {
		for _, n := range nodes {
			if n.coord == pt {
				return true
			}
		}
	}
	return false
}

func adjacentSegments(i0, i1 int) bool {
	return i0-i1 == 1 || i1-i0 == 1
}

// trivialIntersection reports an apparent self-intersection that is really
// just the shared vertex of adjacent segments of one edge. A closed edge
// additionally shares a vertex between its first and last segments.
func (si *segmentIntersector) trivialIntersection(li lineIntersection, e0 *edge, i0 int, e1 *edge, i1 int) bool {
	if e0 != e1 || li.collinear() {
		return false
	}
	if adjacentSegments(i0, i1) {
		return true
	}
	if e0.closed() {
		last := len(e0.coords) - 2
		if i0 == 0 && i1 == last || i1 == 0 && i0 == last {
			return true
		}
	}
	return false
}

// addIntersections intersects segment i0 of e0 with segment i1 of e1 and
// records the result on both edges.
func (si *segmentIntersector) addIntersections(e0 *edge, i0 int, e1 *edge, i1 int) {
	if e0 == e1 && i0 == i1 {
		return
	}

	li := lineIntersect(e0.coords[i0], e0.coords[i0+1], e1.coords[i1], e1.coords[i1+1])
	if li.n == 0 {
		return
	}

	if !si.sameGeometry {
		e0.isolated = false
		e1.isolated = false
	}
	if si.trivialIntersection(li, e0, i0, e1, i1) {
		return
	}

	// Proper intersections between two geometries are not recorded on the
	// edges: the computed point is inexact and contributes to the matrix via
	// the proper-intersection lower bound instead.
	if si.sameGeometry || !li.proper {
		e0.addIntersections(li, i0)
		e1.addIntersections(li, i1)
	}
	if li.proper {
		si.hasProper = true
		if !si.isBoundaryPoint(li.pts[0]) {
			si.hasProperInterior = true
		}
	}
}

// computeIntersectionsWithinSet intersects every segment pair of a single
// graph. Pairs within one edge are only checked when checkSelfEdges is set.
func computeIntersectionsWithinSet(gg *geometryGraph, checkSelfEdges bool, si *segmentIntersector) {
	for _, e0 := range gg.edges {
		for _, e1 := range gg.edges {
			if checkSelfEdges || e0 != e1 {
				computeIntersects(e0, e1, si)
			}
		}
	}
}

// computeIntersectionsBetweenSets intersects every segment of one graph with
// every segment of another.
func computeIntersectionsBetweenSets(gg0, gg1 *geometryGraph, si *segmentIntersector) {
	for _, e0 := range gg0.edges {
		for _, e1 := range gg1.edges {
			computeIntersects(e0, e1, si)
		}
	}
}

func computeIntersects(e0, e1 *edge, si *segmentIntersector) {
	if e0 != e1 {
		b0 := segBounds(e0.coords[0], e0.coords[0])
		for _, p := range e0.coords[1:] {
			b0 = b0.ExpandPoint(p)
		}
		b1 := segBounds(e1.coords[0], e1.coords[0])
		for _, p := range e1.coords[1:] {
			b1 = b1.ExpandPoint(p)
		}
		if !b0.Overlaps(b1) {
			return
		}
	}
	for i0 := 0; i0 < len(e0.coords)-1; i0++ {
		for i1 := 0; i1 < len(e1.coords)-1; i1++ {
			si.addIntersections(e0, i0, e1, i1)
		}
	}
}
