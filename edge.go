package geom

import "sort"

// edgeIntersection records a point on an edge where another edge intersects
// it. A collinear overlap is recorded as two entries, one per overlap
// endpoint. The key (segIndex, dist) orders the entries along the edge.
type edgeIntersection struct {
	coord    Point
	segIndex int
	dist     float64
}

// edge is a polyline chain of a geometry together with its topology label
// and the ordered ledger of intersections found on it.
type edge struct {
	coords   []Point
	label    label
	isolated bool

	// intersections is kept sorted by (segIndex, dist) and deduplicated.
	intersections []edgeIntersection
}

func newEdge(coords []Point, lbl label) *edge {
	if len(coords) == 0 {
		panic("bug: edge without coordinates")
	}
	return &edge{
		coords:   coords,
		label:    lbl,
		isolated: true,
	}
}

func (e *edge) closed() bool {
	return e.coords[0] == e.coords[len(e.coords)-1]
}

// insertIntersection inserts an entry at its ordered position, dropping
// duplicates of the same (segIndex, dist) key.
func (e *edge) insertIntersection(ei edgeIntersection) {
	i := sort.Search(len(e.intersections), func(i int) bool {
		other := e.intersections[i]
		if other.segIndex != ei.segIndex {
			return ei.segIndex <= other.segIndex
		}
		return ei.dist <= other.dist
	})
	if i < len(e.intersections) && e.intersections[i].segIndex == ei.segIndex && e.intersections[i].dist == ei.dist {
		return
	}
	e.intersections = append(e.intersections, edgeIntersection{})
	copy(e.intersections[i+1:], e.intersections[i:])
	e.intersections[i] = ei
}

// addIntersection records an intersection point found on segment segIndex.
// Points that coincide with the segment's end vertex are normalized to the
// start of the next segment so that each vertex has a single key.
func (e *edge) addIntersection(pt Point, segIndex int) {
	dist := edgeDistance(pt, e.coords[segIndex], e.coords[segIndex+1])
	if next := segIndex + 1; next < len(e.coords) && pt == e.coords[next] {
		segIndex = next
		dist = 0.0
	}
	e.insertIntersection(edgeIntersection{pt, segIndex, dist})
}

// addIntersections records all points of a segment-pair intersection result
// on segment segIndex of this edge.
func (e *edge) addIntersections(li lineIntersection, segIndex int) {
	for i := 0; i < li.n; i++ {
		e.addIntersection(li.pts[i], segIndex)
	}
}

// addEndpointIntersections seeds the ledger with the edge's own endpoints so
// that splitting at intersections always yields complete chains.
func (e *edge) addEndpointIntersections() {
	last := len(e.coords) - 1
	e.insertIntersection(edgeIntersection{e.coords[0], 0, 0.0})
	e.insertIntersection(edgeIntersection{e.coords[last], last, 0.0})
}

// updateMatrix contributes a completed label to the intersection matrix. Only
// labels that relate to both geometries contribute.
func updateMatrix(lbl label, im *Matrix) {
	im.setAtLeastIfInBoth(lbl.position(0, dirOn), lbl.position(1, dirOn), DimLine)
	if lbl.isArea() {
		im.setAtLeastIfInBoth(lbl.position(0, dirLeft), lbl.position(1, dirLeft), DimArea)
		im.setAtLeastIfInBoth(lbl.position(0, dirRight), lbl.position(1, dirRight), DimArea)
	}
}
