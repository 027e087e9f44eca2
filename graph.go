package geom

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// node is a point of a topology graph: a geometry vertex of interest (line
// endpoints, ring anchors, isolated points) or an intersection point.
type node struct {
	coord Point
	label label
}

func newNode(coord Point) *node {
	return &node{coord: coord, label: emptyLineLabel()}
}

// isolated reports whether the node relates to only one of the geometries.
func (n *node) isolated() bool {
	return n.label.geometryCount() == 1
}

// setLabelBoundary raises the node's boundary count for a geometry and
// relabels it by the mod-2 rule.
func (n *node) setLabelBoundary(geomIndex int) {
	count := 1
	if n.label.onPosition(geomIndex) == PosOnBoundary {
		count++
	}
	n.label.setOnPosition(geomIndex, determineBoundary(count))
}

// determineBoundary classifies a point that occurs in count component
// boundaries using the SFS mod-2 rule.
func determineBoundary(count int) CoordPos {
	if count%2 == 1 {
		return PosOnBoundary
	}
	return PosInside
}

// nodeMap indexes nodes by their coordinate. Iteration is in lexicographic
// coordinate order so that label propagation is deterministic.
type nodeMap struct {
	m map[Point]*node
}

func newNodeMap() nodeMap {
	return nodeMap{m: map[Point]*node{}}
}

func (nm nodeMap) insert(coord Point) *node {
	if n, ok := nm.m[coord]; ok {
		return n
	}
	n := newNode(coord)
	nm.m[coord] = n
	return n
}

func (nm nodeMap) find(coord Point) *node {
	return nm.m[coord]
}

func (nm nodeMap) sorted() []*node {
	nodes := make([]*node, 0, len(nm.m))
	for _, n := range nm.m {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return pointLess(nodes[i].coord, nodes[j].coord)
	})
	return nodes
}

// geometryGraph decomposes one input geometry into labeled edges and nodes.
// Self-intersections that are not vertices only become visible after
// computeSelfNodes has run.
type geometryGraph struct {
	geomIndex int
	geom      Geometry
	nodes     nodeMap
	edges     []*edge

	// useBoundaryRule is cleared for MultiPolygons: polygon boundaries are
	// never subject to endpoint parity counting.
	useBoundaryRule bool
	selfNodesDone   bool
}

func newGeometryGraph(geomIndex int, g Geometry) *geometryGraph {
	gg := &geometryGraph{
		geomIndex:       geomIndex,
		geom:            g,
		nodes:           newNodeMap(),
		useBoundaryRule: true,
	}
	gg.addGeometry(g)
	return gg
}

func (gg *geometryGraph) addGeometry(g Geometry) {
	if g.Empty() {
		return
	}
	switch g := g.(type) {
	case Point:
		gg.addPoint(g)
	case MultiPoint:
		for _, p := range g {
			gg.addPoint(p)
		}
	case LineString:
		gg.addLineString(g)
	case MultiLineString:
		for _, ls := range g {
			if !ls.Empty() {
				gg.addLineString(ls)
			}
		}
	case Polygon:
		gg.addPolygon(g)
	case MultiPolygon:
		gg.useBoundaryRule = false
		for _, p := range g {
			if !p.Empty() {
				gg.addPolygon(p)
			}
		}
	case Rect:
		gg.addPolygon(g.ToPolygon())
	case Triangle:
		gg.addPolygon(g.ToPolygon())
	case GeometryCollection:
		for _, sub := range g {
			gg.addGeometry(sub)
		}
	default:
		panic("bug: unknown geometry type")
	}
}

func (gg *geometryGraph) addPolygon(p Polygon) {
	gg.addPolygonRing(p.Exterior, PosOutside, PosInside)
	// hole labels are the shell's mirror image, the polygon interior lies on
	// the other side
	for _, hole := range p.Holes {
		gg.addPolygonRing(hole, PosInside, PosOutside)
	}
}

// addPolygonRing inserts a ring as a single closed edge whose sides carry
// cwLeft/cwRight when the ring winds clockwise, and the reverse otherwise.
func (gg *geometryGraph) addPolygonRing(ring LineString, cwLeft, cwRight CoordPos) {
	if ring.Empty() {
		return
	}

	coords := dedupCoords(ring)
	if len(coords) < 4 {
		logrus.Warnf("geom: invalid ring with %d distinct coordinates, result undefined", len(coords))
	}

	left, right := cwLeft, cwRight
	switch ringWinding(coords) {
	case WindingCCW:
		left, right = cwRight, cwLeft
	case WindingNone:
		logrus.Warn("geom: ring without winding order, result undefined")
	}

	lbl := newLabel(gg.geomIndex, areaPos(PosOnBoundary, left, right))
	gg.edges = append(gg.edges, newEdge(coords, lbl))

	// anchor the ring with a boundary node at its first coordinate
	gg.insertPoint(coords[0], PosOnBoundary)
}

func (gg *geometryGraph) addLineString(ls LineString) {
	coords := dedupCoords(ls)
	if len(coords) < 2 {
		logrus.Warn("geom: degenerate line string treated as point, result undefined")
		gg.addPoint(coords[0])
		return
	}

	gg.insertBoundaryPoint(coords[0])
	gg.insertBoundaryPoint(coords[len(coords)-1])

	lbl := newLabel(gg.geomIndex, linePos(PosInside))
	gg.edges = append(gg.edges, newEdge(coords, lbl))
}

func (gg *geometryGraph) addPoint(p Point) {
	gg.insertPoint(p, PosInside)
}

func dedupCoords(ls LineString) []Point {
	coords := make([]Point, 0, len(ls))
	for _, p := range ls {
		if len(coords) == 0 || coords[len(coords)-1] != p {
			coords = append(coords, p)
		}
	}
	return coords
}

func (gg *geometryGraph) insertPoint(coord Point, pos CoordPos) {
	gg.nodes.insert(coord).label.setOnPosition(gg.geomIndex, pos)
}

// insertBoundaryPoint adds an endpoint of a lineal component, combining it
// with any endpoint already present by the mod-2 rule.
func (gg *geometryGraph) insertBoundaryPoint(coord Point) {
	n := gg.nodes.insert(coord)
	count := 1
	if n.label.position(gg.geomIndex, dirOn) == PosOnBoundary {
		count++
	}
	n.label.setOnPosition(gg.geomIndex, determineBoundary(count))
}

func (gg *geometryGraph) isBoundaryNode(coord Point) bool {
	n := gg.nodes.find(coord)
	return n != nil && n.label.onPosition(gg.geomIndex) == PosOnBoundary
}

func (gg *geometryGraph) boundaryNodes() []*node {
	var nodes []*node
	for _, n := range gg.nodes.sorted() {
		if n.label.onPosition(gg.geomIndex) == PosOnBoundary {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// computeSelfNodes finds the geometry's self-intersections and records them
// as nodes. Valid rings cannot intersect their own interior, so ring-only
// geometries skip the per-edge self-check.
func (gg *geometryGraph) computeSelfNodes() {
	if gg.selfNodesDone {
		return
	}
	gg.selfNodesDone = true

	isRings := false
	switch g := gg.geom.(type) {
	case LineString:
		isRings = g.Closed()
	case MultiLineString:
		isRings = g.Closed()
	case Polygon, MultiPolygon, Rect, Triangle:
		isRings = true
	}

	si := newSegmentIntersector(true)
	computeIntersectionsWithinSet(gg, !isRings, si)
	gg.addSelfIntersectionNodes()
}

// computeEdgeIntersections intersects this graph's edges with another
// graph's and returns the segment intersector holding the proper-intersection
// summary.
func (gg *geometryGraph) computeEdgeIntersections(other *geometryGraph) *segmentIntersector {
	si := newSegmentIntersector(false)
	si.setBoundaryNodes(gg.boundaryNodes(), other.boundaryNodes())
	computeIntersectionsBetweenSets(gg, other, si)
	return si
}

func (gg *geometryGraph) addSelfIntersectionNodes() {
	for _, e := range gg.edges {
		pos := e.label.onPosition(gg.geomIndex)
		if pos == posNone {
			panic("bug: edge without an on position")
		}
		for _, ei := range e.intersections {
			gg.addSelfIntersectionNode(ei.coord, pos)
		}
	}
}

func (gg *geometryGraph) addSelfIntersectionNode(coord Point, pos CoordPos) {
	// an established boundary node keeps its status
	if gg.isBoundaryNode(coord) {
		return
	}
	if pos == PosOnBoundary && gg.useBoundaryRule {
		gg.insertBoundaryPoint(coord)
	} else {
		gg.insertPoint(coord, pos)
	}
}
