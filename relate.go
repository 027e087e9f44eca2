package geom

import "sort"

// Relate computes the DE-9IM matrix describing the topological relationship
// of a with b. The inputs must be valid geometries; results on invalid input
// (unclosed or self-intersecting rings, overlapping multi polygon members)
// are undefined but never panic.
func Relate(a, b Geometry) Matrix {
	op := newRelater(a, b)
	return op.computeMatrix()
}

// Intersects returns true if a and b share at least one point.
func Intersects(a, b Geometry) bool { return Relate(a, b).Intersects() }

// Disjoint returns true if a and b share no points.
func Disjoint(a, b Geometry) bool { return Relate(a, b).Disjoint() }

// Within returns true if a lies in b.
func Within(a, b Geometry) bool { return Relate(a, b).Within() }

// Contains returns true if b lies in a and the interiors meet.
func Contains(a, b Geometry) bool { return Relate(a, b).Contains() }

// Covers returns true if every point of b lies in a's interior or boundary.
func Covers(a, b Geometry) bool { return Relate(a, b).Covers() }

// CoveredBy returns true if every point of a lies in b's interior or
// boundary.
func CoveredBy(a, b Geometry) bool { return Relate(a, b).CoveredBy() }

// Touches returns true if a and b meet only on their boundaries.
func Touches(a, b Geometry) bool { return Relate(a, b).Touches() }

// Crosses returns true if a and b share some but not all interior points in
// a lower dimension than the higher-dimensional input.
func Crosses(a, b Geometry) bool { return Relate(a, b).Crosses() }

// Overlaps returns true if a and b have equal dimension and share some but
// not all of their interiors.
func Overlaps(a, b Geometry) bool { return Relate(a, b).Overlaps() }

// EqualsTopo returns true if a and b are topologically equal.
func EqualsTopo(a, b Geometry) bool { return Relate(a, b).EqualsTopo() }

// relateNode pairs a node with the star of edge-end bundles around it.
type relateNode struct {
	node *node
	star bundleStar
}

// relater computes the intersection matrix of two geometries from their
// topology graphs.
type relater struct {
	graphA, graphB *geometryGraph
	nodes          map[Point]*relateNode
	isolatedEdges  []*edge
}

func newRelater(a, b Geometry) *relater {
	return &relater{
		graphA: newGeometryGraph(0, a),
		graphB: newGeometryGraph(1, b),
		nodes:  map[Point]*relateNode{},
	}
}

func (r *relater) insertNode(coord Point) *relateNode {
	if n, ok := r.nodes[coord]; ok {
		return n
	}
	n := &relateNode{node: newNode(coord)}
	r.nodes[coord] = n
	return n
}

func (r *relater) sortedNodes() []*relateNode {
	nodes := make([]*relateNode, 0, len(r.nodes))
	for _, n := range r.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return pointLess(nodes[i].node.coord, nodes[j].node.coord)
	})
	return nodes
}

func (r *relater) computeMatrix() Matrix {
	im := emptyDisjointMatrix()

	// geometries with non-overlapping bounds relate entirely through the
	// exterior row and column
	a, b := r.graphA.geom, r.graphB.geom
	if a.Empty() || b.Empty() || !a.Bounds().Overlaps(b.Bounds()) {
		im.computeDisjoint(a, b)
		return im
	}

	// topology changes are checked at nodes, so every intersection needs one
	r.graphA.computeSelfNodes()
	r.graphB.computeSelfNodes()

	si := r.graphA.computeEdgeIntersections(r.graphB)

	r.computeIntersectionNodes(0)
	r.computeIntersectionNodes(1)
	// Copy node labels from the parent geometries. These take precedence
	// over labels derived from intersections: an intersection node computed
	// as boundary may really be interior under the boundary rule.
	r.copyNodesAndLabels(0)
	r.copyNodesAndLabels(1)
	r.labelIsolatedNodes()
	r.computeProperIntersectionIM(si, &im)

	// Improper intersections, where a vertex of one geometry lies on the
	// other, need the full edge-end stars at every node.
	r.insertEdgeEnds(computeEdgeEnds(r.graphA.edges))
	r.insertEdgeEnds(computeEdgeEnds(r.graphB.edges))

	nodes := r.sortedNodes()
	for _, n := range nodes {
		n.star.computeLabeling(r.graphA, r.graphB)
	}

	// Isolated components never touch the other geometry's graph, their
	// whole extent shares one position.
	r.labelIsolatedEdges(0, 1)
	r.labelIsolatedEdges(1, 0)

	for _, e := range r.isolatedEdges {
		updateMatrix(e.label, &im)
	}
	for _, n := range nodes {
		im.setAtLeastIfInBoth(n.node.label.onPosition(0), n.node.label.onPosition(1), DimPoint)
		n.star.updateMatrix(&im)
	}
	return im
}

func (r *relater) insertEdgeEnds(ends []*edgeEnd) {
	for _, ee := range ends {
		r.insertNode(ee.coordinate()).star.insert(ee)
	}
}

func (r *relater) graph(geomIndex int) *geometryGraph {
	if geomIndex == 0 {
		return r.graphA
	}
	return r.graphB
}

// computeIntersectionNodes inserts nodes for all intersection points on the
// edges of one geometry. Unlabeled nodes take the label of their edge, which
// covers nodes created by self or mutual intersections. Endpoint nodes were
// labeled on insertion.
func (r *relater) computeIntersectionNodes(geomIndex int) {
	for _, e := range r.graph(geomIndex).edges {
		pos := e.label.onPosition(geomIndex)
		for _, ei := range e.intersections {
			n := r.insertNode(ei.coord)
			if pos == PosOnBoundary {
				n.node.setLabelBoundary(geomIndex)
			} else if n.node.label.isEmpty(geomIndex) {
				n.node.label.setOnPosition(geomIndex, PosInside)
			}
		}
	}
}

// copyNodesAndLabels copies all nodes of one input graph, overriding any
// position previously computed for that geometry.
func (r *relater) copyNodesAndLabels(geomIndex int) {
	for _, gn := range r.graph(geomIndex).nodes.sorted() {
		pos := gn.label.onPosition(geomIndex)
		if pos == posNone {
			panic("bug: graph node without a position")
		}
		r.insertNode(gn.coord).node.label.setOnPosition(geomIndex, pos)
	}
}

// computeProperIntersectionIM raises the matrix by the lower bounds a proper
// edge intersection implies for the input dimensions.
func (r *relater) computeProperIntersectionIM(si *segmentIntersector, im *Matrix) {
	dimA := r.graphA.geom.Dimensions()
	dimB := r.graphB.geom.Dimensions()

	switch {
	case dimA == DimArea && dimB == DimArea:
		// properly intersecting boundary segments mean properly overlapping
		// areas
		if si.hasProper {
			im.setAtLeastString("212101212")
		}
	case dimA == DimArea && dimB == DimLine:
		// A line segment properly crossing an area boundary puts the line's
		// interior on the boundary, and on a proper interior hit also in the
		// interior. Nothing follows for the area's exterior, another area
		// component may contain the rest of the line.
		if si.hasProper {
			im.setAtLeastString("FFF0FFFF2")
		}
		if si.hasProperInterior {
			im.setAtLeastString("1FFFFF1FF")
		}
	case dimA == DimLine && dimB == DimArea:
		if si.hasProper {
			im.setAtLeastString("F0FFFFFF2")
		}
		if si.hasProperInterior {
			im.setAtLeastString("1F1FFFFFF")
		}
	case dimA == DimLine && dimB == DimLine:
		// only an interior-interior point follows, the segments' remainders
		// may be covered by other parts of either geometry
		if si.hasProperInterior {
			im.setAtLeastString("0FFFFFFFF")
		}
	}
}

// labelIsolatedEdges finds the edges of one geometry that never intersected
// the other and labels their full extent by the position of any one of their
// points.
func (r *relater) labelIsolatedEdges(thisIndex, targetIndex int) {
	target := r.graph(targetIndex).geom
	for _, e := range r.graph(thisIndex).edges {
		if e.isolated {
			labelIsolatedEdge(e, targetIndex, target)
			r.isolatedEdges = append(r.isolatedEdges, e)
		}
	}
}

func labelIsolatedEdge(e *edge, targetIndex int, target Geometry) {
	if target.Dimensions() > DimPoint {
		// an isolated edge crosses no boundary, so one point's position is
		// every point's position
		e.label.setAllPositions(targetIndex, Position(target, e.coords[0]))
	} else {
		e.label.setAllPositions(targetIndex, PosOutside)
	}
}

// labelIsolatedNodes completes nodes that only one geometry labeled by
// locating them in the other geometry.
func (r *relater) labelIsolatedNodes() {
	for _, n := range r.sortedNodes() {
		if n.node.label.geometryCount() == 0 {
			panic("bug: node with empty label")
		}
		if n.node.isolated() {
			if n.node.label.isEmpty(0) {
				labelIsolatedNode(n.node, 0, r.graphA.geom)
			} else {
				labelIsolatedNode(n.node, 1, r.graphB.geom)
			}
		}
	}
}

func labelIsolatedNode(n *node, targetIndex int, target Geometry) {
	n.label.setAllPositions(targetIndex, Position(target, n.coord))
}
