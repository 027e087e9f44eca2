package geom

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// bundle collects the edge ends that leave a node in the same direction.
// Its label summarizes their topology: mod-2 parity decides the On position
// and the interior wins on each side, so that two area components meeting
// along an edge read as interior on both sides.
type bundle struct {
	coord Point
	key   edgeEndKey
	ends  []*edgeEnd
	label label
}

// computeLabel aggregates the bundle's edge ends into one label.
func (b *bundle) computeLabel() {
	isArea := false
	for _, ee := range b.ends {
		if ee.label.isArea() {
			isArea = true
			break
		}
	}
	if isArea {
		b.label = emptyAreaLabel()
	} else {
		b.label = emptyLineLabel()
	}

	for geomIndex := 0; geomIndex < 2; geomIndex++ {
		b.computeLabelOn(geomIndex)
		if isArea {
			b.computeLabelSide(geomIndex, dirLeft)
			b.computeLabelSide(geomIndex, dirRight)
		}
	}
}

// computeLabelOn derives the On position from the bundled edge ends:
// an odd number of boundary edges puts the bundle on the boundary, an even
// non-zero number or any interior edge puts it in the interior.
func (b *bundle) computeLabelOn(geomIndex int) {
	boundaryCount := 0
	foundInterior := false
	for _, ee := range b.ends {
		switch ee.label.onPosition(geomIndex) {
		case PosOnBoundary:
			boundaryCount++
		case PosInside:
			foundInterior = true
		}
	}

	pos := posNone
	if foundInterior {
		pos = PosInside
	}
	if 0 < boundaryCount {
		pos = determineBoundary(boundaryCount)
	}
	if pos != posNone {
		b.label.setOnPosition(geomIndex, pos)
	}
}

// computeLabelSide summarizes one side: interior wins over exterior. Edges
// may carry apparently contradictory sides when two components of a
// collection touch along an edge, that is not an inconsistency.
func (b *bundle) computeLabelSide(geomIndex int, side direction) {
	pos := posNone
	for _, ee := range b.ends {
		if ee.label.isArea() {
			switch ee.label.position(geomIndex, side) {
			case PosInside:
				pos = PosInside
			case PosOutside:
				if pos != PosInside {
					pos = PosOutside
				}
			}
			if pos == PosInside {
				break
			}
		}
	}
	if pos != posNone {
		b.label.setPosition(geomIndex, side, pos)
	}
}

// bundleStar is the set of bundles around one node, ordered counter
// clockwise from the positive x axis. The angular order is what lets side
// positions propagate from one bundle to the next around the node.
type bundleStar struct {
	bundles []*bundle
}

// insert adds an edge end to the bundle sharing its direction, creating the
// bundle at its angular position when there is none.
func (s *bundleStar) insert(ee *edgeEnd) {
	i := sort.Search(len(s.bundles), func(i int) bool {
		return 0 <= s.bundles[i].key.compareDirection(ee.key)
	})
	if i < len(s.bundles) && s.bundles[i].key.compareDirection(ee.key) == 0 {
		s.bundles[i].ends = append(s.bundles[i].ends, ee)
		return
	}
	b := &bundle{coord: ee.coordinate(), key: ee.key, ends: []*edgeEnd{ee}}
	s.bundles = append(s.bundles, nil)
	copy(s.bundles[i+1:], s.bundles[i:])
	s.bundles[i] = b
}

// computeLabeling labels every bundle, propagates side positions around the
// node, and falls back to a point-in-area test for positions that no edge of
// a geometry determined.
func (s *bundleStar) computeLabeling(graphA, graphB *geometryGraph) {
	for _, b := range s.bundles {
		b.computeLabel()
	}
	s.propagateSideLabels(0)
	s.propagateSideLabels(1)

	// A geometry's lines collapsed onto this node's boundary swallow the
	// area test: the node cannot be inside such a geometry.
	var hasCollapse [2]bool
	for _, b := range s.bundles {
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if b.label.isLine(geomIndex) && b.label.onPosition(geomIndex) == PosOnBoundary {
				hasCollapse[geomIndex] = true
			}
		}
	}

	graphs := [2]*geometryGraph{graphA, graphB}
	for _, b := range s.bundles {
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if b.label.isAnyEmpty(geomIndex) {
				pos := PosOutside
				if !hasCollapse[geomIndex] {
					if g := graphs[geomIndex].geom; g.Dimensions() == DimArea {
						pos = Position(g, b.coord)
					}
				}
				b.label.setAllPositionsIfEmpty(geomIndex, pos)
			}
		}
	}
}

// propagateSideLabels walks the bundles in angular order and carries the
// known side position of one geometry across bundles whose sides that
// geometry's edges left blank.
func (s *bundleStar) propagateSideLabels(geomIndex int) {
	start := posNone
	for _, b := range s.bundles {
		if b.label.isGeomArea(geomIndex) {
			if pos := b.label.position(geomIndex, dirLeft); pos != posNone {
				start = pos
			}
		}
	}
	if start == posNone {
		return
	}

	current := start
	for _, b := range s.bundles {
		if b.label.position(geomIndex, dirOn) == posNone {
			b.label.setPosition(geomIndex, dirOn, current)
		}
		if !b.label.isGeomArea(geomIndex) {
			continue
		}
		left := b.label.position(geomIndex, dirLeft)
		right := b.label.position(geomIndex, dirRight)
		if right != posNone {
			if right != current {
				logrus.Warnf("geom: side position conflict at %v, geometry is likely invalid", b.coord)
			}
			if left == posNone {
				panic("bug: bundle with right side but no left side")
			}
			current = left
		} else {
			b.label.setPosition(geomIndex, dirRight, current)
			b.label.setPosition(geomIndex, dirLeft, current)
		}
	}
}

// updateMatrix contributes every bundle's label to the matrix.
func (s *bundleStar) updateMatrix(im *Matrix) {
	for _, b := range s.bundles {
		updateMatrix(b.label, im)
	}
}
