package geom

import "strings"

// posNone marks an unassigned position in a topology label.
const posNone CoordPos = 0xFF

// direction indexes the three positions of an area label: on the edge itself
// and the regions to its left and right (relative to edge direction).
type direction uint8

const (
	dirOn direction = iota
	dirLeft
	dirRight
)

// topoPos is the topological position of a graph component relative to a
// single geometry. Components derived from an area carry On/Left/Right
// positions, components derived from a line or point only an On position.
type topoPos struct {
	area bool
	pos  [3]CoordPos // indexed by direction, posNone if unassigned
}

func emptyLinePos() topoPos {
	return topoPos{pos: [3]CoordPos{posNone, posNone, posNone}}
}

func emptyAreaPos() topoPos {
	return topoPos{area: true, pos: [3]CoordPos{posNone, posNone, posNone}}
}

func linePos(on CoordPos) topoPos {
	return topoPos{pos: [3]CoordPos{on, posNone, posNone}}
}

func areaPos(on, left, right CoordPos) topoPos {
	return topoPos{area: true, pos: [3]CoordPos{on, left, right}}
}

func (t topoPos) get(dir direction) CoordPos {
	if !t.area && dir != dirOn {
		panic("bug: line or point has no side positions")
	}
	return t.pos[dir]
}

func (t *topoPos) set(dir direction, pos CoordPos) {
	if !t.area && dir != dirOn {
		panic("bug: line or point has no side positions")
	}
	t.pos[dir] = pos
}

func (t topoPos) isEmpty() bool {
	if t.area {
		return t.pos[dirOn] == posNone && t.pos[dirLeft] == posNone && t.pos[dirRight] == posNone
	}
	return t.pos[dirOn] == posNone
}

func (t topoPos) isAnyEmpty() bool {
	if t.area {
		return t.pos[dirOn] == posNone || t.pos[dirLeft] == posNone || t.pos[dirRight] == posNone
	}
	return t.pos[dirOn] == posNone
}

func (t *topoPos) flip() {
	if t.area {
		t.pos[dirLeft], t.pos[dirRight] = t.pos[dirRight], t.pos[dirLeft]
	}
}

func (t *topoPos) setAll(pos CoordPos) {
	t.pos[dirOn] = pos
	if t.area {
		t.pos[dirLeft] = pos
		t.pos[dirRight] = pos
	}
}

func (t *topoPos) setAllIfEmpty(pos CoordPos) {
	if t.pos[dirOn] == posNone {
		t.pos[dirOn] = pos
	}
	if t.area {
		if t.pos[dirLeft] == posNone {
			t.pos[dirLeft] = pos
		}
		if t.pos[dirRight] == posNone {
			t.pos[dirRight] = pos
		}
	}
}

// label carries the topological position of a graph component relative to
// both input geometries. A geometry's position is empty if the component has
// not (yet) been related to it.
type label struct {
	topo [2]topoPos
}

func emptyLineLabel() label {
	return label{[2]topoPos{emptyLinePos(), emptyLinePos()}}
}

func emptyAreaLabel() label {
	return label{[2]topoPos{emptyAreaPos(), emptyAreaPos()}}
}

// newLabel sets topo for one geometry and leaves the other empty with the
// same shape.
func newLabel(geomIndex int, topo topoPos) label {
	var l label
	if topo.area {
		l = emptyAreaLabel()
	} else {
		l = emptyLineLabel()
	}
	l.topo[geomIndex] = topo
	return l
}

func (l *label) swap() {
	l.topo[0], l.topo[1] = l.topo[1], l.topo[0]
}

func (l *label) flip() {
	l.topo[0].flip()
	l.topo[1].flip()
}

func (l label) position(geomIndex int, dir direction) CoordPos {
	return l.topo[geomIndex].get(dir)
}

func (l label) onPosition(geomIndex int) CoordPos {
	return l.topo[geomIndex].pos[dirOn]
}

func (l *label) setPosition(geomIndex int, dir direction, pos CoordPos) {
	l.topo[geomIndex].set(dir, pos)
}

func (l *label) setOnPosition(geomIndex int, pos CoordPos) {
	l.topo[geomIndex].pos[dirOn] = pos
}

func (l *label) setAllPositions(geomIndex int, pos CoordPos) {
	l.topo[geomIndex].setAll(pos)
}

func (l *label) setAllPositionsIfEmpty(geomIndex int, pos CoordPos) {
	l.topo[geomIndex].setAllIfEmpty(pos)
}

// geometryCount returns for how many geometries the label carries positions.
func (l label) geometryCount() int {
	n := 0
	for _, t := range l.topo {
		if !t.isEmpty() {
			n++
		}
	}
	return n
}

func (l label) isEmpty(geomIndex int) bool {
	return l.topo[geomIndex].isEmpty()
}

func (l label) isAnyEmpty(geomIndex int) bool {
	return l.topo[geomIndex].isAnyEmpty()
}

func (l label) isArea() bool {
	return l.topo[0].area || l.topo[1].area
}

func (l label) isGeomArea(geomIndex int) bool {
	return l.topo[geomIndex].area
}

func (l label) isLine(geomIndex int) bool {
	return !l.topo[geomIndex].area
}

func (l label) String() string {
	var sb strings.Builder
	char := func(pos CoordPos) byte {
		switch pos {
		case PosInside:
			return 'i'
		case PosOnBoundary:
			return 'b'
		case PosOutside:
			return 'e'
		}
		return '_'
	}
	for i, t := range l.topo {
		if 0 < i {
			sb.WriteByte('/')
		}
		if t.area {
			sb.WriteByte(char(t.pos[dirLeft]))
		}
		sb.WriteByte(char(t.pos[dirOn]))
		if t.area {
			sb.WriteByte(char(t.pos[dirRight]))
		}
	}
	return sb.String()
}
