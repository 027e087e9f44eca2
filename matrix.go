package geom

import "fmt"

// Matrix is a dimensionally extended nine-intersection model (DE-9IM)
// matrix. Cell (a,b) holds the dimension of the intersection of position a
// of the first geometry with position b of the second, where positions are
// indexed by CoordPos (Inside, OnBoundary, Outside).
//
// Its canonical form is the nine-character string of the cells in row order,
// e.g. "212101212", with F for an empty intersection.
type Matrix [3][3]Dimensions

func emptyMatrix() Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = DimEmpty
		}
	}
	return m
}

// emptyDisjointMatrix is the matrix of two disjoint geometries before their
// dimensions are filled in. Geometries are finite and embedded in the plane,
// so the (Outside, Outside) cell is always two dimensional.
func emptyDisjointMatrix() Matrix {
	m := emptyMatrix()
	m[PosOutside][PosOutside] = DimArea
	return m
}

// NewMatrix parses a nine-character DE-9IM string such as "212101212" into a
// Matrix. Valid characters are 0, 1, 2 and F.
func NewMatrix(s string) (Matrix, error) {
	m := emptyMatrix()
	if len(s) != 9 {
		return m, fmt.Errorf("bad DE-9IM string %q: must be 9 characters", s)
	}
	i := 0
	for a := PosInside; a <= PosOutside; a++ {
		for b := PosInside; b <= PosOutside; b++ {
			switch s[i] {
			case 'F', 'f':
				m[a][b] = DimEmpty
			case '0':
				m[a][b] = DimPoint
			case '1':
				m[a][b] = DimLine
			case '2':
				m[a][b] = DimArea
			default:
				return emptyMatrix(), fmt.Errorf("bad DE-9IM string %q: invalid character %q", s, s[i])
			}
			i++
		}
	}
	return m, nil
}

// Get returns the dimension of the intersection of position a of the first
// geometry with position b of the second.
func (m Matrix) Get(a, b CoordPos) Dimensions {
	return m[a][b]
}

func (m Matrix) String() string {
	buf := make([]byte, 0, 9)
	for a := PosInside; a <= PosOutside; a++ {
		for b := PosInside; b <= PosOutside; b++ {
			switch m[a][b] {
			case DimEmpty:
				buf = append(buf, 'F')
			case DimPoint:
				buf = append(buf, '0')
			case DimLine:
				buf = append(buf, '1')
			case DimArea:
				buf = append(buf, '2')
			default:
				panic("bug: invalid dimension in matrix")
			}
		}
	}
	return string(buf)
}

// setAtLeast raises cell (a,b) to at least dim. Cells are only ever raised,
// never lowered.
func (m *Matrix) setAtLeast(a, b CoordPos, dim Dimensions) {
	if m[a][b] < dim {
		m[a][b] = dim
	}
}

// setAtLeastIfInBoth raises cell (a,b) when both positions are assigned, and
// does nothing when either side never related to its geometry.
func (m *Matrix) setAtLeastIfInBoth(a, b CoordPos, dim Dimensions) {
	if a == posNone || b == posNone {
		return
	}
	m.setAtLeast(a, b, dim)
}

// setAtLeastString raises cells from a nine-character pattern where F leaves
// the cell untouched. Only called with vetted constants.
func (m *Matrix) setAtLeastString(s string) {
	if len(s) != 9 {
		panic("bug: matrix pattern must be 9 characters")
	}
	i := 0
	for a := PosInside; a <= PosOutside; a++ {
		for b := PosInside; b <= PosOutside; b++ {
			switch s[i] {
			case 'F':
			case '0':
				m.setAtLeast(a, b, DimPoint)
			case '1':
				m.setAtLeast(a, b, DimLine)
			case '2':
				m.setAtLeast(a, b, DimArea)
			default:
				panic("bug: invalid character in matrix pattern")
			}
			i++
		}
	}
}

// computeDisjoint fills in the Exterior row and column for two geometries
// known not to intersect: each geometry's interior and boundary lie entirely
// in the other's exterior.
func (m *Matrix) computeDisjoint(a, b Geometry) {
	if dim := a.Dimensions(); dim != DimEmpty {
		m.setAtLeast(PosInside, PosOutside, dim)
		if bdim := a.BoundaryDimensions(); bdim != DimEmpty {
			m.setAtLeast(PosOnBoundary, PosOutside, bdim)
		}
	}
	if dim := b.Dimensions(); dim != DimEmpty {
		m.setAtLeast(PosOutside, PosInside, dim)
		if bdim := b.BoundaryDimensions(); bdim != DimEmpty {
			m.setAtLeast(PosOutside, PosOnBoundary, bdim)
		}
	}
}

// Matches reports whether the matrix matches a nine-character DE-9IM pattern.
// Each pattern character is 0, 1, or 2 for an exact dimension, F (or f) for
// empty, T (or t) for any non-empty dimension, or * for anything.
func (m Matrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, fmt.Errorf("bad DE-9IM pattern %q: must be 9 characters", pattern)
	}
	i := 0
	for a := PosInside; a <= PosOutside; a++ {
		for b := PosInside; b <= PosOutside; b++ {
			ok := false
			switch pattern[i] {
			case '*':
				ok = true
			case 'T', 't':
				ok = m[a][b] != DimEmpty
			case 'F', 'f':
				ok = m[a][b] == DimEmpty
			case '0':
				ok = m[a][b] == DimPoint
			case '1':
				ok = m[a][b] == DimLine
			case '2':
				ok = m[a][b] == DimArea
			default:
				return false, fmt.Errorf("bad DE-9IM pattern %q: invalid character %q", pattern, pattern[i])
			}
			if !ok {
				return false, nil
			}
			i++
		}
	}
	return true, nil
}

// Disjoint returns true if the geometries have no points in common. It
// matches [FF*FF****].
func (m Matrix) Disjoint() bool {
	return m[PosInside][PosInside] == DimEmpty &&
		m[PosInside][PosOnBoundary] == DimEmpty &&
		m[PosOnBoundary][PosInside] == DimEmpty &&
		m[PosOnBoundary][PosOnBoundary] == DimEmpty
}

// Intersects returns true if the geometries have at least one point in
// common.
func (m Matrix) Intersects() bool {
	return !m.Disjoint()
}

// Within returns true if the first geometry lies in the second: no point of
// it lies in the second's exterior and the interiors meet. It matches
// [T*F**F***].
func (m Matrix) Within() bool {
	return m[PosInside][PosInside] != DimEmpty &&
		m[PosInside][PosOutside] == DimEmpty &&
		m[PosOnBoundary][PosOutside] == DimEmpty
}

// Contains returns true if the second geometry lies in the first and the
// interiors meet. It matches [T*****FF*].
func (m Matrix) Contains() bool {
	return m[PosInside][PosInside] != DimEmpty &&
		m[PosOutside][PosInside] == DimEmpty &&
		m[PosOutside][PosOnBoundary] == DimEmpty
}

// CoveredBy returns true if every point of the first geometry lies in the
// second's interior or boundary. Unlike Within it does not require the
// interiors to meet. It matches any of [T*F**F***], [*TF**F***], [**FT*F***]
// and [**F*TF***].
func (m Matrix) CoveredBy() bool {
	if m[PosInside][PosOutside] != DimEmpty || m[PosOnBoundary][PosOutside] != DimEmpty {
		return false
	}
	return m[PosInside][PosInside] != DimEmpty ||
		m[PosInside][PosOnBoundary] != DimEmpty ||
		m[PosOnBoundary][PosInside] != DimEmpty ||
		m[PosOnBoundary][PosOnBoundary] != DimEmpty
}

// Covers returns true if every point of the second geometry lies in the
// first's interior or boundary. It matches any of [T*****FF*], [*T****FF*],
// [***T**FF*] and [****T*FF*].
func (m Matrix) Covers() bool {
	if m[PosOutside][PosInside] != DimEmpty || m[PosOutside][PosOnBoundary] != DimEmpty {
		return false
	}
	return m[PosInside][PosInside] != DimEmpty ||
		m[PosInside][PosOnBoundary] != DimEmpty ||
		m[PosOnBoundary][PosInside] != DimEmpty ||
		m[PosOnBoundary][PosOnBoundary] != DimEmpty
}

// Touches returns true if the geometries have at least one point in common
// but their interiors do not meet. It matches any of [FT*******],
// [F**T*****] and [F***T****].
func (m Matrix) Touches() bool {
	return m[PosInside][PosInside] == DimEmpty &&
		(m[PosInside][PosOnBoundary] != DimEmpty ||
			m[PosOnBoundary][PosInside] != DimEmpty ||
			m[PosOnBoundary][PosOnBoundary] != DimEmpty)
}

// dimsA and dimsB return the highest intersection dimension of each
// geometry's interior, the effective dimension used by Crosses and Overlaps.
func (m Matrix) dimsA() Dimensions {
	return maxDim(m[PosInside][PosInside], maxDim(m[PosInside][PosOnBoundary], m[PosInside][PosOutside]))
}

func (m Matrix) dimsB() Dimensions {
	return maxDim(m[PosInside][PosInside], maxDim(m[PosOnBoundary][PosInside], m[PosOutside][PosInside]))
}

func maxDim(a, b Dimensions) Dimensions {
	if a < b {
		return b
	}
	return a
}

// Crosses returns true if the geometries share some but not all interior
// points, and the intersection has a lower dimension than the higher-
// dimensional input. The pattern depends on the effective dimensions:
// [T*T******] for a lower-dimensional first geometry, [T*****T**] for a
// lower-dimensional second, and [0********] for two lines.
func (m Matrix) Crosses() bool {
	dimsA, dimsB := m.dimsA(), m.dimsB()
	switch {
	case dimsA < dimsB:
		return m[PosInside][PosInside] != DimEmpty && m[PosInside][PosOutside] != DimEmpty
	case dimsB < dimsA:
		return m[PosInside][PosInside] != DimEmpty && m[PosOutside][PosInside] != DimEmpty
	case dimsA == DimLine && dimsB == DimLine:
		return m[PosInside][PosInside] == DimPoint
	}
	return false
}

// Overlaps returns true if the geometries have the same effective dimension,
// their interiors meet in that dimension, and each has interior points the
// other lacks. The pattern is [1*T***T**] for two lines and [T*T***T**]
// otherwise.
func (m Matrix) Overlaps() bool {
	dimsA, dimsB := m.dimsA(), m.dimsB()
	if dimsA != dimsB {
		return false
	}
	switch dimsA {
	case DimLine:
		return m[PosInside][PosInside] == DimLine &&
			m[PosInside][PosOutside] != DimEmpty &&
			m[PosOutside][PosInside] != DimEmpty
	case DimPoint, DimArea:
		return m[PosInside][PosInside] != DimEmpty &&
			m[PosInside][PosOutside] != DimEmpty &&
			m[PosOutside][PosInside] != DimEmpty
	}
	return false
}

// EqualsTopo returns true if the geometries are topologically equal: their
// interiors meet and no point of either lies in the other's exterior. It
// matches [T*F**FFF*]. Two empty geometries are topologically equal.
func (m Matrix) EqualsTopo() bool {
	if m == emptyDisjointMatrix() {
		return true
	}
	return m[PosInside][PosInside] != DimEmpty &&
		m[PosInside][PosOutside] == DimEmpty &&
		m[PosOutside][PosInside] == DimEmpty &&
		m[PosOutside][PosOnBoundary] == DimEmpty &&
		m[PosOnBoundary][PosOutside] == DimEmpty
}
