package geom

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Dimensions is the topological dimension of a geometry or of a cell in a
// DE-9IM matrix. The ordering is significant: matrix cells are only ever
// raised to a higher dimension, never lowered.
type Dimensions int

const (
	DimEmpty Dimensions = iota - 1 // no points, e.g. an empty MultiPoint
	DimPoint                       // 0, points
	DimLine                        // 1, lines and curves
	DimArea                        // 2, surfaces
)

func (d Dimensions) String() string {
	switch d {
	case DimEmpty:
		return "Empty"
	case DimPoint:
		return "Point"
	case DimLine:
		return "Line"
	case DimArea:
		return "Area"
	}
	return fmt.Sprintf("Dimensions(%d)", int(d))
}

// Geometry is a planar geometry. All geometries in this package are values;
// none of the operations mutate their input. Coordinates must be finite,
// results on NaN or infinite coordinates are undefined.
type Geometry interface {
	// Empty returns true if the geometry contains no coordinates.
	Empty() bool

	// Dimensions returns the topological dimension. Degenerate geometries
	// collapse downward, e.g. a zero-width Rect is a line.
	Dimensions() Dimensions

	// BoundaryDimensions returns the dimension of the geometry's boundary
	// following OGC-SFA, e.g. DimPoint for an open LineString.
	BoundaryDimensions() Dimensions

	// Bounds returns the bounding rectangle. It is the zero Rect for empty
	// geometries, check Empty before relying on it.
	Bounds() Rect

	// addPosition accumulates the position of p: it sets inside if p lies in
	// the interior of any component and increments boundary for every
	// component boundary that contains p. Position combines the result with
	// the mod-2 rule.
	addPosition(p Point, inside *bool, boundary *int)
}

////////////////////////////////////////////////////////////////

// Point is a single coordinate in the plane.
type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// pointLess orders points lexicographically by (X, Y). It is the node map
// iteration order.
func pointLess(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) Empty() bool {
	return false
}

func (p Point) Dimensions() Dimensions {
	return DimPoint
}

func (p Point) BoundaryDimensions() Dimensions {
	return DimEmpty
}

func (p Point) Bounds() Rect {
	return Rect{p, p}
}

func (p Point) addPosition(q Point, inside *bool, boundary *int) {
	if p == q {
		*inside = true
	}
}

////////////////////////////////////////////////////////////////

// MultiPoint is a set of points.
type MultiPoint []Point

func (ps MultiPoint) Empty() bool {
	return len(ps) == 0
}

func (ps MultiPoint) Dimensions() Dimensions {
	if len(ps) == 0 {
		return DimEmpty
	}
	return DimPoint
}

func (ps MultiPoint) BoundaryDimensions() Dimensions {
	return DimEmpty
}

func (ps MultiPoint) Bounds() Rect {
	var r Rect
	for i, p := range ps {
		if i == 0 {
			r = Rect{p, p}
		} else {
			r = r.ExpandPoint(p)
		}
	}
	return r
}

func (ps MultiPoint) addPosition(q Point, inside *bool, boundary *int) {
	for _, p := range ps {
		if p == q {
			*inside = true
			return
		}
	}
}

////////////////////////////////////////////////////////////////

// LineString is a polyline of two or more coordinates. A LineString whose
// first and last coordinates coincide is closed and has no boundary.
type LineString []Point

func (ls LineString) Empty() bool {
	return len(ls) == 0
}

// Closed returns true if the first and last coordinates coincide.
func (ls LineString) Closed() bool {
	return 0 < len(ls) && ls[0] == ls[len(ls)-1]
}

func (ls LineString) Dimensions() Dimensions {
	if len(ls) == 0 {
		return DimEmpty
	}
	for _, p := range ls[1:] {
		if p != ls[0] {
			return DimLine
		}
	}
	return DimPoint
}

func (ls LineString) BoundaryDimensions() Dimensions {
	if ls.Dimensions() != DimLine || ls.Closed() {
		return DimEmpty
	}
	return DimPoint
}

func (ls LineString) Bounds() Rect {
	var r Rect
	for i, p := range ls {
		if i == 0 {
			r = Rect{p, p}
		} else {
			r = r.ExpandPoint(p)
		}
	}
	return r
}

func (ls LineString) addPosition(q Point, inside *bool, boundary *int) {
	if len(ls) == 0 {
		return
	} else if len(ls) == 1 || ls.Dimensions() == DimPoint {
		// degenerate line string is a point
		ls[0].addPosition(q, inside, boundary)
		return
	}

	if !ls.Bounds().ContainsPoint(q) {
		return
	}

	// per SFS, a closed line string has no boundary
	if !ls.Closed() && (q == ls[0] || q == ls[len(ls)-1]) {
		*boundary++
		return
	}
	for i := 1; i < len(ls); i++ {
		if onSegment(q, ls[i-1], ls[i]) {
			*inside = true
			return
		}
	}
}

// onSegment returns true if q lies on the closed segment (a,b).
func onSegment(q, a, b Point) bool {
	if q.X < math.Min(a.X, b.X) || math.Max(a.X, b.X) < q.X ||
		q.Y < math.Min(a.Y, b.Y) || math.Max(a.Y, b.Y) < q.Y {
		return false
	}
	return robust.Orient(a, b, q) == Collinear
}

////////////////////////////////////////////////////////////////

// MultiLineString is a set of line strings.
type MultiLineString []LineString

func (mls MultiLineString) Empty() bool {
	for _, ls := range mls {
		if !ls.Empty() {
			return false
		}
	}
	return true
}

// Closed returns true if all members are closed.
func (mls MultiLineString) Closed() bool {
	if len(mls) == 0 {
		return false
	}
	for _, ls := range mls {
		if !ls.Closed() {
			return false
		}
	}
	return true
}

func (mls MultiLineString) Dimensions() Dimensions {
	max := DimEmpty
	for _, ls := range mls {
		if d := ls.Dimensions(); max < d {
			max = d
			if max == DimLine {
				break
			}
		}
	}
	return max
}

func (mls MultiLineString) BoundaryDimensions() Dimensions {
	if mls.Closed() || mls.Dimensions() != DimLine {
		return DimEmpty
	}
	return DimPoint
}

func (mls MultiLineString) Bounds() Rect {
	var r Rect
	first := true
	for _, ls := range mls {
		if ls.Empty() {
			continue
		}
		if first {
			r = ls.Bounds()
			first = false
		} else {
			r = r.Expand(ls.Bounds())
		}
	}
	return r
}

func (mls MultiLineString) addPosition(q Point, inside *bool, boundary *int) {
	for _, ls := range mls {
		ls.addPosition(q, inside, boundary)
	}
}

////////////////////////////////////////////////////////////////

// Polygon is a filled region bounded by a closed exterior ring, minus the
// regions of its holes. Rings should be closed and non-self-intersecting,
// results on invalid rings are undefined.
type Polygon struct {
	Exterior LineString
	Holes    []LineString
}

func (p Polygon) Empty() bool {
	return p.Exterior.Empty()
}

func (p Polygon) Dimensions() Dimensions {
	if p.Empty() {
		return DimEmpty
	}
	return DimArea
}

func (p Polygon) BoundaryDimensions() Dimensions {
	if p.Empty() {
		return DimEmpty
	}
	return DimLine
}

func (p Polygon) Bounds() Rect {
	return p.Exterior.Bounds()
}

func (p Polygon) addPosition(q Point, inside *bool, boundary *int) {
	if p.Empty() {
		return
	}
	switch posInRing(q, p.Exterior) {
	case PosOutside:
	case PosOnBoundary:
		*boundary++
	case PosInside:
		for _, hole := range p.Holes {
			switch posInRing(q, hole) {
			case PosOnBoundary:
				*boundary++
				return
			case PosInside:
				return
			}
		}
		// q is outside every hole, so it is in the polygon's interior
		*inside = true
	}
}

////////////////////////////////////////////////////////////////

// MultiPolygon is a set of polygons whose interiors must not overlap.
type MultiPolygon []Polygon

func (mp MultiPolygon) Empty() bool {
	for _, p := range mp {
		if !p.Empty() {
			return false
		}
	}
	return true
}

func (mp MultiPolygon) Dimensions() Dimensions {
	if mp.Empty() {
		return DimEmpty
	}
	return DimArea
}

func (mp MultiPolygon) BoundaryDimensions() Dimensions {
	if mp.Empty() {
		return DimEmpty
	}
	return DimLine
}

func (mp MultiPolygon) Bounds() Rect {
	var r Rect
	first := true
	for _, p := range mp {
		if p.Empty() {
			continue
		}
		if first {
			r = p.Bounds()
			first = false
		} else {
			r = r.Expand(p.Bounds())
		}
	}
	return r
}

func (mp MultiPolygon) addPosition(q Point, inside *bool, boundary *int) {
	for _, p := range mp {
		p.addPosition(q, inside, boundary)
	}
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle spanned by Min and Max.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle spanned by two opposite corners.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{Point{x0, y0}, Point{x1, y1}}
}

// Expand returns the smallest rectangle containing both r and q.
func (r Rect) Expand(q Rect) Rect {
	return r.ExpandPoint(q.Min).ExpandPoint(q.Max)
}

// ExpandPoint returns the smallest rectangle containing r and p.
func (r Rect) ExpandPoint(p Point) Rect {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// Overlaps returns true if r and q share at least one point. Rectangles are
// closed, touching boundaries overlap.
func (r Rect) Overlaps(q Rect) bool {
	return r.Min.X <= q.Max.X && q.Min.X <= r.Max.X &&
		r.Min.Y <= q.Max.Y && q.Min.Y <= r.Max.Y
}

// ContainsPoint returns true if p lies in r, including its boundary.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ToPolygon returns the rectangle as a closed counter clockwise ring.
func (r Rect) ToPolygon() Polygon {
	return Polygon{Exterior: LineString{
		r.Min,
		Point{r.Max.X, r.Min.Y},
		r.Max,
		Point{r.Min.X, r.Max.Y},
		r.Min,
	}}
}

func (r Rect) Empty() bool {
	return false
}

func (r Rect) Dimensions() Dimensions {
	if r.Min == r.Max {
		return DimPoint
	} else if r.Min.X == r.Max.X || r.Min.Y == r.Max.Y {
		return DimLine
	}
	return DimArea
}

func (r Rect) BoundaryDimensions() Dimensions {
	return r.Dimensions() - 1
}

func (r Rect) Bounds() Rect {
	return r
}

func (r Rect) addPosition(q Point, inside *bool, boundary *int) {
	if !r.ContainsPoint(q) {
		return
	}
	if q.X == r.Min.X || q.X == r.Max.X || q.Y == r.Min.Y || q.Y == r.Max.Y {
		*boundary++
	} else {
		*inside = true
	}
}

////////////////////////////////////////////////////////////////

// Triangle is a triangle given by its three corners.
type Triangle [3]Point

// ToPolygon returns the triangle as a closed ring.
func (t Triangle) ToPolygon() Polygon {
	return Polygon{Exterior: LineString{t[0], t[1], t[2], t[0]}}
}

func (t Triangle) Empty() bool {
	return false
}

func (t Triangle) Dimensions() Dimensions {
	if robust.Orient(t[0], t[1], t[2]) == Collinear {
		if t[0] == t[1] && t[1] == t[2] {
			return DimPoint
		}
		return DimLine
	}
	return DimArea
}

func (t Triangle) BoundaryDimensions() Dimensions {
	return t.Dimensions() - 1
}

func (t Triangle) Bounds() Rect {
	return Rect{t[0], t[0]}.ExpandPoint(t[1]).ExpandPoint(t[2])
}

func (t Triangle) addPosition(q Point, inside *bool, boundary *int) {
	t.ToPolygon().addPosition(q, inside, boundary)
}

////////////////////////////////////////////////////////////////

// GeometryCollection is a heterogeneous set of geometries.
type GeometryCollection []Geometry

func (gc GeometryCollection) Empty() bool {
	for _, g := range gc {
		if !g.Empty() {
			return false
		}
	}
	return true
}

func (gc GeometryCollection) Dimensions() Dimensions {
	max := DimEmpty
	for _, g := range gc {
		if d := g.Dimensions(); max < d {
			max = d
			if max == DimArea {
				break
			}
		}
	}
	return max
}

func (gc GeometryCollection) BoundaryDimensions() Dimensions {
	max := DimEmpty
	for _, g := range gc {
		if d := g.BoundaryDimensions(); max < d {
			max = d
			if max == DimLine {
				break
			}
		}
	}
	return max
}

func (gc GeometryCollection) Bounds() Rect {
	var r Rect
	first := true
	for _, g := range gc {
		if g.Empty() {
			continue
		}
		if first {
			r = g.Bounds()
			first = false
		} else {
			r = r.Expand(g.Bounds())
		}
	}
	return r
}

func (gc GeometryCollection) addPosition(q Point, inside *bool, boundary *int) {
	for _, g := range gc {
		g.addPosition(q, inside, boundary)
	}
}

////////////////////////////////////////////////////////////////

// Winding is the traversal direction of a closed ring.
type Winding int

const (
	WindingNone Winding = iota // ring is degenerate
	WindingCW
	WindingCCW
)

// ringWinding returns the winding order of a closed ring, evaluated robustly
// at the lexicographically least vertex so that nearly collinear runs
// elsewhere in the ring cannot flip the result.
func ringWinding(ring LineString) Winding {
	if len(ring) < 4 || !ring.Closed() {
		return WindingNone
	}

	// ignore the duplicated closing coordinate
	n := len(ring) - 1
	least := 0
	for i := 1; i < n; i++ {
		if pointLess(ring[i], ring[least]) {
			least = i
		}
	}

	next := (least + 1) % n
	for ring[next] == ring[least] {
		if next == least {
			// not enough distinct coordinates
			return WindingNone
		}
		next = (next + 1) % n
	}
	prev := (least + n - 1) % n
	for ring[prev] == ring[least] {
		prev = (prev + n - 1) % n
	}

	switch robust.Orient(ring[prev], ring[least], ring[next]) {
	case CounterClockwise:
		return WindingCCW
	case Clockwise:
		return WindingCW
	}
	// prev, least and next are collinear: the ring degenerates at its
	// extremal vertex, e.g. a zero-area spike
	logrus.Warnf("geom: ring at %v has no winding order, result undefined", ring[least])
	return WindingNone
}
