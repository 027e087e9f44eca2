package geom

import (
	"testing"

	polyclip "github.com/ctessum/polyclip-go"
	"github.com/tdewolff/test"
)

func polyArea(mp MultiPolygon) float64 {
	area := 0.0
	for _, p := range mp {
		area += ringArea(p.Exterior)
		for _, hole := range p.Holes {
			area -= ringArea(hole)
		}
	}
	return area
}

func TestClipOverlapping(t *testing.T) {
	a := NewRect(0.0, 0.0, 2.0, 2.0)
	b := NewRect(1.0, 1.0, 3.0, 3.0)

	test.Float(t, polyArea(Union(a, b)), 7.0)
	test.Float(t, polyArea(Intersection(a, b)), 1.0)
	test.Float(t, polyArea(Difference(a, b)), 3.0)
	test.Float(t, polyArea(Difference(b, a)), 3.0)
	test.Float(t, polyArea(Xor(a, b)), 6.0)

	test.That(t, EqualsTopo(Intersection(a, b), NewRect(1.0, 1.0, 2.0, 2.0)), "intersection is the middle square")
	union := mustParseWKT(t, "POLYGON ((0 0, 2 0, 2 1, 3 1, 3 3, 1 3, 1 2, 0 2, 0 0))")
	test.That(t, EqualsTopo(Union(a, b), union), "union is the octagon")
	diff := mustParseWKT(t, "POLYGON ((0 0, 2 0, 2 1, 1 1, 1 2, 0 2, 0 0))")
	test.That(t, EqualsTopo(Difference(a, b), diff), "difference is the L shape")
}

func TestClipDisjoint(t *testing.T) {
	a := NewRect(0.0, 0.0, 1.0, 1.0)
	b := NewRect(5.0, 5.0, 6.0, 6.0)

	union := Union(a, b)
	test.T(t, len(union), 2)
	test.Float(t, polyArea(union), 2.0)
	test.That(t, Intersection(a, b).Empty(), "disjoint rectangles have an empty intersection")
	test.That(t, EqualsTopo(Difference(a, b), a), "difference with a disjoint clip is the subject")
}

func TestClipAdjacent(t *testing.T) {
	a := NewRect(0.0, 0.0, 1.0, 1.0)
	b := NewRect(1.0, 0.0, 2.0, 1.0)
	test.That(t, EqualsTopo(Union(a, b), NewRect(0.0, 0.0, 2.0, 1.0)), "adjacent rectangles merge")
	test.Float(t, polyArea(Intersection(a, b)), 0.0)
}

func TestClipHole(t *testing.T) {
	outer := NewRect(0.0, 0.0, 5.0, 5.0)
	inner := NewRect(1.0, 1.0, 4.0, 4.0)

	ring := Difference(outer, inner)
	test.Float(t, polyArea(ring), 16.0)
	test.T(t, Position(ring, Point{0.5, 0.5}), PosInside)
	test.T(t, Position(ring, Point{2.5, 2.5}), PosOutside)

	// the hole survives a union with a disjoint polygon
	far := NewRect(10.0, 10.0, 11.0, 11.0)
	union := Union(ring, far)
	test.Float(t, polyArea(union), 17.0)
	test.T(t, Position(union, Point{2.5, 2.5}), PosOutside)
}

func TestClipTriangle(t *testing.T) {
	tri := Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 4.0}}
	rect := NewRect(0.0, 0.0, 4.0, 4.0)
	test.Float(t, polyArea(Intersection(tri, rect)), 8.0)
	test.That(t, EqualsTopo(Union(tri, rect), rect), "triangle lies within the rectangle")
}

func TestFromPolyclipSharedVertex(t *testing.T) {
	// a hole whose first vertex lies on the shell still classifies as a hole
	p := polyclip.Polygon{
		{{X: 0.0, Y: 0.0}, {X: 4.0, Y: 0.0}, {X: 4.0, Y: 4.0}, {X: 0.0, Y: 4.0}},
		{{X: 0.0, Y: 2.0}, {X: 2.0, Y: 1.0}, {X: 2.0, Y: 3.0}},
	}
	mp := fromPolyclip(p)
	test.T(t, len(mp), 1)
	test.T(t, len(mp[0].Holes), 1)
	test.Float(t, polyArea(mp), 14.0)
	test.T(t, Position(mp, Point{2.5, 2.0}), PosInside)
	test.T(t, Position(mp, Point{1.5, 2.0}), PosOutside)
}

func TestPolygons(t *testing.T) {
	p := Polygon{Exterior: LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}}
	test.T(t, len(p.Polygons()), 1)
	test.T(t, len(MultiPolygon{p, p}.Polygons()), 2)
	test.That(t, NewRect(0.0, 0.0, 1.0, 1.0).Polygons()[0].Exterior.Closed(), "rectangle ring is closed")
	test.That(t, Triangle{{0.0, 0.0}, {1.0, 0.0}, {0.0, 1.0}}.Polygons()[0].Exterior.Closed(), "triangle ring is closed")
}
