package geom

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestDimensions(t *testing.T) {
	var tests = []struct {
		g        Geometry
		dim      Dimensions
		boundary Dimensions
	}{
		{Point{1.0, 2.0}, DimPoint, DimEmpty},
		{MultiPoint{}, DimEmpty, DimEmpty},
		{MultiPoint{{1.0, 2.0}}, DimPoint, DimEmpty},
		{LineString{}, DimEmpty, DimEmpty},
		{LineString{{0.0, 0.0}, {1.0, 1.0}}, DimLine, DimPoint},
		{LineString{{0.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}, DimLine, DimEmpty}, // closed
		{LineString{{1.0, 1.0}, {1.0, 1.0}}, DimPoint, DimEmpty},            // degenerate
		{MultiLineString{{{0.0, 0.0}, {1.0, 1.0}}}, DimLine, DimPoint},
		{Polygon{}, DimEmpty, DimEmpty},
		{Polygon{Exterior: LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}}, DimArea, DimLine},
		{MultiPolygon{}, DimEmpty, DimEmpty},
		{NewRect(0.0, 0.0, 1.0, 1.0), DimArea, DimLine},
		{NewRect(0.0, 0.0, 0.0, 1.0), DimLine, DimPoint},
		{NewRect(1.0, 1.0, 1.0, 1.0), DimPoint, DimEmpty},
		{Triangle{{0.0, 0.0}, {1.0, 0.0}, {0.0, 1.0}}, DimArea, DimLine},
		{Triangle{{0.0, 0.0}, {1.0, 1.0}, {2.0, 2.0}}, DimLine, DimPoint},
		{Triangle{{1.0, 1.0}, {1.0, 1.0}, {1.0, 1.0}}, DimPoint, DimEmpty},
		{GeometryCollection{}, DimEmpty, DimEmpty},
		{GeometryCollection{Point{0.0, 0.0}, LineString{{0.0, 0.0}, {1.0, 1.0}}}, DimLine, DimPoint},
	}
	for i, tt := range tests {
		test.That(t, tt.g.Dimensions() == tt.dim, i, "dimensions of", tt.g)
		test.That(t, tt.g.BoundaryDimensions() == tt.boundary, i, "boundary dimensions of", tt.g)
	}
}

func TestClosed(t *testing.T) {
	test.That(t, LineString{{0.0, 0.0}, {1.0, 0.0}, {0.0, 0.0}}.Closed(), "ring is closed")
	test.That(t, !LineString{{0.0, 0.0}, {1.0, 0.0}}.Closed(), "open line")
	test.That(t, !LineString{}.Closed(), "empty line")
	test.That(t, !MultiLineString{}.Closed(), "empty multi line")
	test.That(t, MultiLineString{{{0.0, 0.0}, {1.0, 0.0}, {0.0, 0.0}}}.Closed(), "closed members")
	test.That(t, !MultiLineString{{{0.0, 0.0}, {1.0, 0.0}, {0.0, 0.0}}, {{0.0, 0.0}, {1.0, 1.0}}}.Closed(), "one open member")
}

func TestBounds(t *testing.T) {
	test.T(t, Point{1.0, 2.0}.Bounds(), Rect{Point{1.0, 2.0}, Point{1.0, 2.0}})
	test.T(t, LineString{{2.0, 1.0}, {0.0, 3.0}, {1.0, -1.0}}.Bounds(), NewRect(0.0, -1.0, 2.0, 3.0))
	test.T(t, Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 4.0}}.Bounds(), NewRect(0.0, 0.0, 4.0, 4.0))
	test.T(t, MultiPolygon{
		{Exterior: LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}},
		{Exterior: LineString{{5.0, 5.0}, {6.0, 5.0}, {6.0, 6.0}, {5.0, 5.0}}},
	}.Bounds(), NewRect(0.0, 0.0, 6.0, 6.0))
}

func TestRect(t *testing.T) {
	test.T(t, NewRect(2.0, 3.0, 0.0, 1.0), Rect{Point{0.0, 1.0}, Point{2.0, 3.0}})
	test.That(t, NewRect(0.0, 0.0, 2.0, 2.0).Overlaps(NewRect(2.0, 2.0, 3.0, 3.0)), "touching rectangles overlap")
	test.That(t, !NewRect(0.0, 0.0, 1.0, 1.0).Overlaps(NewRect(2.0, 2.0, 3.0, 3.0)), "disjoint rectangles")
	test.That(t, NewRect(0.0, 0.0, 2.0, 2.0).ContainsPoint(Point{2.0, 1.0}), "boundary point contained")
	test.That(t, !NewRect(0.0, 0.0, 2.0, 2.0).ContainsPoint(Point{3.0, 1.0}), "outside point")

	ring := NewRect(0.0, 0.0, 1.0, 2.0).ToPolygon().Exterior
	test.That(t, ring.Closed(), "rectangle ring is closed")
	test.T(t, ringWinding(ring), WindingCCW)
}

func TestPosition(t *testing.T) {
	poly := Polygon{Exterior: LineString{{0.0, 0.0}, {3.0, 0.0}, {3.0, 3.0}, {0.0, 3.0}, {0.0, 0.0}}}
	holed := Polygon{
		Exterior: LineString{{0.0, 0.0}, {5.0, 0.0}, {5.0, 5.0}, {0.0, 5.0}, {0.0, 0.0}},
		Holes:    []LineString{{{1.0, 1.0}, {4.0, 1.0}, {4.0, 4.0}, {1.0, 4.0}, {1.0, 1.0}}},
	}
	var tests = []struct {
		g   Geometry
		p   Point
		pos CoordPos
	}{
		{Point{1.0, 1.0}, Point{1.0, 1.0}, PosInside},
		{Point{1.0, 1.0}, Point{2.0, 2.0}, PosOutside},
		{LineString{{0.0, 0.0}, {2.0, 2.0}}, Point{1.0, 1.0}, PosInside},
		{LineString{{0.0, 0.0}, {2.0, 2.0}}, Point{0.0, 0.0}, PosOnBoundary},
		{LineString{{0.0, 0.0}, {2.0, 2.0}}, Point{1.0, 2.0}, PosOutside},
		{LineString{{0.0, 0.0}, {2.0, 0.0}, {2.0, 2.0}, {0.0, 0.0}}, Point{0.0, 0.0}, PosInside}, // closed, no boundary
		{poly, Point{1.0, 1.0}, PosInside},
		{poly, Point{0.0, 1.0}, PosOnBoundary},
		{poly, Point{3.0, 3.0}, PosOnBoundary},
		{poly, Point{4.0, 1.0}, PosOutside},
		{holed, Point{0.5, 0.5}, PosInside},
		{holed, Point{1.0, 2.0}, PosOnBoundary}, // on the hole ring
		{holed, Point{2.0, 2.0}, PosOutside},    // in the hole
		{NewRect(0.0, 0.0, 2.0, 2.0), Point{1.0, 1.0}, PosInside},
		{NewRect(0.0, 0.0, 2.0, 2.0), Point{2.0, 1.0}, PosOnBoundary},
		{Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 4.0}}, Point{1.0, 1.0}, PosInside},
		{Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 4.0}}, Point{2.0, 2.0}, PosOnBoundary},
		{Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 4.0}}, Point{3.0, 3.0}, PosOutside},

		// two line strings meeting in an endpoint cancel the boundary there
		{MultiLineString{{{0.0, 0.0}, {1.0, 1.0}}, {{1.0, 1.0}, {2.0, 0.0}}}, Point{1.0, 1.0}, PosInside},
		// three line strings leave it on the boundary
		{MultiLineString{{{0.0, 0.0}, {1.0, 1.0}}, {{1.0, 1.0}, {2.0, 0.0}}, {{1.0, 1.0}, {1.0, 2.0}}}, Point{1.0, 1.0}, PosOnBoundary},

		{MultiPoint{}, Point{0.0, 0.0}, PosOutside},
		{GeometryCollection{poly, Point{7.0, 7.0}}, Point{7.0, 7.0}, PosInside},
	}
	for i, tt := range tests {
		got := Position(tt.g, tt.p)
		test.That(t, got == tt.pos, i, "position of", tt.p, "got", got, "want", tt.pos)
	}
}

func TestRingWinding(t *testing.T) {
	var tests = []struct {
		ring    LineString
		winding Winding
	}{
		{LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}, WindingCCW},
		{LineString{{0.0, 0.0}, {1.0, 1.0}, {1.0, 0.0}, {0.0, 0.0}}, WindingCW},
		{LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}, WindingNone},           // not closed
		{LineString{{0.0, 0.0}, {1.0, 0.0}, {0.0, 0.0}}, WindingNone},           // too short
		{LineString{{0.0, 0.0}, {1.0, 1.0}, {2.0, 2.0}, {0.0, 0.0}}, WindingNone}, // zero area
	}
	for i, tt := range tests {
		test.That(t, ringWinding(tt.ring) == tt.winding, i, "winding of", tt.ring)
	}
}
