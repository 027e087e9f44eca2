package geom

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineIntersect(t *testing.T) {
	var tests = []struct {
		name           string
		p0, p1, q0, q1 Point
		pts            []Point
		proper         bool
	}{
		{"proper crossing",
			Point{0.0, 0.0}, Point{2.0, 2.0}, Point{0.0, 2.0}, Point{2.0, 0.0},
			[]Point{{1.0, 1.0}}, true},
		{"disjoint",
			Point{0.0, 0.0}, Point{1.0, 0.0}, Point{0.0, 1.0}, Point{1.0, 1.0},
			nil, false},
		{"disjoint collinear",
			Point{0.0, 0.0}, Point{1.0, 0.0}, Point{2.0, 0.0}, Point{3.0, 0.0},
			nil, false},
		{"endpoint on interior",
			Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, 0.0}, Point{1.0, 5.0},
			[]Point{{1.0, 0.0}}, false},
		{"shared endpoint",
			Point{0.0, 0.0}, Point{1.0, 1.0}, Point{1.0, 1.0}, Point{2.0, 0.0},
			[]Point{{1.0, 1.0}}, false},
		{"shared endpoint collinear",
			Point{0.0, 0.0}, Point{1.0, 0.0}, Point{1.0, 0.0}, Point{2.0, 0.0},
			[]Point{{1.0, 0.0}}, false},
		{"collinear overlap",
			Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, 0.0}, Point{3.0, 0.0},
			[]Point{{1.0, 0.0}, {2.0, 0.0}}, false},
		{"collinear containment",
			Point{0.0, 0.0}, Point{3.0, 0.0}, Point{1.0, 0.0}, Point{2.0, 0.0},
			[]Point{{1.0, 0.0}, {2.0, 0.0}}, false},
		{"equal segments",
			Point{0.0, 0.0}, Point{1.0, 1.0}, Point{0.0, 0.0}, Point{1.0, 1.0},
			[]Point{{0.0, 0.0}, {1.0, 1.0}}, false},
		{"parallel",
			Point{0.0, 0.0}, Point{2.0, 2.0}, Point{0.0, 1.0}, Point{2.0, 3.0},
			nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			li := lineIntersect(tt.p0, tt.p1, tt.q0, tt.q1)
			test.T(t, li.n, len(tt.pts))
			test.T(t, li.proper, tt.proper)
			for i, pt := range tt.pts {
				test.T(t, li.pts[i], pt)
			}
		})
	}
}

func TestLineIntersectExactEndpoint(t *testing.T) {
	// an improper hit copies the endpoint instead of computing the point
	p0, p1 := Point{0.0, 0.0}, Point{1.0, 0.75}
	q0 := Point{0.5, 0.375}
	li := lineIntersect(p0, p1, q0, Point{0.5, -3.0})
	test.T(t, li.n, 1)
	test.T(t, li.pts[0], q0)
}

func TestLineIntersectNearParallel(t *testing.T) {
	// nearly parallel segments from a JTS robustness case: the computed point
	// must land on both segments
	p0, p1 := Point{-2089426.5233462777, 1180182.3877339689}, Point{-4703463.8550699912, 1529178.7249690021}
	q0, q1 := Point{-2183940.6796066797, 1180391.6293588204}, Point{-4487228.9016036568, 1471954.5283325353}
	li := lineIntersect(p0, p1, q0, q1)
	if li.n == 1 {
		test.That(t, segBounds(p0, p1).ContainsPoint(li.pts[0]), "point on first segment bounds")
		test.That(t, segBounds(q0, q1).ContainsPoint(li.pts[0]), "point on second segment bounds")
	}
}

func TestDistPointSeg(t *testing.T) {
	test.Float(t, distPointSeg(Point{0.0, 1.0}, Point{-1.0, 0.0}, Point{1.0, 0.0}), 1.0)
	test.Float(t, distPointSeg(Point{3.0, 4.0}, Point{0.0, 0.0}, Point{0.0, 0.0}), 5.0)
	test.Float(t, distPointSeg(Point{2.0, 2.0}, Point{0.0, 0.0}, Point{1.0, 0.0}), distPointSeg(Point{2.0, 2.0}, Point{1.0, 0.0}, Point{0.0, 0.0}))
	test.Float(t, distPointSeg(Point{-1.0, 1.0}, Point{0.0, 0.0}, Point{2.0, 0.0}), distPointSeg(Point{-1.0, 1.0}, Point{0.0, 0.0}, Point{0.0, 0.0}))
}

func TestEdgeDistance(t *testing.T) {
	a, b := Point{0.0, 0.0}, Point{10.0, 2.0}
	dStart := edgeDistance(a, a, b)
	dMid := edgeDistance(Point{5.0, 1.0}, a, b)
	dEnd := edgeDistance(b, a, b)
	test.Float(t, dStart, 0.0)
	test.That(t, dStart < dMid && dMid < dEnd, "measure is monotone along the segment")

	// the dominant axis switches for steep segments
	test.Float(t, edgeDistance(Point{1.0, 5.0}, Point{0.0, 0.0}, Point{2.0, 10.0}), 5.0)
}
