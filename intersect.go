package geom

import "math"

// lineIntersection is the intersection of two line segments: nothing, a
// single point, or a collinear overlap segment.
type lineIntersection struct {
	pts [2]Point
	n   int // number of intersection points, 0, 1, or 2

	// proper is set if the single intersection point lies in the interior of
	// both segments. Due to rounding the computed point of a proper
	// intersection may still snap onto an endpoint.
	proper bool
}

func (li lineIntersection) collinear() bool {
	return li.n == 2
}

// lineIntersect computes the intersection of segments (p0,p1) and (q0,q1).
// It replicates the behaviour of JTS's RobustLineIntersector: orientation
// prechecks with the robust kernel, endpoint snapping for improper hits, and
// a midpoint-conditioned homogeneous-coordinate computation with a nearest-
// endpoint fallback for proper hits.
func lineIntersect(p0, p1, q0, q1 Point) lineIntersection {
	if !segBounds(p0, p1).Overlaps(segBounds(q0, q1)) {
		return lineIntersection{}
	}

	pq0 := robust.Orient(p0, p1, q0)
	pq1 := robust.Orient(p0, p1, q1)
	if pq0 == pq1 && pq0 != Collinear {
		return lineIntersection{}
	}

	qp0 := robust.Orient(q0, q1, p0)
	qp1 := robust.Orient(q0, q1, p1)
	if qp0 == qp1 && qp0 != Collinear {
		return lineIntersection{}
	}

	if pq0 == Collinear && pq1 == Collinear && qp0 == Collinear && qp1 == Collinear {
		return collinearIntersect(p0, p1, q0, q1)
	}

	// the segments intersect in exactly one point
	if pq0 == Collinear || pq1 == Collinear || qp0 == Collinear || qp1 == Collinear {
		// An endpoint lies on the other segment. Copy the endpoint instead of
		// computing the intersection so that the result is exact. Shared
		// endpoints are checked first since the orientation tests may be
		// inconsistent about which endpoint is the hit.
		var pt Point
		if p0 == q0 || p0 == q1 {
			pt = p0
		} else if p1 == q0 || p1 == q1 {
			pt = p1
		} else if pq0 == Collinear {
			pt = q0
		} else if pq1 == Collinear {
			pt = q1
		} else if qp0 == Collinear {
			pt = p0
		} else {
			pt = p1
		}
		return lineIntersection{pts: [2]Point{pt, {}}, n: 1}
	}
	return lineIntersection{
		pts:    [2]Point{properIntersect(p0, p1, q0, q1), {}},
		n:      1,
		proper: true,
	}
}

func segBounds(a, b Point) Rect {
	return Rect{a, a}.ExpandPoint(b)
}

// collinearIntersect handles four mutually collinear endpoints: the overlap
// may be empty, a single shared endpoint, or a segment.
func collinearIntersect(p0, p1, q0, q1 Point) lineIntersection {
	segment := func(a, b Point) lineIntersection {
		return lineIntersection{pts: [2]Point{a, b}, n: 2}
	}
	point := func(a Point) lineIntersection {
		return lineIntersection{pts: [2]Point{a, {}}, n: 1}
	}

	pb := segBounds(p0, p1)
	qb := segBounds(q0, q1)
	pHasQ0 := pb.ContainsPoint(q0)
	pHasQ1 := pb.ContainsPoint(q1)
	qHasP0 := qb.ContainsPoint(p0)
	qHasP1 := qb.ContainsPoint(p1)

	switch {
	case pHasQ0 && pHasQ1:
		return segment(q0, q1)
	case qHasP0 && qHasP1:
		return segment(p0, p1)
	case pHasQ0 && qHasP0 && q0 == p0 && !pHasQ1 && !qHasP1:
		return point(q0)
	case pHasQ0 && qHasP0:
		return segment(q0, p0)
	case pHasQ0 && qHasP1 && q0 == p1 && !pHasQ1 && !qHasP0:
		return point(q0)
	case pHasQ0 && qHasP1:
		return segment(q0, p1)
	case pHasQ1 && qHasP0 && q1 == p0 && !pHasQ0 && !qHasP1:
		return point(q1)
	case pHasQ1 && qHasP0:
		return segment(q1, p0)
	case pHasQ1 && qHasP1 && q1 == p1 && !pHasQ0 && !qHasP0:
		return point(q1)
	case pHasQ1 && qHasP1:
		return segment(q1, p1)
	}
	return lineIntersection{}
}

// properIntersect computes the intersection point of two segments known to
// intersect properly. If the raw computation fails or lands outside either
// bounding box, the endpoint nearest to the other segment is a safe
// approximation.
func properIntersect(p0, p1, q0, q1 Point) Point {
	pt, ok := rawIntersect(p0, p1, q0, q1)
	if !ok || !segBounds(p0, p1).ContainsPoint(pt) || !segBounds(q0, q1).ContainsPoint(pt) {
		pt = nearestEndpoint(p0, p1, q0, q1)
	}
	return pt
}

// rawIntersect intersects the supporting lines using homogeneous coordinates.
// The inputs are conditioned by subtracting the midpoint of the bounding box
// overlap, which removes common significant digits and preserves precision.
func rawIntersect(p0, p1, q0, q1 Point) (Point, bool) {
	minX := math.Max(math.Min(p0.X, p1.X), math.Min(q0.X, q1.X))
	maxX := math.Min(math.Max(p0.X, p1.X), math.Max(q0.X, q1.X))
	minY := math.Max(math.Min(p0.Y, p1.Y), math.Min(q0.Y, q1.Y))
	maxY := math.Min(math.Max(p0.Y, p1.Y), math.Max(q0.Y, q1.Y))
	mid := Point{(minX + maxX) / 2.0, (minY + maxY) / 2.0}

	p0, p1 = p0.Sub(mid), p1.Sub(mid)
	q0, q1 = q0.Sub(mid), q1.Sub(mid)

	px := p0.Y - p1.Y
	py := p1.X - p0.X
	pw := p0.X*p1.Y - p1.X*p0.Y

	qx := q0.Y - q1.Y
	qy := q1.X - q0.X
	qw := q0.X*q1.Y - q1.X*q0.Y

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	xInt := x / w
	yInt := y / w
	if math.IsNaN(xInt) || math.IsInf(xInt, 0) || math.IsNaN(yInt) || math.IsInf(yInt, 0) {
		return Point{}, false
	}
	return Point{xInt + mid.X, yInt + mid.Y}, true
}

// nearestEndpoint returns the endpoint of either segment that lies closest to
// the other segment.
func nearestEndpoint(p0, p1, q0, q1 Point) Point {
	pt := p0
	min := distPointSeg(p0, q0, q1)
	if d := distPointSeg(p1, q0, q1); d < min {
		min, pt = d, p1
	}
	if d := distPointSeg(q0, p0, p1); d < min {
		min, pt = d, q0
	}
	if d := distPointSeg(q1, p0, p1); d < min {
		pt = q1
	}
	return pt
}

// distPointSeg returns the Euclidean distance from p to the segment (a,b).
func distPointSeg(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0.0 && dy == 0.0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0.0 {
		t = 0.0
	} else if 1.0 < t {
		t = 1.0
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// edgeDistance returns a monotone measure of how far along the segment (a,b)
// the intersection point pt lies. It is not the Euclidean distance: the
// dominant axis delta is robust against rounding and is all the intersection
// ledger needs for ordering.
func edgeDistance(pt, a, b Point) float64 {
	dx := math.Abs(b.X - a.X)
	dy := math.Abs(b.Y - a.Y)

	var dist float64
	if pt == a {
		dist = 0.0
	} else if pt == b {
		if dy < dx {
			dist = dx
		} else {
			dist = dy
		}
	} else {
		pdx := math.Abs(pt.X - a.X)
		pdy := math.Abs(pt.Y - a.Y)
		if dy < dx {
			dist = pdx
		} else {
			dist = pdy
		}
		if dist == 0.0 && pt != a {
			dist = math.Max(pdx, pdy)
		}
	}
	if dist == 0.0 && pt != a {
		panic("bug: zero edge distance for non-start intersection")
	}
	return dist
}
