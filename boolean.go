package geom

import (
	"math"
	"sort"

	polyclip "github.com/ctessum/polyclip-go"
)

// Polygonal is an areal geometry that can be decomposed into polygons, the
// form the clipping operations work on.
type Polygonal interface {
	Geometry
	Polygons() MultiPolygon
}

// Polygons returns the polygon itself as a single-member MultiPolygon.
func (p Polygon) Polygons() MultiPolygon {
	return MultiPolygon{p}
}

// Polygons returns the multi polygon itself.
func (mp MultiPolygon) Polygons() MultiPolygon {
	return mp
}

// Polygons returns the rectangle as a single polygon.
func (r Rect) Polygons() MultiPolygon {
	return MultiPolygon{r.ToPolygon()}
}

// Polygons returns the triangle as a single polygon.
func (t Triangle) Polygons() MultiPolygon {
	return MultiPolygon{t.ToPolygon()}
}

// Union returns the area covered by a or b.
func Union(a, b Polygonal) MultiPolygon {
	return clip(polyclip.UNION, a, b)
}

// Intersection returns the area covered by both a and b.
func Intersection(a, b Polygonal) MultiPolygon {
	return clip(polyclip.INTERSECTION, a, b)
}

// Difference returns the area covered by a but not by b.
func Difference(a, b Polygonal) MultiPolygon {
	return clip(polyclip.DIFFERENCE, a, b)
}

// Xor returns the area covered by exactly one of a and b.
func Xor(a, b Polygonal) MultiPolygon {
	return clip(polyclip.XOR, a, b)
}

func clip(op polyclip.Op, a, b Polygonal) MultiPolygon {
	return fromPolyclip(toPolyclip(a.Polygons()).Construct(op, toPolyclip(b.Polygons())))
}

func toPolyclip(mp MultiPolygon) polyclip.Polygon {
	var out polyclip.Polygon
	for _, p := range mp {
		for _, ring := range append([]LineString{p.Exterior}, p.Holes...) {
			contour := make(polyclip.Contour, 0, len(ring))
			for i, pt := range ring {
				// the clipper works on open contours
				if i == len(ring)-1 && ring.Closed() {
					break
				}
				contour = append(contour, polyclip.Point{X: pt.X, Y: pt.Y})
			}
			out = append(out, contour)
		}
	}
	return out
}

// fromPolyclip rebuilds exterior/hole structure from the clipper's flat
// contour set: a contour inside an odd number of others is a hole of the
// smallest ring that contains it.
func fromPolyclip(p polyclip.Polygon) MultiPolygon {
	rings := make([]LineString, 0, len(p))
	for _, contour := range p {
		if len(contour) < 3 {
			continue
		}
		ring := make(LineString, 0, len(contour)+1)
		for _, pt := range contour {
			ring = append(ring, Point{pt.X, pt.Y})
		}
		ring = append(ring, ring[0])
		rings = append(rings, ring)
	}

	type ringInfo struct {
		ring  LineString
		area  float64
		depth int
		shell int // index into shells, for holes
	}
	infos := make([]ringInfo, len(rings))
	for i, ring := range rings {
		infos[i] = ringInfo{ring: ring, area: ringArea(ring), shell: -1}
	}
	for i := range infos {
		for j := range infos {
			if i != j && ringInRing(infos[i].ring, infos[j].ring) {
				infos[i].depth++
				// the smallest containing ring is the immediate parent
				if infos[i].shell < 0 || infos[j].area < infos[infos[i].shell].area {
					infos[i].shell = j
				}
			}
		}
	}

	// shells first, in input order
	shellIndex := map[int]int{}
	var mp MultiPolygon
	for i, info := range infos {
		if info.depth%2 == 0 {
			shellIndex[i] = len(mp)
			mp = append(mp, Polygon{Exterior: info.ring})
		}
	}
	for _, info := range infos {
		if info.depth%2 == 1 && info.shell >= 0 {
			if k, ok := shellIndex[info.shell]; ok {
				mp[k].Holes = append(mp[k].Holes, info.ring)
			}
		}
	}
	sort.SliceStable(mp, func(i, j int) bool {
		return pointLess(mp[i].Exterior[0], mp[j].Exterior[0])
	})
	return mp
}

// ringInRing returns true if inner lies in the area enclosed by outer. The
// clipper's output rings may share vertices, so vertices exactly on outer are
// skipped until one classifies strictly; rings that touch outer everywhere do
// not count as contained.
func ringInRing(inner, outer LineString) bool {
	for _, p := range inner[:len(inner)-1] {
		switch posInRing(p, outer) {
		case PosInside:
			return true
		case PosOutside:
			return false
		}
	}
	return false
}

// ringArea returns the absolute area enclosed by a closed ring.
func ringArea(ring LineString) float64 {
	if len(ring) < 4 {
		return 0.0
	}
	area := 0.0
	for i := 1; i < len(ring); i++ {
		area += ring[i-1].X*ring[i].Y - ring[i].X*ring[i-1].Y
	}
	return math.Abs(area) / 2.0
}
