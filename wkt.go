package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// WKT serializes a geometry as a well-known text string in canonical
// uppercase form, e.g. "POLYGON ((0 0, 1 0, 1 1, 0 0))". Rect and Triangle
// have no tag of their own in WKT and serialize as POLYGON.
func WKT(g Geometry) string {
	var sb strings.Builder
	writeWKT(&sb, g)
	return sb.String()
}

func writeWKT(sb *strings.Builder, g Geometry) {
	switch g := g.(type) {
	case Point:
		sb.WriteString("POINT (")
		writeCoord(sb, g)
		sb.WriteByte(')')
	case MultiPoint:
		if !writeTag(sb, "MULTIPOINT", g) {
			writeCoords(sb, g)
		}
	case LineString:
		if !writeTag(sb, "LINESTRING", g) {
			writeCoords(sb, g)
		}
	case MultiLineString:
		if !writeTag(sb, "MULTILINESTRING", g) {
			sb.WriteByte('(')
			for i, ls := range g {
				if 0 < i {
					sb.WriteString(", ")
				}
				writeCoords(sb, ls)
			}
			sb.WriteByte(')')
		}
	case Polygon:
		if !writeTag(sb, "POLYGON", g) {
			writeRings(sb, g)
		}
	case MultiPolygon:
		if !writeTag(sb, "MULTIPOLYGON", g) {
			sb.WriteByte('(')
			for i, p := range g {
				if 0 < i {
					sb.WriteString(", ")
				}
				writeRings(sb, p)
			}
			sb.WriteByte(')')
		}
	case Rect:
		writeWKT(sb, g.ToPolygon())
	case Triangle:
		writeWKT(sb, g.ToPolygon())
	case GeometryCollection:
		if !writeTag(sb, "GEOMETRYCOLLECTION", g) {
			sb.WriteByte('(')
			for i, sub := range g {
				if 0 < i {
					sb.WriteString(", ")
				}
				writeWKT(sb, sub)
			}
			sb.WriteByte(')')
		}
	default:
		panic("bug: unknown geometry type")
	}
}

// writeTag writes the geometry's tag, and " EMPTY" for empty geometries. It
// returns true when the geometry is empty and no body follows.
func writeTag(sb *strings.Builder, tag string, g Geometry) bool {
	sb.WriteString(tag)
	if g.Empty() {
		sb.WriteString(" EMPTY")
		return true
	}
	sb.WriteString(" ")
	return false
}

func writeCoord(sb *strings.Builder, p Point) {
	sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
}

func writeCoords(sb *strings.Builder, coords []Point) {
	sb.WriteByte('(')
	for i, p := range coords {
		if 0 < i {
			sb.WriteString(", ")
		}
		writeCoord(sb, p)
	}
	sb.WriteByte(')')
}

func writeRings(sb *strings.Builder, p Polygon) {
	sb.WriteByte('(')
	writeCoords(sb, p.Exterior)
	for _, hole := range p.Holes {
		sb.WriteString(", ")
		writeCoords(sb, hole)
	}
	sb.WriteByte(')')
}

// ParseWKT parses a well-known text string into a geometry. It accepts the
// seven standard tags (POINT, MULTIPOINT, LINESTRING, MULTILINESTRING,
// POLYGON, MULTIPOLYGON, GEOMETRYCOLLECTION), EMPTY bodies, and both
// MULTIPOINT coordinate forms, with or without per-point parentheses.
func ParseWKT(s string) (Geometry, error) {
	p := wktParser{s: s}
	g := p.parseGeometry()
	p.skipSpace()
	if p.err == nil && p.i != len(p.s) {
		p.fail("unexpected trailing input")
	}
	if p.err != nil {
		return nil, p.err
	}
	return g, nil
}

type wktParser struct {
	s   string
	i   int
	err error
}

func (p *wktParser) fail(msg string) {
	if p.err == nil {
		p.err = fmt.Errorf("bad WKT at offset %d: %s", p.i, msg)
	}
}

func (p *wktParser) skipSpace() {
	for p.i < len(p.s) && (p.s[p.i] == ' ' || p.s[p.i] == '\t' || p.s[p.i] == '\n' || p.s[p.i] == '\r') {
		p.i++
	}
}

// accept consumes tok case-insensitively if it is next, returning whether it
// did.
func (p *wktParser) accept(tok string) bool {
	p.skipSpace()
	if len(p.s)-p.i < len(tok) || !strings.EqualFold(p.s[p.i:p.i+len(tok)], tok) {
		return false
	}
	p.i += len(tok)
	return true
}

func (p *wktParser) expect(tok string) {
	if !p.accept(tok) {
		p.fail(fmt.Sprintf("expected %q", tok))
	}
}

func (p *wktParser) parseFloat() float64 {
	p.skipSpace()
	start := p.i
	for p.i < len(p.s) && (p.s[p.i] == '-' || p.s[p.i] == '+' || p.s[p.i] == '.' ||
		p.s[p.i] == 'e' || p.s[p.i] == 'E' || '0' <= p.s[p.i] && p.s[p.i] <= '9') {
		p.i++
	}
	f, err := strconv.ParseFloat(p.s[start:p.i], 64)
	if err != nil {
		p.fail("expected number")
	}
	return f
}

func (p *wktParser) parseCoord() Point {
	x := p.parseFloat()
	y := p.parseFloat()
	return Point{x, y}
}

func (p *wktParser) parseCoords() []Point {
	p.expect("(")
	var coords []Point
	for {
		coords = append(coords, p.parseCoord())
		if !p.accept(",") {
			break
		}
	}
	p.expect(")")
	return coords
}

func (p *wktParser) parseRings() []LineString {
	p.expect("(")
	var rings []LineString
	for {
		rings = append(rings, LineString(p.parseCoords()))
		if !p.accept(",") {
			break
		}
	}
	p.expect(")")
	return rings
}

func (p *wktParser) parseGeometry() Geometry {
	switch {
	case p.accept("GEOMETRYCOLLECTION"):
		if p.accept("EMPTY") {
			return GeometryCollection{}
		}
		p.expect("(")
		var gc GeometryCollection
		for {
			gc = append(gc, p.parseGeometry())
			if !p.accept(",") {
				break
			}
		}
		p.expect(")")
		return gc
	case p.accept("MULTIPOINT"):
		if p.accept("EMPTY") {
			return MultiPoint{}
		}
		p.expect("(")
		var mp MultiPoint
		for {
			if p.accept("(") {
				mp = append(mp, p.parseCoord())
				p.expect(")")
			} else {
				mp = append(mp, p.parseCoord())
			}
			if !p.accept(",") {
				break
			}
		}
		p.expect(")")
		return mp
	case p.accept("MULTILINESTRING"):
		if p.accept("EMPTY") {
			return MultiLineString{}
		}
		return MultiLineString(p.parseRings())
	case p.accept("MULTIPOLYGON"):
		if p.accept("EMPTY") {
			return MultiPolygon{}
		}
		p.expect("(")
		var mp MultiPolygon
		for {
			mp = append(mp, ringsToPolygon(p.parseRings()))
			if !p.accept(",") {
				break
			}
		}
		p.expect(")")
		return mp
	case p.accept("POINT"):
		if p.accept("EMPTY") {
			p.fail("POINT EMPTY is not representable")
			return nil
		}
		p.expect("(")
		pt := p.parseCoord()
		p.expect(")")
		return pt
	case p.accept("LINESTRING"):
		if p.accept("EMPTY") {
			return LineString{}
		}
		return LineString(p.parseCoords())
	case p.accept("POLYGON"):
		if p.accept("EMPTY") {
			return Polygon{}
		}
		return ringsToPolygon(p.parseRings())
	}
	p.fail("expected geometry tag")
	return nil
}

func ringsToPolygon(rings []LineString) Polygon {
	return Polygon{Exterior: rings[0], Holes: rings[1:]}
}
