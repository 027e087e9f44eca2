package geom

import "math/big"

// Orientation is the turn direction of the point sequence (a,b,c).
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Collinear"
}

// Kernel computes orientation predicates. Two implementations exist:
// SimpleKernel evaluates the cross product in plain float64 arithmetic and is
// adequate for well-conditioned input, while RobustKernel stays consistent on
// nearly collinear points. All orientation decisions in this package funnel
// through a Kernel so that angular sorts remain transitive.
type Kernel interface {
	Orient(a, b, c Point) Orientation
}

// SimpleKernel evaluates orientation with ordinary floating-point arithmetic.
type SimpleKernel struct{}

func (SimpleKernel) Orient(a, b, c Point) Orientation {
	det := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	return orientationOf(det)
}

// RobustKernel evaluates orientation with a fast floating-point filter and
// falls back to exact big.Float arithmetic when the filter cannot decide.
// The filter is the approach due to Jonathan Shewchuk.
type RobustKernel struct{}

// safely greater than the relative round-off error of float64 arithmetic
const orientationErrBound = 1e-15

func (RobustKernel) Orient(a, b, c Point) Orientation {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case 0.0 < detLeft:
		if detRight <= 0.0 {
			return orientationOf(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0.0:
		if 0.0 <= detRight {
			return orientationOf(det)
		}
		detSum = -detLeft - detRight
	default:
		return orientationOf(det)
	}

	errBound := orientationErrBound * detSum
	if det >= errBound || -det >= errBound {
		return orientationOf(det)
	}
	return orientExact(a, b, c)
}

func orientationOf(det float64) Orientation {
	if 0.0 < det {
		return CounterClockwise
	} else if det < 0.0 {
		return Clockwise
	}
	return Collinear
}

// orientExact computes the sign of the orientation determinant in big.Float
// arithmetic. Differences and products of float64 values are exact at a
// sufficient precision, so the sign is exact.
func orientExact(a, b, c Point) Orientation {
	var dx1, dy1, dx2, dy2, det big.Float
	dx1.SetPrec(200).SetFloat64(b.X)
	dx1.Sub(&dx1, big.NewFloat(a.X).SetPrec(200))
	dy1.SetPrec(200).SetFloat64(b.Y)
	dy1.Sub(&dy1, big.NewFloat(a.Y).SetPrec(200))
	dx2.SetPrec(200).SetFloat64(c.X)
	dx2.Sub(&dx2, big.NewFloat(b.X).SetPrec(200))
	dy2.SetPrec(200).SetFloat64(c.Y)
	dy2.Sub(&dy2, big.NewFloat(b.Y).SetPrec(200))

	dx1.Mul(&dx1, &dy2)
	dy1.Mul(&dy1, &dx2)
	det.Sub(&dx1, &dy1)

	switch det.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	}
	return Collinear
}

// robust is the kernel used by the relate engine.
var robust Kernel = RobustKernel{}
