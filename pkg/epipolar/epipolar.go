/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package epipolar implements the local epipolar-geometry primitives the
// grid walker sweeps with: the local epipolar segment bracketing a point,
// its signed angle, and the axis-stepping move that advances a point pair
// along or across that line.
package epipolar

/*****************************************************************************************************************/

import (
	"errors"
	"math"

	"github.com/geostereo/rpcrect/pkg/coloc"
	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/rpc"
)

/*****************************************************************************************************************/

// ErrInvalidAxis is returned by MoveAlongAxis when axis is neither 0 nor 1.
var ErrInvalidAxis = errors.New("epipolar: axis must be 0 or 1")

/*****************************************************************************************************************/

// DefaultElevationOffset is the finite-difference altitude step used to
// bracket a local epipolar line when the caller does not supply one.
const DefaultElevationOffset = 50.0

/*****************************************************************************************************************/

// Point is a left- or right-image sensor position with its ground altitude.
type Point struct {
	Row, Col, Alt float64
}

/*****************************************************************************************************************/

// Segment is the (start, end) pair bracketing a local epipolar line, both
// expressed in the same image's sensor frame.
type Segment struct {
	Start, End Point
}

/*****************************************************************************************************************/

// LocalSegment computes the local epipolar segment through left-image point
// p: it colocates to the right image at p's altitude, then brackets that
// right-image point by ±elevationOffset in altitude and colocates each back
// to the left image.
func LocalSegment(left, right rpc.Model, p Point, elevationOffset float64, sink diagnostics.Sink) (Segment, error) {
	rightRow, rightCol, err := coloc.Colocate(left, right, p.Row, p.Col, p.Alt, sink)
	if err != nil {
		return Segment{}, err
	}

	startRow, startCol, err := coloc.Colocate(right, left, rightRow, rightCol, p.Alt-elevationOffset, sink)
	if err != nil {
		return Segment{}, err
	}

	endRow, endCol, err := coloc.Colocate(right, left, rightRow, rightCol, p.Alt+elevationOffset, sink)
	if err != nil {
		return Segment{}, err
	}

	return Segment{
		Start: Point{Row: startRow, Col: startCol, Alt: p.Alt - elevationOffset},
		End:   Point{Row: endRow, Col: endCol, Alt: p.Alt + elevationOffset},
	}, nil
}

/*****************************************************************************************************************/

// Angle returns the signed angle, in radians, of the line from s.Start to
// s.End, with the column-tie cases resolved explicitly rather than left to
// atan2's own (equally valid, but differently signed) quadrant convention.
func Angle(s Segment) float64 {
	dCol := s.End.Col - s.Start.Col
	dRow := s.End.Row - s.Start.Row

	switch {
	case dCol == 0 && dRow > 0:
		return math.Pi / 2
	case dCol == 0:
		return -math.Pi / 2
	case dCol > 0:
		return math.Atan(dRow / dCol)
	default:
		return math.Pi + math.Atan(dRow/dCol)
	}
}

/*****************************************************************************************************************/

// AngleBatch applies Angle across a batch of segments, preserving order.
func AngleBatch(segments []Segment) []float64 {
	out := make([]float64, len(segments))
	for i, s := range segments {
		out[i] = Angle(s)
	}
	return out
}

/*****************************************************************************************************************/

// MoveAlongAxis steps the left coordinate by one epi_step along the local
// epipolar direction (axis=0) or across to the next epipolar line
// (axis=1), and colocates the result into the right image. spacing is the
// mean pixel size; see Spacing.
func MoveAlongAxis(left, right rpc.Model, current Point, angle, epiStep, spacing float64, axis int, sink diagnostics.Sink) (nextLeft, nextRight Point, err error) {
	if axis != 0 && axis != 1 {
		return Point{}, Point{}, ErrInvalidAxis
	}

	alphaPrime := angle + float64(axis)*math.Pi/2

	dCol := epiStep * spacing * math.Cos(alphaPrime)
	dRow := epiStep * spacing * math.Sin(alphaPrime)

	nextLeft = Point{
		Row: current.Row + dRow,
		Col: current.Col + dCol,
		Alt: current.Alt,
	}

	rightRow, rightCol, err := coloc.Colocate(left, right, nextLeft.Row, nextLeft.Col, nextLeft.Alt, sink)
	if err != nil {
		return Point{}, Point{}, err
	}

	nextRight = Point{Row: rightRow, Col: rightCol, Alt: nextLeft.Alt}

	return nextLeft, nextRight, nil
}

/*****************************************************************************************************************/

// Spacing returns the mean of the absolute pixel sizes, the isotropic
// ground-sampling distance used throughout the epipolar primitives.
func Spacing(pixelSizeRow, pixelSizeCol float64) float64 {
	return 0.5 * (math.Abs(pixelSizeRow) + math.Abs(pixelSizeCol))
}

/*****************************************************************************************************************/
