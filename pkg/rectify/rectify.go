/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package rectify composes colocation and the epipolar primitives into the
// rectification planner and the two-grid epipolar walker: the top-level
// operations a stereo-rectification pipeline actually calls.
package rectify

/*****************************************************************************************************************/

import (
	"math"

	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/elevation"
	"github.com/geostereo/rpcrect/pkg/epipolar"
	"github.com/geostereo/rpcrect/pkg/raster"
	"github.com/geostereo/rpcrect/pkg/rpc"
)

/*****************************************************************************************************************/

// Corner is one footprint vertex: a georeferenced left-image position with
// the mean altitude of the local epipolar bracket that produced it.
type Corner struct {
	Row, Col, Alt float64
}

/*****************************************************************************************************************/

// Footprint holds the four epipolar grid corners expressed in the left
// image's georeferenced frame, in [UL, LL, LR, UR] order.
type Footprint [4]Corner

/*****************************************************************************************************************/

// Plan is the output of PrepareRectification: the sizing and placement of
// the epipolar grids and rectified images, computed once from the local
// epipolar geometry at the left image's origin.
type Plan struct {
	GridPixelSize [2]float64 // [row, col]
	GridSize      [2]int     // [rows, cols]
	RectifiedSize [2]int     // [rows, cols]
	Footprint     Footprint
}

/*****************************************************************************************************************/

// PrepareRectification determines the size and spacing of the epipolar
// grids and the upper-left origin of the stereo-rectified left image, by
// projecting the left image's footprint into the local epipolar frame at
// its origin.
func PrepareRectification(leftImg *raster.Image, left, right rpc.Model, elev elevation.Model, epiStep, elevationOffset float64, sink diagnostics.Sink) (Plan, error) {
	sink = diagnostics.Or(sink)

	meanSpacing := epipolar.Spacing(leftImg.PixelSizeRow, leftImg.PixelSizeCol)

	gridPixelSize := [2]float64{epiStep * meanSpacing, epiStep * meanSpacing}

	originRow, originCol := leftImg.TransformIndexToPhysicalPoint(0, 0)

	originLon, originLat, err := left.Forward([]float64{originRow}, []float64{originCol}, 0, sink)
	if err != nil {
		return Plan{}, err
	}
	alt := elev.Sample(originLon[0], originLat[0])

	origin := epipolar.Point{Row: originRow, Col: originCol, Alt: alt}
	segment, err := epipolar.LocalSegment(left, right, origin, elevationOffset, sink)
	if err != nil {
		return Plan{}, err
	}

	a := epipolar.Angle(segment)

	alongX, alongY := math.Cos(a), math.Sin(a)
	orthoX, orthoY := -math.Sin(a), math.Cos(a)

	ulx, uly := 0.0, 0.0
	urx := alongX * float64(leftImg.NbColumns) * leftImg.PixelSizeCol
	ury := orthoX * float64(leftImg.NbColumns) * leftImg.PixelSizeCol
	llx := alongY * float64(leftImg.NbRows) * leftImg.PixelSizeRow
	lly := orthoY * float64(leftImg.NbRows) * leftImg.PixelSizeRow
	lrx := alongX*float64(leftImg.NbColumns)*leftImg.PixelSizeCol + alongY*float64(leftImg.NbRows)*leftImg.PixelSizeRow
	lry := orthoX*float64(leftImg.NbColumns)*leftImg.PixelSizeCol + orthoY*float64(leftImg.NbRows)*leftImg.PixelSizeRow

	minx := math.Min(math.Min(urx, llx), math.Min(lrx, ulx))
	miny := math.Min(math.Min(ury, lly), math.Min(lry, uly))
	maxx := math.Max(math.Max(urx, llx), math.Max(lrx, ulx))
	maxy := math.Max(math.Max(ury, lly), math.Max(lry, uly))

	rectifiedSize := [2]int{
		int((maxy - miny) / meanSpacing),
		int((maxx - minx) / meanSpacing),
	}

	meanAlt := (segment.Start.Alt + segment.End.Alt) / 2.0

	corner := func(x, y float64) Corner {
		return Corner{
			Row: origin.Row + (alongY*x + orthoY*y),
			Col: origin.Col + (alongX*x + orthoX*y),
			Alt: meanAlt,
		}
	}

	footprint := Footprint{
		corner(minx, miny),                       // UL
		corner(maxx+epiStep, miny),                // LL
		corner(maxx+epiStep, maxy+epiStep),         // LR
		corner(minx, maxy+epiStep),                 // UR
	}

	gridSize := [2]int{
		int(float64(rectifiedSize[0])/epiStep) + 2,
		int(float64(rectifiedSize[1])/epiStep) + 2,
	}

	return Plan{
		GridPixelSize: gridPixelSize,
		GridSize:      gridSize,
		RectifiedSize: rectifiedSize,
		Footprint:     footprint,
	}, nil
}

/*****************************************************************************************************************/

// GetEpipolarExtent returns the epipolar footprint's geographic bounding
// box, in the order [lat_min, lon_min, lat_max, lon_max] — the source's
// variable names suggest lon/lat ordering, but the return order is pinned
// verbatim regardless.
func GetEpipolarExtent(leftImg *raster.Image, left, right rpc.Model, elev elevation.Model, epiStep, elevationOffset, margin float64) ([4]float64, error) {
	plan, err := PrepareRectification(leftImg, left, right, elev, epiStep, elevationOffset, diagnostics.NopSink)
	if err != nil {
		return [4]float64{}, err
	}

	rows := make([]float64, len(plan.Footprint))
	cols := make([]float64, len(plan.Footprint))
	for i, c := range plan.Footprint {
		rows[i] = c.Row
		cols[i] = c.Col
	}

	lon, lat, err := left.Forward(rows, cols, 0, diagnostics.NopSink)
	if err != nil {
		return [4]float64{}, err
	}

	lonMin, lonMax, latMin, latMax := lon[0], lon[0], lat[0], lat[0]
	for i := range lon {
		lonMin = math.Min(lonMin, lon[i])
		lonMax = math.Max(lonMax, lon[i])
		latMin = math.Min(latMin, lat[i])
		latMax = math.Max(latMax, lat[i])
	}

	return [4]float64{latMin - margin, lonMin - margin, latMax + margin, lonMax + margin}, nil
}

/*****************************************************************************************************************/
