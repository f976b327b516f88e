/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rectify

/*****************************************************************************************************************/

import (
	"math"

	"github.com/geostereo/rpcrect/pkg/coloc"
	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/elevation"
	"github.com/geostereo/rpcrect/pkg/epipolar"
	"github.com/geostereo/rpcrect/pkg/raster"
	"github.com/geostereo/rpcrect/pkg/rpc"
)

/*****************************************************************************************************************/

// StereoGrids is the output of ComputeStereoGrids: the two epipolar
// displacement grids and the derived sizing.
type StereoGrids struct {
	Left, Right       *raster.Grid
	RectifiedRows     int
	RectifiedCols     int
	MeanBaselineRatio float64
}

/*****************************************************************************************************************/

// ComputeStereoGrids runs the grid walker: starting from the rectification
// plan's upper-left footprint corner, it seeds one left/right position per
// grid row by stepping across the epipolar lines, then sweeps every column
// advancing along each line, recording the displacement between the
// walked absolute position and the grid's own physical-frame coordinate at
// each cell.
func ComputeStereoGrids(leftImg *raster.Image, left rpc.Model, right rpc.Model, elev elevation.Model, epiStep, elevationOffset float64, sink diagnostics.Sink) (StereoGrids, error) {
	sink = diagnostics.Or(sink)

	plan, err := PrepareRectification(leftImg, left, right, elev, epiStep, elevationOffset, sink)
	if err != nil {
		return StereoGrids{}, err
	}

	meanSpacing := epipolar.Spacing(leftImg.PixelSizeRow, leftImg.PixelSizeCol)

	rows, cols := plan.GridSize[0], plan.GridSize[1]

	leftGrid := raster.NewGrid(rows, cols, epiStep)
	rightGrid := raster.NewGrid(rows, cols, epiStep)

	ul := plan.Footprint[0]

	ulLon, ulLat, err := left.Forward([]float64{ul.Row}, []float64{ul.Col}, 0, sink)
	if err != nil {
		return StereoGrids{}, err
	}
	alt := elev.Sample(ulLon[0], ulLat[0])

	startLeft := epipolar.Point{Row: ul.Row, Col: ul.Col, Alt: alt}
	startRightRow, startRightCol, err := coloc.Colocate(left, right, startLeft.Row, startLeft.Col, alt, sink)
	if err != nil {
		return StereoGrids{}, err
	}
	startRight := epipolar.Point{Row: startRightRow, Col: startRightCol, Alt: alt}

	// Seed column 0: one left/right position per grid row, obtained by
	// stepping across epipolar lines from the previous row's seed.
	leftSeeds := make([]epipolar.Point, rows)
	rightSeeds := make([]epipolar.Point, rows)
	leftSeeds[0] = startLeft
	rightSeeds[0] = startRight

	for i := 0; i < rows-1; i++ {
		segment, err := epipolar.LocalSegment(left, right, leftSeeds[i], elevationOffset, sink)
		if err != nil {
			return StereoGrids{}, err
		}
		a := epipolar.Angle(segment)

		nextLeft, nextRight, err := epipolar.MoveAlongAxis(left, right, leftSeeds[i], a, epiStep, meanSpacing, 1, sink)
		if err != nil {
			return StereoGrids{}, err
		}
		leftSeeds[i+1] = nextLeft
		rightSeeds[i+1] = nextRight
	}

	leftCoords := append([]epipolar.Point(nil), leftSeeds...)
	rightCoords := append([]epipolar.Point(nil), rightSeeds...)

	var ratioSum float64

	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			physLeftRow, physLeftCol := leftGrid.Transform.Apply(float64(row), float64(col))
			physRightRow, physRightCol := rightGrid.Transform.Apply(float64(row), float64(col))

			leftGrid.Set(row, col, leftCoords[row].Row-physLeftRow, leftCoords[row].Col-physLeftCol)
			rightGrid.Set(row, col, rightCoords[row].Row-physRightRow, rightCoords[row].Col-physRightCol)
		}

		segments := make([]epipolar.Segment, rows)
		for row := 0; row < rows; row++ {
			segment, err := epipolar.LocalSegment(left, right, leftCoords[row], elevationOffset, sink)
			if err != nil {
				return StereoGrids{}, err
			}
			segments[row] = segment

			dRow := segment.End.Row - segment.Start.Row
			dCol := segment.End.Col - segment.Start.Col
			ratioSum += math.Hypot(dRow, dCol) / (2 * elevationOffset)
		}

		angles := epipolar.AngleBatch(segments)

		for row := 0; row < rows; row++ {
			nextLeft, nextRight, err := epipolar.MoveAlongAxis(left, right, leftCoords[row], angles[row], epiStep, meanSpacing, 0, sink)
			if err != nil {
				return StereoGrids{}, err
			}
			leftCoords[row] = nextLeft
			rightCoords[row] = nextRight
		}
	}

	meanBaselineRatio := ratioSum / float64(rows*cols)

	return StereoGrids{
		Left:              leftGrid,
		Right:             rightGrid,
		RectifiedRows:     plan.RectifiedSize[0],
		RectifiedCols:     plan.RectifiedSize[1],
		MeanBaselineRatio: meanBaselineRatio,
	}, nil
}

/*****************************************************************************************************************/

// PositionsToDisplacementGrid converts a grid whose Data currently holds
// absolute georeferenced positions into a displacement grid, by
// subtracting the grid's own affine transform evaluated at each cell. It
// mutates g in place and also returns it.
func PositionsToDisplacementGrid(g *raster.Grid) *raster.Grid {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			physRow, physCol := g.Transform.Apply(float64(row), float64(col))
			rowDisp, colDisp := g.At(row, col)
			g.Set(row, col, rowDisp-physRow, colDisp-physCol)
		}
	}
	return g
}

/*****************************************************************************************************************/

// ToPositions is the inverse of PositionsToDisplacementGrid: given a
// displacement grid, it adds back the affine transform's physical
// coordinate at each cell to recover absolute positions. Round-tripping a
// grid through ToPositions then PositionsToDisplacementGrid is an
// identity, to within floating-point error.
func ToPositions(g *raster.Grid) *raster.Grid {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			physRow, physCol := g.Transform.Apply(float64(row), float64(col))
			rowDisp, colDisp := g.At(row, col)
			g.Set(row, col, rowDisp+physRow, colDisp+physCol)
		}
	}
	return g
}

/*****************************************************************************************************************/
