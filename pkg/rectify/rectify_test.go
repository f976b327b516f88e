/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rectify

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/elevation"
	"github.com/geostereo/rpcrect/pkg/raster"
	"github.com/geostereo/rpcrect/pkg/rpc"
)

/*****************************************************************************************************************/

// parallaxRPC builds an RPC whose ground<->sensor mapping is exactly
// affine, separable in row/col, but couples altitude into the row/latitude
// axis by parallax — giving two such RPCs with different parallax
// coefficients a non-degenerate epipolar geometry, while keeping every
// evaluation analytically invertible so tests don't depend on Newton
// convergence.
func parallaxRPC(t *testing.T, colOffset, ligOffset, parallax float64) *rpc.RPC {
	t.Helper()

	var ic rpc.InverseCoefficients
	ic.NumCol[1] = 1 // colN = Xn
	ic.DenCol[0] = 1
	ic.NumLig[2] = 1     // rowN = Yn - parallax*Zn
	ic.NumLig[3] = -parallax
	ic.DenLig[0] = 1

	var fc rpc.ForwardCoefficients
	fc.NumX[1] = 1 // lonN = Xn
	fc.DenX[0] = 1
	fc.NumY[2] = 1     // latN = Yn + parallax*Zn
	fc.NumY[3] = parallax
	fc.DenY[0] = 1

	p := rpc.Params{
		X:   rpc.Normalization{Offset: 10, Scale: 2},
		Y:   rpc.Normalization{Offset: 20, Scale: 4},
		Alt: rpc.Normalization{Offset: 100, Scale: 50},
		Col: rpc.Normalization{Offset: colOffset, Scale: 256},
		Lig: rpc.Normalization{Offset: ligOffset, Scale: 128},
		Coefficients: rpc.Coefficients{
			Inverse: &ic,
			Forward: &fc,
		},
	}

	r, err := rpc.NewRPC(p)
	if err != nil {
		t.Fatalf("NewRPC() error = %v", err)
	}
	return r
}

/*****************************************************************************************************************/

func testImage(t *testing.T, rows, cols int) *raster.Image {
	t.Helper()
	return &raster.Image{
		NbRows:       rows,
		NbColumns:    cols,
		PixelSizeRow: 1,
		PixelSizeCol: 1,
		Transform:    raster.Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0},
	}
}

/*****************************************************************************************************************/

func TestGridShapeLaw(t *testing.T) {
	left := parallaxRPC(t, 500, 300, 0)
	right := parallaxRPC(t, 500, 300, 0.2)
	img := testImage(t, 1000, 1000)

	const epiStep = 30.0

	plan, err := PrepareRectification(img, left, right, elevation.Constant(100), epiStep, 50, diagnostics.NopSink)
	if err != nil {
		t.Fatalf("PrepareRectification() error = %v", err)
	}

	wantRows := int(float64(plan.RectifiedSize[0])/epiStep) + 2
	wantCols := int(float64(plan.RectifiedSize[1])/epiStep) + 2

	if plan.GridSize[0] != wantRows || plan.GridSize[1] != wantCols {
		t.Errorf("GridSize = %v; want (%d,%d)", plan.GridSize, wantRows, wantCols)
	}
}

/*****************************************************************************************************************/

func TestBaselineRatioPositivity(t *testing.T) {
	left := parallaxRPC(t, 500, 300, 0)
	right := parallaxRPC(t, 600, 350, 0.2)
	img := testImage(t, 200, 200)

	grids, err := ComputeStereoGrids(img, left, right, elevation.Constant(100), 30, 50, diagnostics.NopSink)
	if err != nil {
		t.Fatalf("ComputeStereoGrids() error = %v", err)
	}

	if !(grids.MeanBaselineRatio > 0) || math.IsNaN(grids.MeanBaselineRatio) || math.IsInf(grids.MeanBaselineRatio, 0) {
		t.Errorf("MeanBaselineRatio = %v; want finite and > 0", grids.MeanBaselineRatio)
	}
}

/*****************************************************************************************************************/

func TestSelfStereoGridsAreEqual(t *testing.T) {
	r := parallaxRPC(t, 500, 300, 0.2)
	img := testImage(t, 200, 200)

	grids, err := ComputeStereoGrids(img, r, r, elevation.Constant(100), 30, 50, diagnostics.NopSink)
	if err != nil {
		t.Fatalf("ComputeStereoGrids() error = %v", err)
	}

	if grids.Left.Rows != grids.Right.Rows || grids.Left.Columns != grids.Right.Columns {
		t.Fatalf("grid shapes differ: left=(%d,%d) right=(%d,%d)", grids.Left.Rows, grids.Left.Columns, grids.Right.Rows, grids.Right.Columns)
	}

	for row := 0; row < grids.Left.Rows; row++ {
		for col := 0; col < grids.Left.Columns; col++ {
			lRow, lCol := grids.Left.At(row, col)
			rRow, rCol := grids.Right.At(row, col)
			if math.Abs(lRow-rRow) > 1e-6 || math.Abs(lCol-rCol) > 1e-6 {
				t.Fatalf("cell (%d,%d): left=(%v,%v) right=(%v,%v)", row, col, lRow, lCol, rRow, rCol)
			}
		}
	}

	if math.IsNaN(grids.MeanBaselineRatio) || math.IsInf(grids.MeanBaselineRatio, 0) {
		t.Errorf("MeanBaselineRatio = %v; want finite", grids.MeanBaselineRatio)
	}
}

/*****************************************************************************************************************/

func TestDisplacementConversionRoundTrips(t *testing.T) {
	g := raster.NewGrid(4, 5, 30)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			g.Set(row, col, float64(row)*1.5, float64(col)*0.75)
		}
	}

	original := make([][2]float64, g.Rows*g.Columns)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			r, c := g.At(row, col)
			original[row*g.Columns+col] = [2]float64{r, c}
		}
	}

	ToPositions(g)
	PositionsToDisplacementGrid(g)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			r, c := g.At(row, col)
			want := original[row*g.Columns+col]
			if math.Abs(r-want[0]) > 1e-9 || math.Abs(c-want[1]) > 1e-9 {
				t.Errorf("cell (%d,%d) = (%v,%v); want %v", row, col, r, c, want)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestPositionsToDisplacementGridIdempotentOnZero(t *testing.T) {
	g := raster.NewGrid(3, 3, 30)

	PositionsToDisplacementGrid(g)
	first := append([]float64(nil), g.Data[0]...)

	PositionsToDisplacementGrid(ToPositions(g))
	second := g.Data[0]

	for i := range first {
		if math.Abs(first[i]-second[i]) > 1e-9 {
			t.Errorf("band0[%d] = %v on second pass; want %v", i, second[i], first[i])
		}
	}
}

/*****************************************************************************************************************/
