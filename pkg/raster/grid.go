/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

// Grid is a 2-band raster of shape (2, H, W): band 0 is row displacement,
// band 1 is column displacement. It owns its own affine transform, the
// canonical epipolar-grid convention built by NewGridAffine. Grids are
// allocated zeroed, filled column-by-column by the walker, then released to
// the caller, who becomes the sole owner — no shared mutable state persists
// between calls.
type Grid struct {
	Rows      int
	Columns   int
	Transform Affine
	// Data holds the two bands as flat row-major planes: Data[0] is row
	// displacement, Data[1] is column displacement, each of length
	// Rows*Columns indexed [row*Columns+col].
	Data [2][]float64
}

/*****************************************************************************************************************/

// NewGrid allocates a zeroed grid of the given shape with the canonical
// epipolar-frame affine transform for the given step.
func NewGrid(rows, columns int, epiStep float64) *Grid {
	return &Grid{
		Rows:      rows,
		Columns:   columns,
		Transform: NewGridAffine(epiStep),
		Data: [2][]float64{
			make([]float64, rows*columns),
			make([]float64, rows*columns),
		},
	}
}

/*****************************************************************************************************************/

// At returns the (rowDisp, colDisp) pair stored at the given grid cell.
func (g *Grid) At(row, col int) (rowDisp, colDisp float64) {
	idx := row*g.Columns + col
	return g.Data[0][idx], g.Data[1][idx]
}

/*****************************************************************************************************************/

// Set stores the (rowDisp, colDisp) pair at the given grid cell.
func (g *Grid) Set(row, col int, rowDisp, colDisp float64) {
	idx := row*g.Columns + col
	g.Data[0][idx] = rowDisp
	g.Data[1][idx] = colDisp
}

/*****************************************************************************************************************/

// SetColumn stores a full column of displacement values in one call; rowDisp
// and colDisp must each have length g.Rows.
func (g *Grid) SetColumn(col int, rowDisp, colDisp []float64) {
	for row := 0; row < g.Rows; row++ {
		idx := row*g.Columns + col
		g.Data[0][idx] = rowDisp[row]
		g.Data[1][idx] = colDisp[row]
	}
}

/*****************************************************************************************************************/

// XYConvention selects the GeoTIFF band ordering the external grid sink
// writes: true writes [col displacement, row displacement] (band 1, band 2);
// false writes [row displacement, col displacement]. The encoder itself is
// an external collaborator (spec §6); this only documents the contract.
type XYConvention bool

const (
	BandOrderXY XYConvention = true
	BandOrderRC XYConvention = false
)

/*****************************************************************************************************************/

// Bands returns the grid's two bands in the requested external write order,
// without copying: callers of a real GeoTIFF encoder use this to know which
// band to write first.
func (g *Grid) Bands(convention XYConvention) (first, second []float64) {
	if convention == BandOrderXY {
		return g.Data[1], g.Data[0]
	}
	return g.Data[0], g.Data[1]
}

/*****************************************************************************************************************/
