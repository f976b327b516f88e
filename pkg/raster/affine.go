/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package raster models the image- and grid-geometry collaborators the RPC
// and rectification core consumes: a pixel-to-map affine transform, an
// Image, and the 2-band displacement Grid.
package raster

/*****************************************************************************************************************/

// Affine is the standard six-parameter pixel-to-map transform:
//
//	rowGeo = D*col + E*row + F
//	colGeo = A*col + B*row + C
//
// This mirrors the standard GDAL/OTB geotransform convention, generalized
// to the (row, col) axis order the RPC/rectification kernel operates in.
type Affine struct {
	A, B, C float64 // col' = A*col + B*row + C
	D, E, F float64 // row' = D*col + E*row + F
}

/*****************************************************************************************************************/

// NewGridAffine builds the canonical epipolar-grid affine transform used by
// every displacement grid: isotropic spacing of epiStep, with the origin
// placed half a cell before the first sample so that grid index (0,0) maps
// to the physical center of the first cell.
func NewGridAffine(epiStep float64) Affine {
	return Affine{
		A: epiStep, B: 0, C: -epiStep * 0.5,
		D: 0, E: epiStep, F: -epiStep * 0.5,
	}
}

/*****************************************************************************************************************/

// Apply maps a pixel-center index (row, col) to its physical (rowGeo,
// colGeo) coordinate, applying the +0.5 center-of-pixel offset.
func (t Affine) Apply(row, col float64) (rowGeo, colGeo float64) {
	r := row + 0.5
	c := col + 0.5
	colGeo = t.A*c + t.B*r + t.C
	rowGeo = t.D*c + t.E*r + t.F
	return rowGeo, colGeo
}

/*****************************************************************************************************************/

// ApplyBatch vectorizes Apply over equal-length row/col slices.
func (t Affine) ApplyBatch(rows, cols []float64) (rowsGeo, colsGeo []float64) {
	rowsGeo = make([]float64, len(rows))
	colsGeo = make([]float64, len(cols))
	for i := range rows {
		rowsGeo[i], colsGeo[i] = t.Apply(rows[i], cols[i])
	}
	return rowsGeo, colsGeo
}

/*****************************************************************************************************************/
