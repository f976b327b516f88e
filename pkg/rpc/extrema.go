/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rpc

/*****************************************************************************************************************/

import "github.com/geostereo/rpcrect/pkg/diagnostics"

/*****************************************************************************************************************/

// AltMinMax returns the altitude layer's [min, max] bounds implied by the
// ALT normalization pair: the normalization range is, by construction, the
// span over which the model was fitted.
func (r *RPC) AltMinMax() [2]float64 {
	return [2]float64{
		r.params.Alt.Offset - r.params.Alt.Scale/2.0,
		r.params.Alt.Offset + r.params.Alt.Scale/2.0,
	}
}

/*****************************************************************************************************************/

// LineOfSightExtrema returns the two ground points bracketing the line of
// sight through sensor position (row, col): the far point at altMax and the
// near point at altMin, in that order.
func (r *RPC) LineOfSightExtrema(row, col, altMin, altMax float64) (far, near [3]float64, err error) {
	rows := []float64{row}
	cols := []float64{col}

	lonFar, latFar, err := r.Forward(rows, cols, altMax, diagnostics.NopSink)
	if err != nil {
		return far, near, err
	}

	lonNear, latNear, err := r.Forward(rows, cols, altMin, diagnostics.NopSink)
	if err != nil {
		return far, near, err
	}

	far = [3]float64{lonFar[0], latFar[0], altMax}
	near = [3]float64{lonNear[0], latNear[0], altMin}

	return far, near, nil
}

/*****************************************************************************************************************/

// DirectLocGridH computes a direct-localization grid at a fixed altitude:
// for a row0/col0 origin stepped by stepRow/stepCol over nbRow x nbCol
// samples, it returns the longitude and latitude grids, row-major
// [row][col] as in the source.
func (r *RPC) DirectLocGridH(row0, col0, stepRow, stepCol float64, nbRow, nbCol int, alt float64) (lonGrid, latGrid [][]float64, err error) {
	lonGrid = make([][]float64, nbRow)
	latGrid = make([][]float64, nbRow)
	for l := range lonGrid {
		lonGrid[l] = make([]float64, nbCol)
		latGrid[l] = make([]float64, nbCol)
	}

	// The source walks column-major (outer loop over columns); the result
	// is identical either way since each cell is independent, but a
	// row-batched evaluation lets us call Forward once per column instead
	// of once per cell.
	for c := 0; c < nbCol; c++ {
		col := col0 + stepCol*float64(c)

		rows := make([]float64, nbRow)
		cols := make([]float64, nbRow)
		for l := 0; l < nbRow; l++ {
			rows[l] = row0 + stepRow*float64(l)
			cols[l] = col
		}

		lon, lat, err := r.Forward(rows, cols, alt, diagnostics.NopSink)
		if err != nil {
			return nil, nil, err
		}

		for l := 0; l < nbRow; l++ {
			lonGrid[l][c] = lon[l]
			latGrid[l][c] = lat[l]
		}
	}

	return lonGrid, latGrid, nil
}

/*****************************************************************************************************************/
