/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rpc

/*****************************************************************************************************************/

import (
	"math"

	"github.com/geostereo/rpcrect/pkg/diagnostics"
)

/*****************************************************************************************************************/

// newtonEps is the desired precision, in sensor pixels, of the damped
// Newton inverter.
const newtonEps = 1e-6

/*****************************************************************************************************************/

// InverseViaNewton is direct_loc_inverse_iterative: it recovers ground
// position from sensor position when only inverse coefficients are known,
// by iterating Inverse itself to a fixed point. NaN row/col entries are
// filtered out before iterating; fillNaN selects whether they are reported
// back as the X/Y normalization offsets (the OTB/OSSIM convention) or as
// NaN.
//
// Per-iteration subset indexing uses an explicit work-list: the indices
// still short of eps are compacted into a tight buffer each pass, rather
// than re-walking the full batch with a boolean mask.
func (r *RPC) InverseViaNewton(row, col []float64, alt float64, nbIterMax int, fillNaN bool, sink diagnostics.Sink) (lon, lat []float64, converged bool, err error) {
	sink = diagnostics.Or(sink)

	if err := checkEqualLength(row, col); err != nil {
		return nil, nil, false, err
	}

	if !r.params.Coefficients.HasInverse() {
		return nil, nil, false, ErrMissingInverseCoefficients
	}

	n := len(row)

	nanValue := math.NaN()
	lonNaN, latNaN := nanValue, nanValue
	if fillNaN {
		lonNaN, latNaN = r.params.X.Offset, r.params.Y.Offset
	}

	lon = make([]float64, n)
	lat = make([]float64, n)

	// work holds the indices into row/col (and so also into lon/lat) that
	// are not NaN and are still being iterated.
	work := make([]int, 0, n)
	anyNaN := false
	for i := 0; i < n; i++ {
		if math.IsNaN(row[i]) || math.IsNaN(col[i]) {
			lon[i] = lonNaN
			lat[i] = latNaN
			anyNaN = true
			continue
		}
		work = append(work, i)
	}

	if anyNaN {
		sink.Warn(diagnostics.CodeNaNInput, "newton inverse received NaN sensor coordinates", map[string]any{"fillNaN": fillNaN})
	}

	if len(work) == 0 {
		return lon, lat, true, nil
	}

	// Seed every remaining point at the scene center, matching the source's
	// single-point seed broadcast across the batch.
	seedLon := []float64{r.params.X.Offset}
	seedLat := []float64{r.params.Y.Offset}
	rowSeed, colSeed, err := r.Inverse(seedLon, seedLat, alt, diagnostics.NopSink)
	if err != nil {
		return nil, nil, false, err
	}

	x := make([]float64, len(work))
	y := make([]float64, len(work))
	dc := make([]float64, len(work))
	dl := make([]float64, len(work))
	for j, i := range work {
		x[j] = seedLon[0]
		y[j] = seedLat[0]
		dc[j] = col[i] - colSeed[0]
		dl[j] = row[i] - rowSeed[0]
	}

	// active indexes into x/y/dc/dl (not into row/col) — the explicit,
	// shrinking work-list compacted at the top of every iteration.
	active := make([]int, len(work))
	for j := range active {
		active[j] = j
	}

	iteration := 0
	for len(active) > 0 && iteration < nbIterMax {
		remaining := active[:0:0]

		xi := make([]float64, len(active))
		yi := make([]float64, len(active))
		for k, j := range active {
			xi[k] = x[j]
			yi[k] = y[j]
		}

		dCdX, dCdY, dLdX, dLdY, err := r.Partials(xi, yi, alt)
		if err != nil {
			return nil, nil, false, err
		}

		for k, j := range active {
			det := dCdX[k]*dLdY[k] - dLdX[k]*dCdY[k]

			dX := (dLdY[k]*dc[j] - dCdY[k]*dl[j]) / det
			dY := (-dLdX[k]*dc[j] + dCdX[k]*dl[j]) / det

			x[j] += dX
			y[j] += dY
		}

		xi = xi[:0]
		yi = yi[:0]
		for _, j := range active {
			xi = append(xi, x[j])
			yi = append(yi, y[j])
		}

		rowObs, colObs, err := r.Inverse(xi, yi, alt, diagnostics.NopSink)
		if err != nil {
			return nil, nil, false, err
		}

		for k, j := range active {
			i := work[j]
			dc[j] = col[i] - colObs[k]
			dl[j] = row[i] - rowObs[k]

			if math.Abs(dc[j]) > newtonEps || math.Abs(dl[j]) > newtonEps {
				remaining = append(remaining, j)
			}
		}

		active = remaining
		iteration++
	}

	if len(active) > 0 {
		sink.Warn(diagnostics.CodeNewtonNonConvergent, "newton inverse did not converge for all points", map[string]any{
			"unconverged": len(active),
			"iterations":  iteration,
		})
	}

	for j, i := range work {
		lon[i] = x[j]
		lat[i] = y[j]
	}

	return lon, lat, len(active) == 0, nil
}

/*****************************************************************************************************************/
