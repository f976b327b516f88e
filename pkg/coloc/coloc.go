/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package coloc implements colocation: the thin composite that carries a
// sensor position from one camera to another through the shared ground
// frame. Everything in the epipolar and rectification packages is built on
// top of this one operation.
package coloc

/*****************************************************************************************************************/

import (
	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/rpc"
)

/*****************************************************************************************************************/

// Colocate projects (row, col) at the given altitude from src's sensor
// frame to ground, then from ground into dst's sensor frame. The returned
// altitude is alt unchanged — colocation never resamples elevation, it
// only reprojects.
func Colocate(src, dst rpc.Model, row, col, alt float64, sink diagnostics.Sink) (rowOut, colOut float64, err error) {
	rows, cols, err := ColocateBatch(src, dst, []float64{row}, []float64{col}, alt, sink)
	if err != nil {
		return 0, 0, err
	}
	return rows[0], cols[0], nil
}

/*****************************************************************************************************************/

// ColocateBatch vectorizes Colocate over a batch of sensor positions, all
// sharing one altitude.
func ColocateBatch(src, dst rpc.Model, row, col []float64, alt float64, sink diagnostics.Sink) (rowOut, colOut []float64, err error) {
	lon, lat, err := src.Forward(row, col, alt, sink)
	if err != nil {
		return nil, nil, err
	}

	rowOut, colOut, err = dst.Inverse(lon, lat, alt, sink)
	if err != nil {
		return nil, nil, err
	}

	return rowOut, colOut, nil
}

/*****************************************************************************************************************/
