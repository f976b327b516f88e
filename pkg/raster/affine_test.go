/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestNewGridAffineOrigin(t *testing.T) {
	transform := NewGridAffine(30)

	rowGeo, colGeo := transform.Apply(0, 0)

	if rowGeo != 0 {
		t.Errorf("rowGeo at (0,0) = %v; want 0", rowGeo)
	}

	if colGeo != 0 {
		t.Errorf("colGeo at (0,0) = %v; want 0", colGeo)
	}
}

/*****************************************************************************************************************/

func TestAffineApplyIdentityLikeTransform(t *testing.T) {
	transform := Affine{A: 1, B: 0, C: -0.5, D: 0, E: 1, F: -0.5}

	rowGeo, colGeo := transform.Apply(4, 7)

	if rowGeo != 4 {
		t.Errorf("rowGeo = %v; want 4", rowGeo)
	}

	if colGeo != 7 {
		t.Errorf("colGeo = %v; want 7", colGeo)
	}
}

/*****************************************************************************************************************/

func TestAffineApplyBatch(t *testing.T) {
	transform := Affine{A: 1, B: 0, C: -0.5, D: 0, E: 1, F: -0.5}

	rows := []float64{0, 1, 2}
	cols := []float64{0, 1, 2}

	rowsGeo, colsGeo := transform.ApplyBatch(rows, cols)

	for i := range rows {
		if rowsGeo[i] != rows[i] || colsGeo[i] != cols[i] {
			t.Errorf("ApplyBatch[%d] = (%v,%v); want (%v,%v)", i, rowsGeo[i], colsGeo[i], rows[i], cols[i])
		}
	}
}

/*****************************************************************************************************************/
