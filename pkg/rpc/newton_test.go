/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rpc

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/geostereo/rpcrect/pkg/diagnostics"
)

/*****************************************************************************************************************/

func TestInverseViaNewtonAgreesWithInverse(t *testing.T) {
	r, err := NewRPC(linearParams())
	if err != nil {
		t.Fatalf("NewRPC() error = %v", err)
	}

	row := []float64{628, 300, 372}
	col := []float64{756, 500, 244}

	lon, lat, converged, err := r.InverseViaNewton(row, col, 100, 10, true, diagnostics.NopSink)
	if err != nil {
		t.Fatalf("InverseViaNewton() error = %v", err)
	}
	if !converged {
		t.Fatalf("converged = false; want true")
	}

	rowBack, colBack, err := r.Inverse(lon, lat, 100, diagnostics.NopSink)
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}

	for i := range row {
		if math.Abs(rowBack[i]-row[i]) > 1e-3 {
			t.Errorf("row[%d] = %v; want ~%v", i, rowBack[i], row[i])
		}
		if math.Abs(colBack[i]-col[i]) > 1e-3 {
			t.Errorf("col[%d] = %v; want ~%v", i, colBack[i], col[i])
		}
	}
}

/*****************************************************************************************************************/

// TestInverseViaNewtonFillsNaNWithOffsets pins the scenario where an RPC's
// inverse sends (lon=offsetX, lat=offsetY, alt) to some (row,col); seeding
// InverseViaNewton with NaN sensor coordinates and fillNaN=true must return
// exactly (offsetX, offsetY) for those entries without attempting to
// iterate them.
func TestInverseViaNewtonFillsNaNWithOffsets(t *testing.T) {
	r, err := NewRPC(linearParams())
	if err != nil {
		t.Fatalf("NewRPC() error = %v", err)
	}

	row := []float64{math.NaN(), 628}
	col := []float64{math.NaN(), 756}

	collector := diagnostics.NewCollector()

	lon, lat, converged, err := r.InverseViaNewton(row, col, 100, 10, true, collector)
	if err != nil {
		t.Fatalf("InverseViaNewton() error = %v", err)
	}
	if !converged {
		t.Fatalf("converged = false; want true")
	}

	if lon[0] != r.params.X.Offset || lat[0] != r.params.Y.Offset {
		t.Errorf("NaN entry = (%v,%v); want (%v,%v)", lon[0], lat[0], r.params.X.Offset, r.params.Y.Offset)
	}

	if math.IsNaN(lon[1]) || math.IsNaN(lat[1]) {
		t.Errorf("valid entry came back NaN: (%v,%v)", lon[1], lat[1])
	}

	if collector.Count(diagnostics.CodeNaNInput) != 1 {
		t.Errorf("NaNInput warnings = %d; want 1", collector.Count(diagnostics.CodeNaNInput))
	}
}

/*****************************************************************************************************************/

func TestInverseViaNewtonFillsNaNWithActualNaN(t *testing.T) {
	r, err := NewRPC(linearParams())
	if err != nil {
		t.Fatalf("NewRPC() error = %v", err)
	}

	lon, lat, _, err := r.InverseViaNewton([]float64{math.NaN()}, []float64{math.NaN()}, 100, 10, false, diagnostics.NopSink)
	if err != nil {
		t.Fatalf("InverseViaNewton() error = %v", err)
	}

	if !math.IsNaN(lon[0]) || !math.IsNaN(lat[0]) {
		t.Errorf("got (%v,%v); want (NaN,NaN)", lon[0], lat[0])
	}
}

/*****************************************************************************************************************/

func TestInverseViaNewtonRejectsMissingInverseCoefficients(t *testing.T) {
	p := linearParams()
	p.Coefficients.Inverse = nil

	r, err := NewRPC(p)
	if err != nil {
		t.Fatalf("NewRPC() error = %v", err)
	}

	if _, _, _, err := r.InverseViaNewton([]float64{1}, []float64{1}, 100, 10, true, diagnostics.NopSink); err != ErrMissingInverseCoefficients {
		t.Fatalf("err = %v; want ErrMissingInverseCoefficients", err)
	}
}

/*****************************************************************************************************************/

func TestInverseViaNewtonRejectsDimensionMismatch(t *testing.T) {
	r, err := NewRPC(linearParams())
	if err != nil {
		t.Fatalf("NewRPC() error = %v", err)
	}

	if _, _, _, err := r.InverseViaNewton([]float64{1, 2}, []float64{1}, 100, 10, true, diagnostics.NopSink); err != ErrDimensionMismatch {
		t.Fatalf("err = %v; want ErrDimensionMismatch", err)
	}
}

/*****************************************************************************************************************/
