/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rpc

/*****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/polynomial"
)

/*****************************************************************************************************************/

// Model is the public projection capability an RPC satisfies: a batched,
// invertible ground<->sensor projection plus its Jacobian. Colocation and
// the epipolar primitives depend on this interface rather than the concrete
// RPC type, so other projection kernels could stand in.
type Model interface {
	Forward(row, col []float64, alt float64, sink diagnostics.Sink) (lon, lat []float64, err error)
	Inverse(lon, lat []float64, alt float64, sink diagnostics.Sink) (row, col []float64, err error)
	Partials(lon, lat []float64, alt float64) (dCdX, dCdY, dLdX, dLdY []float64, err error)
}

/*****************************************************************************************************************/

// RPC is an immutable Rational Polynomial Camera model. Once constructed,
// its coefficient arrays are never mutated; it is safe for concurrent,
// shared-read use across goroutines.
type RPC struct {
	params Params
}

var _ Model = (*RPC)(nil)

/*****************************************************************************************************************/

// NewRPC validates and constructs an RPC from an explicit parameter record.
// All normalization scales must be strictly positive, and at least one of
// the inverse or forward coefficient sets must be present.
func NewRPC(params Params) (*RPC, error) {
	if !params.Coefficients.HasInverse() && !params.Coefficients.HasForward() {
		return nil, ErrNoCoefficients
	}

	for _, n := range []Normalization{params.X, params.Y, params.Alt, params.Col, params.Lig} {
		if n.Scale <= 0 {
			return nil, ErrDimensionMismatch
		}
	}

	return &RPC{params: params}, nil
}

/*****************************************************************************************************************/

// Params returns the normalization and coefficient record the RPC was built
// from.
func (r *RPC) Params() Params {
	return r.params
}

/*****************************************************************************************************************/

func checkEqualLength(a, b []float64) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}
	return nil
}

/*****************************************************************************************************************/

// normalizeAll returns normalized values for a whole batch given one scalar
// normalization pair.
func normalizeAll(values []float64, n Normalization) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - n.Offset) / n.Scale
	}
	return out
}

/*****************************************************************************************************************/

// allExceed reports whether every element of xs exceeds lim in absolute
// value — the same "fully extrapolated" condition the source checks before
// warning.
func allExceed(xs []float64, lim float64) bool {
	if len(xs) == 0 {
		return false
	}
	for _, x := range xs {
		if math.Abs(x) <= lim {
			return false
		}
	}
	return true
}

/*****************************************************************************************************************/

// evalRatio evaluates (num . m) / (den . m) for every point's monomial
// vector, warning through sink when the denominator is near zero rather
// than dividing by it silently.
func evalRatio(num, den [polynomial.Degree]float64, monomials [][polynomial.Degree]float64, sink diagnostics.Sink) []float64 {
	out := make([]float64, len(monomials))
	for i, m := range monomials {
		n := floats.Dot(num[:], m[:])
		d := floats.Dot(den[:], m[:])
		if math.Abs(d) < 1e-12 {
			sink.Warn(diagnostics.CodeExtrapolation, "denominator near zero", map[string]any{"index": i, "den": d})
			if d == 0 {
				d = 1e-12
			}
		}
		out[i] = n / d
	}
	return out
}

/*****************************************************************************************************************/

// Forward is direct_loc_h: ground position at a fixed altitude. When forward
// coefficients are present it evaluates the analytic rational polynomial;
// otherwise it delegates to InverseViaNewton with the legacy fill_nan=true
// convention, which never fails outright.
func (r *RPC) Forward(row, col []float64, alt float64, sink diagnostics.Sink) (lon, lat []float64, err error) {
	sink = diagnostics.Or(sink)

	if err := checkEqualLength(row, col); err != nil {
		return nil, nil, err
	}

	fc := r.params.Coefficients.Forward
	if fc == nil {
		lon, lat, _, err = r.InverseViaNewton(row, col, alt, 10, true, sink)
		return lon, lat, err
	}

	// Forward inputs are sensor coordinates, normalized with the COL/LIG/ALT
	// scales — note the axis swap relative to Inverse.
	xn := normalizeAll(col, r.params.Col)
	yn := normalizeAll(row, r.params.Lig)
	zn := (alt - r.params.Alt.Offset) / r.params.Alt.Scale

	if allExceed(xn, LimExtrapol) {
		sink.Warn(diagnostics.CodeExtrapolation, "forward evaluation extrapolated in column", map[string]any{"xn": xn})
	}
	if allExceed(yn, LimExtrapol) {
		sink.Warn(diagnostics.CodeExtrapolation, "forward evaluation extrapolated in row", map[string]any{"yn": yn})
	}
	if math.Abs(zn) > LimExtrapol {
		sink.Warn(diagnostics.CodeExtrapolation, "forward evaluation extrapolated in altitude", map[string]any{"zn": zn})
	}

	monomials := make([][polynomial.Degree]float64, len(col))
	for i := range col {
		monomials[i] = polynomial.Monomials(xn[i], yn[i], zn)
	}

	lonN := evalRatio(fc.NumX, fc.DenX, monomials, sink)
	latN := evalRatio(fc.NumY, fc.DenY, monomials, sink)

	lon = make([]float64, len(col))
	lat = make([]float64, len(col))
	for i := range col {
		lon[i] = lonN[i]*r.params.X.Scale + r.params.X.Offset
		lat[i] = latN[i]*r.params.Y.Scale + r.params.Y.Offset
	}

	return lon, lat, nil
}

/*****************************************************************************************************************/

// Inverse is inverse_loc: sensor position from ground. Requires inverse
// coefficients; fails with ErrMissingInverseCoefficients otherwise.
func (r *RPC) Inverse(lon, lat []float64, alt float64, sink diagnostics.Sink) (row, col []float64, err error) {
	sink = diagnostics.Or(sink)

	if err := checkEqualLength(lon, lat); err != nil {
		return nil, nil, err
	}

	ic := r.params.Coefficients.Inverse
	if ic == nil {
		return nil, nil, ErrMissingInverseCoefficients
	}

	xn := normalizeAll(lon, r.params.X)
	yn := normalizeAll(lat, r.params.Y)
	zn := (alt - r.params.Alt.Offset) / r.params.Alt.Scale

	if allExceed(xn, LimExtrapol) {
		sink.Warn(diagnostics.CodeExtrapolation, "inverse evaluation extrapolated in longitude", map[string]any{"xn": xn})
	}
	if allExceed(yn, LimExtrapol) {
		sink.Warn(diagnostics.CodeExtrapolation, "inverse evaluation extrapolated in latitude", map[string]any{"yn": yn})
	}
	if math.Abs(zn) > LimExtrapol {
		sink.Warn(diagnostics.CodeExtrapolation, "inverse evaluation extrapolated in altitude", map[string]any{"zn": zn})
	}

	monomials := make([][polynomial.Degree]float64, len(lon))
	for i := range lon {
		monomials[i] = polynomial.Monomials(xn[i], yn[i], zn)
	}

	colN := evalRatio(ic.NumCol, ic.DenCol, monomials, sink)
	rowN := evalRatio(ic.NumLig, ic.DenLig, monomials, sink)

	row = make([]float64, len(lon))
	col = make([]float64, len(lon))
	for i := range lon {
		col[i] = colN[i]*r.params.Col.Scale + r.params.Col.Offset
		row[i] = rowN[i]*r.params.Lig.Scale + r.params.Lig.Offset
	}

	return row, col, nil
}

/*****************************************************************************************************************/

// Partials is calcule_derivees_inv: the Jacobian (dC/dX, dC/dY, dL/dX, dL/dY)
// in unnormalized units, via the quotient rule chained by the normalization
// scale ratios. Requires inverse coefficients.
func (r *RPC) Partials(lon, lat []float64, alt float64) (dCdX, dCdY, dLdX, dLdY []float64, err error) {
	if err := checkEqualLength(lon, lat); err != nil {
		return nil, nil, nil, nil, err
	}

	ic := r.params.Coefficients.Inverse
	if ic == nil {
		return nil, nil, nil, nil, ErrMissingInverseCoefficients
	}

	n := len(lon)
	dCdX = make([]float64, n)
	dCdY = make([]float64, n)
	dLdX = make([]float64, n)
	dLdY = make([]float64, n)

	xn := normalizeAll(lon, r.params.X)
	yn := normalizeAll(lat, r.params.Y)
	zn := (alt - r.params.Alt.Offset) / r.params.Alt.Scale

	scaleColOverX := r.params.Col.Scale / r.params.X.Scale
	scaleColOverY := r.params.Col.Scale / r.params.Y.Scale
	scaleLigOverX := r.params.Lig.Scale / r.params.X.Scale
	scaleLigOverY := r.params.Lig.Scale / r.params.Y.Scale

	for i := 0; i < n; i++ {
		m := polynomial.Monomials(xn[i], yn[i], zn)
		mdx := polynomial.MonomialsDX(xn[i], yn[i], zn)
		mdy := polynomial.MonomialsDY(xn[i], yn[i], zn)

		numC := floats.Dot(ic.NumCol[:], m[:])
		denC := floats.Dot(ic.DenCol[:], m[:])
		numL := floats.Dot(ic.NumLig[:], m[:])
		denL := floats.Dot(ic.DenLig[:], m[:])

		numCdx := floats.Dot(ic.NumCol[:], mdx[:])
		denCdx := floats.Dot(ic.DenCol[:], mdx[:])
		numLdx := floats.Dot(ic.NumLig[:], mdx[:])
		denLdx := floats.Dot(ic.DenLig[:], mdx[:])

		numCdy := floats.Dot(ic.NumCol[:], mdy[:])
		denCdy := floats.Dot(ic.DenCol[:], mdy[:])
		numLdy := floats.Dot(ic.NumLig[:], mdy[:])
		denLdy := floats.Dot(ic.DenLig[:], mdy[:])

		// Quotient rule: f = N/D, f' = (N'D - D'N) / D^2, chained by the
		// normalization scale ratio.
		dCdX[i] = scaleColOverX * (numCdx*denC - denCdx*numC) / (denC * denC)
		dCdY[i] = scaleColOverY * (numCdy*denC - denCdy*numC) / (denC * denC)
		dLdX[i] = scaleLigOverX * (numLdx*denL - denLdx*numL) / (denL * denL)
		dLdY[i] = scaleLigOverY * (numLdy*denL - denLdy*numL) / (denL * denL)
	}

	return dCdX, dCdY, dLdX, dLdY, nil
}

/*****************************************************************************************************************/
