/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package rpc implements the Rational Polynomial Camera model: an invertible
// ground<->sensor projection defined by two pairs of 20-term cubic rational
// polynomials, with a damped Newton inverter used when only one direction's
// coefficients are known.
package rpc

/*****************************************************************************************************************/

import "github.com/geostereo/rpcrect/pkg/polynomial"

/*****************************************************************************************************************/

// LimExtrapol is the sentinel extrapolation bound on normalized inputs.
const LimExtrapol = 1.0001

/*****************************************************************************************************************/

// InverseCoefficients are the four coefficient vectors of the ground->sensor
// (inverse) direction.
type InverseCoefficients struct {
	NumCol [polynomial.Degree]float64
	DenCol [polynomial.Degree]float64
	NumLig [polynomial.Degree]float64
	DenLig [polynomial.Degree]float64
}

/*****************************************************************************************************************/

// ForwardCoefficients are the four coefficient vectors of the sensor->ground
// (direct) direction. A nil *ForwardCoefficients on Coefficients is a valid
// state and must trigger the Newton fallback in Forward.
type ForwardCoefficients struct {
	NumX [polynomial.Degree]float64
	DenX [polynomial.Degree]float64
	NumY [polynomial.Degree]float64
	DenY [polynomial.Degree]float64
}

/*****************************************************************************************************************/

// Coefficients is the tagged variant replacing the source's scattered
// nil-sentinel fields: Inverse and/or Forward may be present, but at least
// one must be, or the model cannot project in either direction.
type Coefficients struct {
	Inverse *InverseCoefficients
	Forward *ForwardCoefficients
}

/*****************************************************************************************************************/

// HasForward reports whether the bidirectional (forward) coefficients are
// present.
func (c Coefficients) HasForward() bool {
	return c.Forward != nil
}

/*****************************************************************************************************************/

// HasInverse reports whether the inverse coefficients are present.
func (c Coefficients) HasInverse() bool {
	return c.Inverse != nil
}

/*****************************************************************************************************************/

// Normalization holds one (offset, scale) pair for a single axis.
type Normalization struct {
	Offset float64
	Scale  float64
}

/*****************************************************************************************************************/

// Params is the single explicit parameter record replacing the source's
// dictionary-as-constructor: seven scalar normalization pairs and the
// coefficient variant.
type Params struct {
	X, Y, Alt, Col, Lig Normalization
	Coefficients        Coefficients
}

/*****************************************************************************************************************/

// ApplyTopLeftConvention shifts the column/row offsets by +0.5 so that pixel
// (0,0) denotes the top-left corner of the top-left pixel rather than its
// center (the OSSIM convention). It returns a modified copy; Params is
// otherwise treated as immutable once handed to NewRPC.
func (p Params) ApplyTopLeftConvention() Params {
	p.Col.Offset += 0.5
	p.Lig.Offset += 0.5
	return p
}

/*****************************************************************************************************************/
