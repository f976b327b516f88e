/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package rpc

/*****************************************************************************************************************/

import "errors"

/*****************************************************************************************************************/

var (
	// ErrMissingInverseCoefficients is returned by Inverse, Partials, and by
	// InverseViaNewton (before any iteration) when the model has no inverse
	// coefficients. It is fatal to the calling operation.
	ErrMissingInverseCoefficients = errors.New("rpc: missing inverse coefficients")

	// ErrDimensionMismatch is returned when batched row/col/lon/lat slices
	// passed to the same call have inconsistent lengths.
	ErrDimensionMismatch = errors.New("rpc: mismatched slice lengths")

	// ErrNoCoefficients is returned by NewRPC when neither inverse nor
	// forward coefficients are supplied: the model could project in no
	// direction at all.
	ErrNoCoefficients = errors.New("rpc: no coefficients supplied")
)

/*****************************************************************************************************************/
