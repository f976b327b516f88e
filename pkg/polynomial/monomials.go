/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package polynomial evaluates the fixed 20-term degree-3 trivariate monomial
// basis used by every dialect of Rational Polynomial Camera consumed by this
// module, along with its two partial-derivative bases.
package polynomial

/*****************************************************************************************************************/

// Degree evaluates how many monomials make up the basis: a full cubic
// trivariate polynomial truncated to the canonical RPC term set.
const Degree = 20

/*****************************************************************************************************************/

// exponents holds the fixed (i, j, k) triples over (Xn, Yn, Zn) in the
// canonical order every RPC dialect agrees on. This order is
// compatibility-critical: tests pin it bit-exactly.
var exponents = [Degree][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0},
	{1, 0, 1}, {0, 1, 1}, {2, 0, 0}, {0, 2, 0}, {0, 0, 2},
	{1, 1, 1}, {3, 0, 0}, {1, 2, 0}, {1, 0, 2}, {2, 1, 0},
	{0, 3, 0}, {0, 1, 2}, {2, 0, 1}, {0, 2, 1}, {0, 0, 3},
}

/*****************************************************************************************************************/

func ipow(base float64, exp int) float64 {
	switch exp {
	case 0:
		return 1
	case 1:
		return base
	case 2:
		return base * base
	case 3:
		return base * base * base
	default:
		result := 1.0
		for i := 0; i < exp; i++ {
			result *= base
		}
		return result
	}
}

/*****************************************************************************************************************/

// Monomials evaluates the 20 canonical monomials at the given normalized
// coordinates, returning them in the fixed compatibility-critical order.
func Monomials(xn, yn, zn float64) [Degree]float64 {
	var m [Degree]float64
	for i, e := range exponents {
		m[i] = ipow(xn, e[0]) * ipow(yn, e[1]) * ipow(zn, e[2])
	}
	return m
}

/*****************************************************************************************************************/

// MonomialsDX evaluates the partial derivative of each of the 20 canonical
// monomials with respect to xn, using the closed-form exponent rule
// d/dx(x^i) = i*x^(i-1).
func MonomialsDX(xn, yn, zn float64) [Degree]float64 {
	var m [Degree]float64
	for i, e := range exponents {
		if e[0] == 0 {
			continue
		}
		m[i] = float64(e[0]) * ipow(xn, e[0]-1) * ipow(yn, e[1]) * ipow(zn, e[2])
	}
	return m
}

/*****************************************************************************************************************/

// MonomialsDY evaluates the partial derivative of each of the 20 canonical
// monomials with respect to yn.
func MonomialsDY(xn, yn, zn float64) [Degree]float64 {
	var m [Degree]float64
	for i, e := range exponents {
		if e[1] == 0 {
			continue
		}
		m[i] = float64(e[1]) * ipow(xn, e[0]) * ipow(yn, e[1]-1) * ipow(zn, e[2])
	}
	return m
}

/*****************************************************************************************************************/
