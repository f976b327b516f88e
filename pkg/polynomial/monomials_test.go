/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package polynomial

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

// TestMonomialsCanonicalOrder pins the exact evaluation order at (2, 3, 5):
// this order is compatibility-critical across every RPC dialect.
func TestMonomialsCanonicalOrder(t *testing.T) {
	want := [Degree]float64{
		1, 2, 3, 5, 6, 10, 15, 4, 9, 25,
		30, 8, 18, 50, 12, 27, 75, 20, 45, 125,
	}

	got := Monomials(2, 3, 5)

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Monomials(2,3,5)[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

/*****************************************************************************************************************/

func TestMonomialsIdentity(t *testing.T) {
	m := Monomials(0, 0, 0)

	if m[0] != 1 {
		t.Errorf("Monomials(0,0,0)[0] = %v; want 1", m[0])
	}

	for i := 1; i < Degree; i++ {
		if m[i] != 0 {
			t.Errorf("Monomials(0,0,0)[%d] = %v; want 0", i, m[i])
		}
	}
}

/*****************************************************************************************************************/

// TestMonomialsDXMatchesFiniteDifference checks the closed-form derivative
// against a central finite difference at a non-trivial point.
func TestMonomialsDXMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	xn, yn, zn := 0.3, -0.2, 0.5

	analytic := MonomialsDX(xn, yn, zn)
	plus := Monomials(xn+h, yn, zn)
	minus := Monomials(xn-h, yn, zn)

	for i := range analytic {
		fd := (plus[i] - minus[i]) / (2 * h)
		if diff := analytic[i] - fd; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("MonomialsDX[%d] = %v; finite difference = %v", i, analytic[i], fd)
		}
	}
}

/*****************************************************************************************************************/

func TestMonomialsDYMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	xn, yn, zn := 0.3, -0.2, 0.5

	analytic := MonomialsDY(xn, yn, zn)
	plus := Monomials(xn, yn+h, zn)
	minus := Monomials(xn, yn-h, zn)

	for i := range analytic {
		fd := (plus[i] - minus[i]) / (2 * h)
		if diff := analytic[i] - fd; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("MonomialsDY[%d] = %v; finite difference = %v", i, analytic[i], fd)
		}
	}
}

/*****************************************************************************************************************/
