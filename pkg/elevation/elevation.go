/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package elevation abstracts the altitude input used throughout the
// rectification core: either a constant plane or a DTM sampler. DTM sampling
// itself is an external collaborator (spec §1); only the capability
// interface lives here.
package elevation

/*****************************************************************************************************************/

// Model supplies an altitude for a given ground position. A constant-altitude
// plane and a real DTM sampler both satisfy this single-method capability.
type Model interface {
	Sample(lon, lat float64) float64
}

/*****************************************************************************************************************/

// Constant is an Elevation.Model backed by a fixed altitude plane.
type Constant float64

/*****************************************************************************************************************/

func (c Constant) Sample(lon, lat float64) float64 {
	return float64(c)
}

/*****************************************************************************************************************/

// SamplerFunc adapts a plain function to the Model interface.
type SamplerFunc func(lon, lat float64) float64

/*****************************************************************************************************************/

func (f SamplerFunc) Sample(lon, lat float64) float64 {
	return f(lon, lat)
}

/*****************************************************************************************************************/
