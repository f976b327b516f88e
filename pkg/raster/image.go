/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

// Image is the image-geometry collaborator the core requires: shape, pixel
// spacing, and the affine transform from pixel indices to georeferenced
// coordinates. Parsing, raster I/O and pixel data itself are out of scope
// (external collaborators); only the geometry the core reads is modelled.
type Image struct {
	NbRows       int
	NbColumns    int
	PixelSizeRow float64
	PixelSizeCol float64
	Transform    Affine
}

/*****************************************************************************************************************/

// TransformIndexToPhysicalPoint applies the image's affine transform to a
// pixel index, using the center-of-pixel convention.
func (img *Image) TransformIndexToPhysicalPoint(row, col float64) (rowGeo, colGeo float64) {
	return img.Transform.Apply(row, col)
}

/*****************************************************************************************************************/
