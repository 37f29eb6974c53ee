package scene

import "github.com/Imerso3D/forge-convert-utils/pkg/math"

// ResolveTransform converts a node's declared transform into a world-space
// affine matrix plus a companion matrix for normal vectors. A nil transform
// resolves to identity matrices, typed-nil pointers included.
//
// The normal matrix is the rotation-only component of the world matrix
// (translation zeroed, scale stripped by column normalization). For
// non-uniform scale the mathematically correct choice would be the
// inverse-transpose; the plain rotation extraction is kept on purpose for
// output parity with existing consumers.
func ResolveTransform(t Transform) (world, normal math.Mat4) {
	switch xf := t.(type) {
	case nil:
		world = math.Identity()
	case MatrixTransform:
		world = math.Mat4(xf)
	case *MatrixTransform:
		// The pointer form satisfies Transform too, since isTransform has a
		// value receiver; treat it exactly like the value form.
		if xf == nil {
			world = math.Identity()
			break
		}
		world = math.Mat4(*xf)
	case *DecomposedTransform:
		if xf == nil {
			world = math.Identity()
			break
		}
		translation := [3]float64{0, 0, 0}
		rotation := math.QuatIdentity()
		scale := [3]float64{1, 1, 1}
		if xf.Translation != nil {
			translation = *xf.Translation
		}
		if xf.Rotation != nil {
			rotation = *xf.Rotation
		}
		if xf.Scale != nil {
			scale = *xf.Scale
		}
		world = math.Compose(translation, rotation, scale)
	}
	return world, world.RotationOnly()
}
