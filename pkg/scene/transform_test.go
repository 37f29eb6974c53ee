package scene

import (
	stdmath "math"
	"testing"

	"github.com/Imerso3D/forge-convert-utils/pkg/math"
)

func TestResolveTransformNil(t *testing.T) {
	world, normal := ResolveTransform(nil)

	if world != math.Identity() {
		t.Errorf("nil transform world: got %v, want identity", world)
	}
	if normal != math.Identity() {
		t.Errorf("nil transform normal: got %v, want identity", normal)
	}
}

func TestResolveTransformMatrixLoadsVerbatim(t *testing.T) {
	// Shear in X from Y; arbitrary affine content is accepted as-is.
	m := MatrixTransform{
		1, 0, 0, 0,
		0.5, 1, 0, 0,
		0, 0, 1, 0,
		7, 8, 9, 1,
	}
	world, _ := ResolveTransform(m)

	if world != math.Mat4(m) {
		t.Errorf("matrix transform should load verbatim: got %v", world)
	}
}

func TestResolveTransformMatrixPointerForm(t *testing.T) {
	// *MatrixTransform satisfies Transform just like the value form and must
	// resolve to the same matrix, not fall through to a zero matrix.
	m := MatrixTransform(math.Translate(4, 5, 6))
	world, _ := ResolveTransform(&m)

	if world != math.Translate(4, 5, 6) {
		t.Errorf("pointer matrix transform: got %v, want translation matrix", world)
	}
}

func TestResolveTransformTypedNilPointers(t *testing.T) {
	world, normal := ResolveTransform((*DecomposedTransform)(nil))
	if world != math.Identity() || normal != math.Identity() {
		t.Errorf("typed-nil decomposed transform: got %v / %v, want identity", world, normal)
	}

	world, normal = ResolveTransform((*MatrixTransform)(nil))
	if world != math.Identity() || normal != math.Identity() {
		t.Errorf("typed-nil matrix transform: got %v / %v, want identity", world, normal)
	}
}

func TestResolveTransformDecomposedTranslationOnly(t *testing.T) {
	translation := [3]float64{1, 2, 3}
	world, _ := ResolveTransform(&DecomposedTransform{Translation: &translation})

	want := math.Translate(1, 2, 3)
	if world != want {
		t.Errorf("translation-only transform: got %v, want %v", world, want)
	}
}

func TestResolveTransformDecomposedDefaults(t *testing.T) {
	world, normal := ResolveTransform(&DecomposedTransform{})

	if world != math.Identity() {
		t.Errorf("all-absent decomposed world: got %v, want identity", world)
	}
	if normal != math.Identity() {
		t.Errorf("all-absent decomposed normal: got %v, want identity", normal)
	}
}

func TestResolveTransformTRSOrder(t *testing.T) {
	translation := [3]float64{10, 0, 0}
	scale := [3]float64{2, 2, 2}
	world, _ := ResolveTransform(&DecomposedTransform{Translation: &translation, Scale: &scale})

	// Scale applies before translation: (1,0,0) -> (12,0,0).
	p := world.TransformPoint([3]float64{1, 0, 0})
	if p != [3]float64{12, 0, 0} {
		t.Errorf("TRS order: got %v, want (12, 0, 0)", p)
	}
}

func TestResolveTransformNormalMatrixStripsScaleAndTranslation(t *testing.T) {
	translation := [3]float64{5, 6, 7}
	rotation := math.QuatFromAxisAngle([3]float64{0, 0, 1}, stdmath.Pi/2)
	scale := [3]float64{3, 1, 4}
	_, normal := ResolveTransform(&DecomposedTransform{
		Translation: &translation,
		Rotation:    &rotation,
		Scale:       &scale,
	})

	want := rotation.ToMat4()
	for i := 0; i < 16; i++ {
		if d := normal[i] - want[i]; d > 1e-9 || d < -1e-9 {
			t.Fatalf("normal matrix element %d: got %f, want %f", i, normal[i], want[i])
		}
	}
}

func TestResolveTransformMatrixNormalUnitScale(t *testing.T) {
	rotation := math.QuatFromAxisAngle([3]float64{0, 1, 0}, 0.3)
	m := math.Translate(1, 2, 3).Mul(rotation.ToMat4())
	_, normal := ResolveTransform(MatrixTransform(m))

	// For a unit-scale matrix the normal matrix is the rotation submatrix with
	// the translation column zeroed.
	want := rotation.ToMat4()
	for i := 0; i < 16; i++ {
		if d := normal[i] - want[i]; d > 1e-9 || d < -1e-9 {
			t.Fatalf("normal matrix element %d: got %f, want %f", i, normal[i], want[i])
		}
	}
}
