// Package scene defines the intermediate scene model shared by all format
// readers and writers: an ordered list of nodes, an indexable collection of
// geometries, and typed metadata. Readers populate it, writers only query it.
package scene

import "github.com/Imerso3D/forge-convert-utils/pkg/math"

// GeometryID references a geometry within a scene's geometry collection.
type GeometryID int64

// MetadataValue wraps a single typed metadata entry.
type MetadataValue struct {
	Value any `json:"value"`
}

// Metadata maps metadata keys (e.g. "distance unit") to their values.
type Metadata map[string]MetadataValue

// Scene is the read-only query surface writers consume. The scene is
// immutable for the duration of a conversion run.
type Scene interface {
	NodeCount() int
	Node(index int) Node
	Geometry(id GeometryID) Geometry
	Metadata() Metadata
}

// Node is one entry in the scene hierarchy. Only ObjectNode carries
// renderable geometry; writers recognize the other kinds and skip them.
type Node interface {
	// Kind returns a short node kind name, used in skip diagnostics.
	Kind() string
	isNode()
}

// ObjectNode instantiates renderable geometry. DBID is a positive integer
// stable within this scene instance and is the handle into the external
// property database.
type ObjectNode struct {
	DBID      int64
	Geometry  GeometryID
	Transform Transform // nil means identity
}

// GroupNode groups child nodes by index. Carried for completeness; writers
// skip it.
type GroupNode struct {
	DBID     int64
	Children []int
}

// InstanceNode re-instantiates another node's subtree with its own transform.
// Carried for completeness; writers skip it.
type InstanceNode struct {
	DBID      int64
	Target    int
	Transform Transform
}

func (*ObjectNode) Kind() string   { return "object" }
func (*GroupNode) Kind() string    { return "group" }
func (*InstanceNode) Kind() string { return "instance" }

func (*ObjectNode) isNode()   {}
func (*GroupNode) isNode()    {}
func (*InstanceNode) isNode() {}

// Transform is a node's declared transform, either a full affine matrix or a
// decomposed translation/rotation/scale triple.
type Transform interface {
	isTransform()
}

// MatrixTransform is a general affine transform: 16 values, column-major
// (column 0 = elements 0..3). Arbitrary affine content is accepted,
// including shear; no orthogonality validation is performed.
type MatrixTransform [16]float64

// DecomposedTransform is a translation/rotation/scale triple. Absent
// components are identity. Composition order is scale, then rotate, then
// translate (standard TRS). The rotation quaternion is assumed normalized.
type DecomposedTransform struct {
	Translation *[3]float64
	Rotation    *math.Quat
	Scale       *[3]float64
}

func (MatrixTransform) isTransform()      {}
func (*DecomposedTransform) isTransform() {}

// Geometry is a scene geometry payload. Only MeshGeometry is consumed by the
// mesh writers; other kinds are skipped with a diagnostic.
type Geometry interface {
	// Kind returns a short geometry kind name, used in skip diagnostics.
	Kind() string
	isGeometry()
}

// MeshGeometry is a triangle mesh: interleaved X,Y,Z vertex positions,
// 0-based triangle indices local to this geometry's vertex buffer, and
// optional per-vertex normals (same length as Vertices when present).
type MeshGeometry struct {
	Vertices []float64
	Indices  []int
	Normals  []float64
}

// VertexCount returns the number of vertex triplets.
func (g *MeshGeometry) VertexCount() int { return len(g.Vertices) / 3 }

// TriangleCount returns the number of index triplets.
func (g *MeshGeometry) TriangleCount() int { return len(g.Indices) / 3 }

// LinesGeometry is a polyline geometry. Not consumed by the mesh writers.
type LinesGeometry struct {
	Vertices []float64
	Indices  []int
}

// PointsGeometry is a point cloud geometry. Not consumed by the mesh writers.
type PointsGeometry struct {
	Vertices []float64
}

func (*MeshGeometry) Kind() string   { return "mesh" }
func (*LinesGeometry) Kind() string  { return "lines" }
func (*PointsGeometry) Kind() string { return "points" }

func (*MeshGeometry) isGeometry()   {}
func (*LinesGeometry) isGeometry()  {}
func (*PointsGeometry) isGeometry() {}

// Model is the concrete in-memory Scene used by readers and tests.
// Geometries are referenced by position, so GeometryID doubles as an index.
type Model struct {
	Nodes      []Node
	Geometries []Geometry
	Meta       Metadata
}

// NodeCount returns the number of nodes in the scene.
func (m *Model) NodeCount() int { return len(m.Nodes) }

// Node returns the node at the given 0-based index.
func (m *Model) Node(index int) Node { return m.Nodes[index] }

// Geometry returns the geometry for the given id, or nil if the id is out of
// range.
func (m *Model) Geometry(id GeometryID) Geometry {
	if id < 0 || int(id) >= len(m.Geometries) {
		return nil
	}
	return m.Geometries[id]
}

// Metadata returns the scene metadata. Never nil.
func (m *Model) Metadata() Metadata {
	if m.Meta == nil {
		return Metadata{}
	}
	return m.Meta
}
