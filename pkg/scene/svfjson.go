package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Imerso3D/forge-convert-utils/pkg/math"
)

// Scene snapshot errors.
var (
	ErrUnknownNodeKind     = errors.New("unknown node kind")
	ErrUnknownGeometryType = errors.New("unknown geometry type")
	ErrAmbiguousTransform  = errors.New("transform declares both matrix and decomposed components")
	ErrMalformedMatrix     = errors.New("matrix transform must have 16 elements")
	ErrMalformedGeometry   = errors.New("malformed mesh geometry")
	ErrInvalidDBID         = errors.New("object node dbid must be positive")
)

// snapshot mirrors the on-disk JSON layout of a materialized scene.
type snapshot struct {
	Metadata   Metadata           `json:"metadata"`
	Nodes      []nodeSnapshot     `json:"nodes"`
	Geometries []geometrySnapshot `json:"geometries"`
}

type nodeSnapshot struct {
	Kind      string             `json:"kind"`
	DBID      int64              `json:"dbid"`
	Geometry  GeometryID         `json:"geometry"`
	Target    int                `json:"target"`
	Children  []int              `json:"children"`
	Transform *transformSnapshot `json:"transform"`
}

type transformSnapshot struct {
	Matrix      []float64   `json:"matrix"`
	Translation *[3]float64 `json:"translation"`
	Quaternion  *[4]float64 `json:"quaternion"`
	Scale       *[3]float64 `json:"scale"`
}

type geometrySnapshot struct {
	Type     string    `json:"type"`
	Vertices []float64 `json:"vertices"`
	Indices  []int     `json:"indices"`
	Normals  []float64 `json:"normals"`
}

// LoadModel reads a JSON scene snapshot from disk and materializes it as a
// Model. The snapshot is the fully materialized form produced by the format
// readers; this loader never touches proprietary binary formats.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene snapshot %s: %w", path, err)
	}
	model, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene snapshot %s: %w", path, err)
	}
	return model, nil
}

// ParseModel parses a JSON scene snapshot, validating node and geometry
// invariants up front so downstream writers can rely on them.
func ParseModel(data []byte) (*Model, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	model := &Model{Meta: snap.Metadata}

	for i, ns := range snap.Nodes {
		node, err := ns.build()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		model.Nodes = append(model.Nodes, node)
	}

	for i, gs := range snap.Geometries {
		geom, err := gs.build()
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		model.Geometries = append(model.Geometries, geom)
	}

	return model, nil
}

func (ns nodeSnapshot) build() (Node, error) {
	transform, err := ns.Transform.build()
	if err != nil {
		return nil, err
	}

	switch ns.Kind {
	case "object":
		if ns.DBID <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidDBID, ns.DBID)
		}
		return &ObjectNode{DBID: ns.DBID, Geometry: ns.Geometry, Transform: transform}, nil
	case "group":
		return &GroupNode{DBID: ns.DBID, Children: ns.Children}, nil
	case "instance":
		return &InstanceNode{DBID: ns.DBID, Target: ns.Target, Transform: transform}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeKind, ns.Kind)
	}
}

func (ts *transformSnapshot) build() (Transform, error) {
	if ts == nil {
		return nil, nil
	}
	if ts.Matrix != nil {
		if ts.Translation != nil || ts.Quaternion != nil || ts.Scale != nil {
			return nil, ErrAmbiguousTransform
		}
		if len(ts.Matrix) != 16 {
			return nil, fmt.Errorf("%w: got %d", ErrMalformedMatrix, len(ts.Matrix))
		}
		var m MatrixTransform
		copy(m[:], ts.Matrix)
		return m, nil
	}

	dt := &DecomposedTransform{
		Translation: ts.Translation,
		Scale:       ts.Scale,
	}
	if ts.Quaternion != nil {
		q := ts.Quaternion
		dt.Rotation = &math.Quat{X: q[0], Y: q[1], Z: q[2], W: q[3]}
	}
	return dt, nil
}

func (gs geometrySnapshot) build() (Geometry, error) {
	switch gs.Type {
	case "mesh":
		if len(gs.Vertices)%3 != 0 {
			return nil, fmt.Errorf("%w: vertex buffer length %d not divisible by 3", ErrMalformedGeometry, len(gs.Vertices))
		}
		if len(gs.Indices)%3 != 0 {
			return nil, fmt.Errorf("%w: index buffer length %d not divisible by 3", ErrMalformedGeometry, len(gs.Indices))
		}
		if gs.Normals != nil && len(gs.Normals) != len(gs.Vertices) {
			return nil, fmt.Errorf("%w: %d normals for %d vertices", ErrMalformedGeometry, len(gs.Normals), len(gs.Vertices))
		}
		vertexCount := len(gs.Vertices) / 3
		for _, idx := range gs.Indices {
			if idx < 0 || idx >= vertexCount {
				return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrMalformedGeometry, idx, vertexCount)
			}
		}
		return &MeshGeometry{Vertices: gs.Vertices, Indices: gs.Indices, Normals: gs.Normals}, nil
	case "lines":
		return &LinesGeometry{Vertices: gs.Vertices, Indices: gs.Indices}, nil
	case "points":
		return &PointsGeometry{Vertices: gs.Vertices}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGeometryType, gs.Type)
	}
}
