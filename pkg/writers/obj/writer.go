package obj

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Imerso3D/forge-convert-utils/pkg/scene"
)

// defaultFlushThreshold is the buffered line count above which the writer
// flushes to disk. Large scenes run to tens of millions of vertices; the
// buffer is the only thing standing between them and unbounded memory.
const defaultFlushThreshold = 50000

// Coordinate precision: vertices to 4 decimals, normals to 2.
const (
	vertexPrecision = 4
	normalPrecision = 2
)

// formatCoord renders one coordinate with fixed decimal precision, never in
// scientific notation.
func formatCoord(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// bucketWriter streams one bucket (regular or opening) to one output file.
// Lines accumulate in memory and are flushed whenever their count exceeds
// the threshold; a flush never splits a line, so the file content is
// byte-identical for any threshold value.
type bucketWriter struct {
	file      *os.File
	lines     []string
	threshold int

	// offset is the next 1-based vertex index for this file. It spans group
	// boundaries and is only reset between output files.
	offset int
}

func newBucketWriter(path string, threshold int) (*bucketWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &bucketWriter{file: file, threshold: threshold, offset: 1}, nil
}

func (w *bucketWriter) push(line string) error {
	w.lines = append(w.lines, line)
	if len(w.lines) > w.threshold {
		return w.flush()
	}
	return nil
}

func (w *bucketWriter) flush() error {
	if len(w.lines) == 0 {
		return nil
	}
	var sb strings.Builder
	for _, line := range w.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if _, err := w.file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("writing %s: %w", w.file.Name(), err)
	}
	w.lines = w.lines[:0]
	return nil
}

func (w *bucketWriter) close() error {
	if err := w.flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// writeBucket emits one bucket of groups to the file at path: per group an
// object header, then per member node its transformed vertex, normal and
// face lines.
func writeBucket(path string, sc scene.Scene, groups *groupSet, scale float64, skipNormals bool, threshold int, log func(string)) error {
	w, err := newBucketWriter(path, threshold)
	if err != nil {
		return err
	}

	for _, g := range groups.ordered {
		if err := w.push("o " + g.key); err != nil {
			w.file.Close()
			return err
		}
		for _, nodeIndex := range g.nodes {
			if err := w.writeNode(sc, nodeIndex, scale, skipNormals, log); err != nil {
				w.file.Close()
				return err
			}
		}
	}

	return w.close()
}

// writeNode emits the geometry of a single grouped node. The node was
// bucketed as an object by the grouping pass; finding anything else here
// means the two passes disagree about scene content and is fatal.
func (w *bucketWriter) writeNode(sc scene.Scene, nodeIndex int, scale float64, skipNormals bool, log func(string)) error {
	node, ok := sc.Node(nodeIndex).(*scene.ObjectNode)
	if !ok {
		return fmt.Errorf("node %d: grouped as object but resolved to %s", nodeIndex, sc.Node(nodeIndex).Kind())
	}

	geom := sc.Geometry(node.Geometry)
	if geom == nil {
		log(fmt.Sprintf("node %d: geometry %d not found, skipping", nodeIndex, node.Geometry))
		return nil
	}
	mesh, ok := geom.(*scene.MeshGeometry)
	if !ok {
		log(fmt.Sprintf("node %d: skipping %s geometry", nodeIndex, geom.Kind()))
		return nil
	}

	world, normalMatrix := scene.ResolveTransform(node.Transform)

	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		p := world.TransformPoint([3]float64{mesh.Vertices[i], mesh.Vertices[i+1], mesh.Vertices[i+2]})
		line := "v " + formatCoord(p[0]*scale, vertexPrecision) +
			" " + formatCoord(p[1]*scale, vertexPrecision) +
			" " + formatCoord(p[2]*scale, vertexPrecision)
		if err := w.push(line); err != nil {
			return err
		}
	}

	// Normals are emitted one per vertex, in lockstep, which is what lets
	// faces reuse the vertex index on both sides of the "//".
	withNormals := !skipNormals && len(mesh.Normals) > 0
	if withNormals {
		for i := 0; i+2 < len(mesh.Normals); i += 3 {
			n := normalMatrix.TransformDirection([3]float64{mesh.Normals[i], mesh.Normals[i+1], mesh.Normals[i+2]})
			line := "vn " + formatCoord(n[0], normalPrecision) +
				" " + formatCoord(n[1], normalPrecision) +
				" " + formatCoord(n[2], normalPrecision)
			if err := w.push(line); err != nil {
				return err
			}
		}
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := w.offset + mesh.Indices[i]
		b := w.offset + mesh.Indices[i+1]
		c := w.offset + mesh.Indices[i+2]
		var line string
		if withNormals {
			line = fmt.Sprintf("f %d//%d %d//%d %d//%d", a, a, b, b, c, c)
		} else {
			line = fmt.Sprintf("f %d %d %d", a, b, c)
		}
		if err := w.push(line); err != nil {
			return err
		}
	}

	w.offset += mesh.VertexCount()
	return nil
}
