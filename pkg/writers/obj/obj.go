// Package obj converts an intermediate scene into Wavefront OBJ files:
// regular elements in one file, opening elements (voids, penetrations) in
// another. Output streams to disk under a bounded line buffer, so scene size
// is limited by disk, not memory.
package obj

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Imerso3D/forge-convert-utils/pkg/properties"
	"github.com/Imerso3D/forge-convert-utils/pkg/scene"
)

// Output file names within the output directory.
const (
	RegularFileName  = "output.obj"
	OpeningsFileName = "openings.obj"
)

// Write converts the scene into two OBJ files under outputDir. The property
// database drives element classification and grouping; it may be nil, in
// which case every node is a regular element grouped by dbid. Both output
// files are always created, even when empty. Errors from directory creation
// or file writes abort the run; there is no partial-success reporting.
func Write(sc scene.Scene, outputDir string, db properties.Database, opts Options) error {
	return write(sc, outputDir, db, opts, defaultFlushThreshold)
}

func write(sc scene.Scene, outputDir string, db properties.Database, opts Options, threshold int) error {
	log := opts.logger()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	scale := scene.UnitScale(sc.Metadata())
	regular, openings := buildGroups(sc, db, log)

	log(fmt.Sprintf("writing %d regular and %d opening groups (unit scale %g)",
		len(regular.ordered), len(openings.ordered), scale))

	if err := writeBucket(filepath.Join(outputDir, RegularFileName), sc, regular, scale, opts.SkipNormals, threshold, log); err != nil {
		return err
	}
	if err := writeBucket(filepath.Join(outputDir, OpeningsFileName), sc, openings, scale, opts.SkipNormals, threshold, log); err != nil {
		return err
	}

	log("conversion complete")
	return nil
}
