// forge-convert is a CLI for converting materialized viewer scenes into
// Wavefront OBJ interchange files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Imerso3D/forge-convert-utils/internal/config"
	"github.com/Imerso3D/forge-convert-utils/internal/logger"
	"github.com/Imerso3D/forge-convert-utils/pkg/properties"
	"github.com/Imerso3D/forge-convert-utils/pkg/scene"
	"github.com/Imerso3D/forge-convert-utils/pkg/writers/obj"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "convert":
		cmdConvert(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`forge-convert - viewer scene to OBJ converter

Usage:
  forge-convert <command> [options]

Commands:
  convert <scene.json>   Convert a scene snapshot to OBJ files
  info <scene.json>      Show scene summary

Convert options:
  -o <dir>          Output directory (default from config, else "out")
  -props <file>     Property database snapshot (JSON)
  -skip-normals     Omit normals from the output
  -config <file>    Config file (default ./forge-convert.yaml)

Examples:
  forge-convert info model.json
  forge-convert convert model.json -o exported -props props.json`)
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	outDir := fs.String("o", "", "Output directory")
	propsPath := fs.String("props", "", "Property database snapshot (JSON)")
	skipNormals := fs.Bool("skip-normals", false, "Omit normals from the output")
	configPath := fs.String("config", "", "Config file path")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: forge-convert convert <scene.json> [options]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *propsPath != "" {
		cfg.Properties = *propsPath
	}
	if *skipNormals {
		cfg.Output.SkipNormals = true
	}

	logger.Init(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.LogFile})
	defer logger.Sync()

	model, err := scene.LoadModel(fs.Arg(0))
	if err != nil {
		logger.Sugar.Error(err)
		os.Exit(1)
	}

	var db properties.Database
	if cfg.Properties != "" {
		set, err := properties.Load(cfg.Properties)
		if err != nil {
			logger.Sugar.Error(err)
			os.Exit(1)
		}
		db = set
	} else {
		logger.Sugar.Info("no property database given, grouping by dbid")
	}

	opts := obj.Options{
		SkipNormals: cfg.Output.SkipNormals,
		Log:         func(msg string) { logger.Sugar.Info(msg) },
	}
	if err := obj.Write(model, cfg.Output.Dir, db, opts); err != nil {
		logger.Sugar.Error(err)
		os.Exit(1)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: forge-convert info <scene.json>")
		os.Exit(1)
	}

	model, err := scene.LoadModel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	nodeKinds := make(map[string]int)
	for i := 0; i < model.NodeCount(); i++ {
		nodeKinds[model.Node(i).Kind()]++
	}
	geomKinds := make(map[string]int)
	vertices := 0
	triangles := 0
	for _, g := range model.Geometries {
		geomKinds[g.Kind()]++
		if mesh, ok := g.(*scene.MeshGeometry); ok {
			vertices += mesh.VertexCount()
			triangles += mesh.TriangleCount()
		}
	}

	fmt.Printf("Scene:      %s\n", args[0])
	fmt.Printf("Nodes:      %d", model.NodeCount())
	for _, kind := range []string{"object", "group", "instance"} {
		if n := nodeKinds[kind]; n > 0 {
			fmt.Printf("  %s=%d", kind, n)
		}
	}
	fmt.Println()
	fmt.Printf("Geometries: %d", len(model.Geometries))
	for _, kind := range []string{"mesh", "lines", "points"} {
		if n := geomKinds[kind]; n > 0 {
			fmt.Printf("  %s=%d", kind, n)
		}
	}
	fmt.Println()
	fmt.Printf("Mesh data:  %d vertices, %d triangles\n", vertices, triangles)
	fmt.Printf("Unit scale: %g\n", scene.UnitScale(model.Metadata()))
}
