// Command meshtool loads a mesh, runs one mutating operation on it, and
// writes the result back out.
//
// Usage:
//
//	meshtool <infile> <outfile> <subcommand> [subcommand-args]
//
// subcommand is one of subdivide, simplify, remesh, denoise, noise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lukas-voss/trimesh/halfedge"
	"github.com/lukas-voss/trimesh/meshio"
	"github.com/lukas-voss/trimesh/ops"
	"github.com/lukas-voss/trimesh/vecmath"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: meshtool <infile> <outfile> <subcommand> [args]")
	}

	inPath, outPath, sub := args[0], args[1], args[2]
	subArgs := args[3:]

	points, faces, err := meshio.ReadOBJFromPath(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	m, err := halfedge.NewMesh(points, faces)
	if err != nil {
		return fmt.Errorf("build mesh from %s: %w", inPath, err)
	}

	logDiagnostics(m)

	switch sub {
	case "subdivide":
		err = runSubdivide(m, subArgs)
	case "simplify":
		err = runSimplify(m, subArgs)
	case "remesh":
		err = runRemesh(m, subArgs)
	case "denoise":
		err = runDenoise(m, subArgs)
	case "noise":
		err = runNoise(m, subArgs)
	default:
		err = fmt.Errorf("unknown subcommand %q", sub)
	}
	if err != nil {
		if errors.Is(err, halfedge.ErrBoundary) {
			return fmt.Errorf("%s: mesh has a boundary, which this toolkit does not support: %w", sub, err)
		}
		return fmt.Errorf("%s: %w", sub, err)
	}

	outPoints, outFaces := m.Export()
	if err := meshio.WriteOBJToPath(outPath, outPoints, outFaces); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	return nil
}

func logDiagnostics(m *halfedge.Mesh) {
	points, _ := m.Export()
	box := vecmath.BoundsOf(points)
	size := box.Size()
	log.Printf("loaded mesh: %d vertices, %d edges, %d faces, bbox size (%.4g, %.4g, %.4g)",
		m.NumLiveVertices(), m.NumLiveEdges(), m.NumLiveFaces(), size.X(), size.Y(), size.Z())
}

// reorderFlagsFirst moves "-"-prefixed arguments ahead of positional ones,
// preserving the relative order within each group, so flag.FlagSet.Parse
// picks them up regardless of where the caller placed them on the line.
func reorderFlagsFirst(args []string) []string {
	var flags, positional []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		} else {
			positional = append(positional, a)
		}
	}
	return append(flags, positional...)
}

func runSubdivide(m *halfedge.Mesh, args []string) error {
	fs := flag.NewFlagSet("subdivide", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: subdivide <iterations>")
	}
	iterations, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse iterations: %w", err)
	}
	return ops.Subdivide(m, iterations)
}

func runSimplify(m *halfedge.Mesh, args []string) error {
	fs := flag.NewFlagSet("simplify", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: simplify <faces_to_remove>")
	}
	target, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse faces_to_remove: %w", err)
	}

	removed, reached := ops.Simplify(m, target)
	if !reached {
		fmt.Fprintf(os.Stderr, "simplify: target unreachable, removed %d of %d requested faces\n", removed, target)
	}
	return nil
}

func runRemesh(m *halfedge.Mesh, args []string) error {
	fs := flag.NewFlagSet("remesh", flag.ContinueOnError)
	noCollapse := fs.Bool("no-collapse", false, "disable the short-edge collapse phase")
	// flag.Parse stops at the first non-flag argument, so a flag trailing
	// the positional args (the usage order below) would otherwise be left
	// unparsed; reorder flags to the front so position doesn't matter.
	if err := fs.Parse(reorderFlagsFirst(args)); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: remesh <iterations> <smoothing_weight> [--no-collapse]")
	}

	iterations, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse iterations: %w", err)
	}
	weight, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("parse smoothing_weight: %w", err)
	}

	return ops.IsotropicRemesh(m, ops.RemeshConfig{
		Iterations:      iterations,
		SmoothingWeight: weight,
		AllowCollapse:   !*noCollapse,
	})
}

func runDenoise(m *halfedge.Mesh, args []string) error {
	fs := flag.NewFlagSet("denoise", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 4 {
		return fmt.Errorf("usage: denoise <iterations> <sigma_c> <sigma_s> <kernel_size>")
	}

	iterations, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse iterations: %w", err)
	}
	sigmaC, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("parse sigma_c: %w", err)
	}
	sigmaS, err := strconv.ParseFloat(fs.Arg(2), 64)
	if err != nil {
		return fmt.Errorf("parse sigma_s: %w", err)
	}
	kernelSize, err := strconv.Atoi(fs.Arg(3))
	if err != nil {
		return fmt.Errorf("parse kernel_size: %w", err)
	}

	return ops.BilateralDenoise(m, ops.DenoiseConfig{
		Iterations: iterations,
		SigmaC:     sigmaC,
		SigmaS:     sigmaS,
		KernelSize: kernelSize,
	})
}

func runNoise(m *halfedge.Mesh, args []string) error {
	fs := flag.NewFlagSet("noise", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: noise <sigma>")
	}
	sigma, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("parse sigma: %w", err)
	}

	src := ops.NewGonumNormalSource(time.Now().UnixNano())
	return ops.GaussianNoise(m, sigma, src)
}
