// Package main provides the Fovea CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fovea-cv/fovea/internal/correlate"
	"github.com/fovea-cv/fovea/internal/filters"
	"github.com/fovea-cv/fovea/internal/grid"
	"github.com/fovea-cv/fovea/internal/imageio"
	"github.com/fovea-cv/fovea/internal/render"
	"github.com/fovea-cv/fovea/internal/synth"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("Fovea %s\n", version)
	case "filter":
		err = runFilter(os.Args[2:])
	case "demo":
		err = runDemo(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "fovea: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Fovea - classic image filters over 2D grids")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  filter     Apply a named kernel to an image file")
	fmt.Println("  demo       Run the filter bank over synthetic shapes")
}

// runFilter decodes an image, applies one catalogue kernel, and writes
// the rescaled response as a grayscale PNG.
func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	in := fs.String("in", "", "Input image (PNG or JPEG)")
	out := fs.String("out", "out.png", "Output PNG path")
	name := fs.String("kernel", "sobel-x", "Kernel name from the catalogue, or box:N")
	modeName := fs.String("mode", "same", "Padding mode: valid or same")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("missing -in")
	}

	kernel, err := lookupKernel(*name)
	if err != nil {
		return err
	}
	mode, err := correlate.ParseMode(*modeName)
	if err != nil {
		return err
	}

	img, err := imageio.DecodeFile(*in)
	if err != nil {
		return err
	}

	response, err := correlate.Correlate(img, kernel, mode)
	if err != nil {
		return err
	}
	if err := imageio.WritePNG(*out, response); err != nil {
		return err
	}

	fmt.Printf("✅ %s (%s, %s) -> %s [%dx%d]\n",
		*name, *modeName, *in, *out, response.Rows(), response.Cols())
	return nil
}

// lookupKernel resolves a catalogue name, with box:N as the one
// parameterized form.
func lookupKernel(name string) (*grid.Grid, error) {
	if n, ok := strings.CutPrefix(name, "box:"); ok {
		size, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("bad box size %q: %w", n, err)
		}
		return filters.Box(size)
	}

	catalogue := filters.Catalogue()
	kernel, ok := catalogue[name]
	if !ok {
		names := make([]string, 0, len(catalogue))
		for k := range catalogue {
			names = append(names, k)
		}
		return nil, fmt.Errorf("unknown kernel %q (known: %s, box:N)", name, strings.Join(names, ", "))
	}
	return kernel, nil
}

// runDemo renders synthetic shapes, pushes each through the full filter
// bank, and writes PNGs, heatmaps, and an HTML report to -out.
func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	outDir := fs.String("out", "demo-out", "Output directory")
	size := fs.Int("size", 64, "Synthetic image size (rows and cols)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	n := *size
	shapes := []struct {
		name  string
		image *grid.Grid
	}{
		{"vline", synth.VerticalLine(n, n, n/2, 255)},
		{"square", synth.Square(n, n, n/4, 255)},
		{"corner", synth.Corner(n, n, n/4, n/4, n/2, synth.NW, 255)},
		{"circle", synth.Circle(n, n, n/2, n/2, n/3, 255)},
	}

	fmt.Printf("🔍 Fovea demo: %d shapes through %d kernels -> %s\n",
		len(shapes), len(filters.Catalogue()), *outDir)

	var sections []render.Section
	for _, shape := range shapes {
		if err := imageio.WritePNG(filepath.Join(*outDir, shape.name+".png"), shape.image); err != nil {
			return err
		}
		sections = append(sections, render.Section{Title: shape.name, Grid: shape.image})

		for kernelName, kernel := range filters.Catalogue() {
			response, err := correlate.Correlate(shape.image, kernel, correlate.Same)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", shape.name, kernelName, err)
			}

			base := fmt.Sprintf("%s_%s", shape.name, kernelName)
			if err := imageio.WritePNG(filepath.Join(*outDir, base+".png"), response); err != nil {
				return err
			}
			if err := render.Heatmap(response, base, filepath.Join(*outDir, base+"_heatmap.png")); err != nil {
				return err
			}
			sections = append(sections, render.Section{Title: base, Grid: response})
		}

		// Gradient magnitude from the Sobel pair.
		gx, err := correlate.Correlate(shape.image, filters.SobelX(), correlate.Same)
		if err != nil {
			return err
		}
		gy, err := correlate.Correlate(shape.image, filters.SobelY(), correlate.Same)
		if err != nil {
			return err
		}
		mag, err := filters.GradientMagnitude(gx, gy)
		if err != nil {
			return err
		}
		base := shape.name + "_gradient-magnitude"
		if err := imageio.WritePNG(filepath.Join(*outDir, base+".png"), mag); err != nil {
			return err
		}
		sections = append(sections, render.Section{Title: base, Grid: mag})
	}

	reportPath := filepath.Join(*outDir, "report.html")
	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if err := render.HTMLReport(f, "Fovea filter bank demo", sections); err != nil {
		return err
	}

	fmt.Printf("✅ Wrote %d sections, report at %s\n", len(sections), reportPath)
	return nil
}
