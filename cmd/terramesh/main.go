package main

import (
	"flag"
	"fmt"
	"log"

	"terramesh/internal/config"
	"terramesh/internal/imaging"
	"terramesh/internal/meshing"
	"terramesh/internal/profiling"
	"terramesh/internal/render"
	"terramesh/internal/terrain"
)

func main() {
	rows := flag.Int("rows", 512, "grid rows")
	cols := flag.Int("cols", 512, "grid columns")
	seed := flag.Int64("seed", 1337, "noise seed")
	noiseKind := flag.String("noise", "perlin", "noise sampler: perlin or value")
	modeName := flag.String("mode", "relief", "visualization mode: height, relief, contour, height-contour")
	seaLevel := flag.Float64("sea-level", 0.2, "sea level as a ratio of the height range, in [0,1]")
	showSea := flag.Bool("show-sea", true, "fill cells below sea level with the sea color in height modes")
	contourDensity := flag.Float64("contour-density", 25, "number of contour intervals across the height range")
	withMesh := flag.Bool("mesh", false, "triangulate the grid and print mesh stats")
	out := flag.String("out", "terrain.png", "output image path (.png or .bmp)")
	timings := flag.Bool("timings", false, "print per-pass timings")
	flag.Parse()

	sampler, err := newSampler(*noiseKind, *seed)
	if err != nil {
		log.Fatalf("invalid -noise: %v", err)
	}
	mode, err := render.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("invalid -mode: %v", err)
	}

	gen, err := terrain.NewGenerator(terrain.Resolution{Rows: *rows, Cols: *cols}, sampler)
	if err != nil {
		log.Fatalf("invalid resolution: %v", err)
	}
	gen.Reset().
		Perturbate(config.DefaultLayers()).
		Cutoff(config.DefaultCutoffLayers())

	if *withMesh {
		m := meshing.Build(gen.Grid())
		fmt.Printf("mesh: %d vertices, %d faces\n", m.VertexCount(), m.FaceCount())
	}

	cfg := render.Config{
		SeaLevelRatio:      *seaLevel,
		ShowSea:            *showSea,
		ContourLineDensity: *contourDensity,
	}
	pb, err := render.Render(gen.Grid(), mode, cfg)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	if err := imaging.Write(*out, pb); err != nil {
		log.Fatalf("write image failed: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d, %s)\n", *out, *cols, *rows, mode)
	if *timings {
		fmt.Println("timings:", profiling.TopN(5))
	}
}

func newSampler(kind string, seed int64) (terrain.Sampler, error) {
	switch kind {
	case "perlin":
		return terrain.NewPerlinSampler(seed), nil
	case "value":
		return terrain.NewValueSampler(seed), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q", kind)
	}
}
