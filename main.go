package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-caves/config"
	"ebiten-caves/data"
	"ebiten-caves/generation"
	"ebiten-caves/meshing"
)

func main() {
	presetName := flag.String("preset", "", "name of a generation preset to use")
	presetDir := flag.String("presets", config.DefaultPresetDir, "directory holding preset JSON files")
	seed := flag.String("seed", "", "override the generation seed")
	randomSeed := flag.Bool("random-seed", false, "use a clock-derived seed instead of the configured one")
	wallHeight := flag.Float64("wall-height", 0, "override the wall height in world units")
	objPath := flag.String("obj", "", "write the generated cave as a Wavefront OBJ file")
	headless := flag.Bool("headless", false, "generate without opening the viewer (requires -obj)")
	flag.Parse()

	cfg := generation.DefaultConfig()
	opts := meshing.CaveOptions{WallHeight: config.DefaultWallHeight}

	if *presetName != "" {
		presets := data.NewPresetManager()
		if err := presets.LoadPresetsFromDirectory(*presetDir); err != nil {
			log.Fatal(err)
		}
		preset, ok := presets.GetPreset(*presetName)
		if !ok {
			log.Fatalf("unknown preset %q; available: %v", *presetName, presets.Names())
		}
		cfg = preset.Generation
		presetOpts, err := preset.MeshOptions()
		if err != nil {
			log.Fatal(err)
		}
		opts = presetOpts
	}

	if *seed != "" {
		cfg.Seed = *seed
	}
	if *randomSeed {
		cfg.UseRandomSeed = true
	}
	if *wallHeight > 0 {
		opts.WallHeight = *wallHeight
	}

	if *headless || *objPath != "" {
		if *objPath == "" {
			log.Fatal("headless mode needs -obj to write results somewhere")
		}
		if err := exportOBJ(cfg, opts, *objPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	viewer, err := NewCaveViewer(cfg, opts)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowTitle("Cave Generator")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

// exportOBJ runs the full pipeline once and writes every chunk mesh to one
// OBJ file.
func exportOBJ(cfg generation.Config, opts meshing.CaveOptions, path string) error {
	m, err := generation.Generate(cfg)
	if err != nil {
		return err
	}
	chunks, err := meshing.BuildCave(m, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := meshing.WriteOBJ(f, chunks); err != nil {
		return err
	}

	triangles := 0
	for _, c := range chunks {
		for _, s := range c.Surfaces() {
			triangles += s.Mesh.TriangleCount()
		}
	}
	fmt.Printf("wrote %s: %dx%d map, %d chunks, %d triangles\n", path, m.Width, m.Height, len(chunks), triangles)
	return nil
}
