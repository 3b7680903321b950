// Command folco-render applies an icon customization profile to a base
// PNG and writes the rendered result at one or more logical sizes.
//
// The base image is resampled to each requested size to build the base
// icon set, then every variant is rendered through the customization
// pipeline.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	folco "github.com/ecoates2/folco-renderer"
)

func main() {
	var (
		input   = flag.String("input", "", "base icon PNG (required)")
		profile = flag.String("profile", "", "profile JSON file")
		sizes   = flag.String("sizes", "16,32,64,128,256", "comma-separated logical sizes")
		scale   = flag.Float64("scale", 1.0, "display scale factor of the base image")
		outDir  = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}

	base, err := loadPNG(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	set := folco.NewIconSet()
	for _, s := range sizeList {
		px := int(float64(s) * *scale)
		set.Add(folco.FullContentIcon(resample(base, px), float32(*scale)))
	}

	c := folco.NewCustomizer(set)
	if *profile != "" {
		data, err := os.ReadFile(*profile)
		if err != nil {
			log.Fatalf("Failed to read profile: %v", err)
		}
		p, err := folco.ParseProfile(data)
		if err != nil {
			log.Fatalf("Failed to parse profile: %v", err)
		}
		c.ApplyProfile(p)
	}

	for i, icon := range c.RenderAll().Images() {
		name := fmt.Sprintf("icon_%d.png", sizeList[i])
		path := filepath.Join(*outDir, name)
		if err := icon.Pix.SavePNG(path); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
		log.Printf("Wrote %s (%dx%d)", path, icon.Pix.Width(), icon.Pix.Height())
	}
}

// parseSizes splits a comma-separated list of positive integers.
func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("size must be positive: %d", n)
		}
		out = append(out, n)
	}
	return out, nil
}

// loadPNG decodes a PNG file.
func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Decode(f)
}

// resample scales an image to size x size pixels with Catmull-Rom
// interpolation and returns it as a pixmap.
func resample(src image.Image, size int) *folco.Pixmap {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return folco.FromImage(dst)
}
