package main

import (
	"fmt"
	"image"

	"github.com/fatih/color"

	"illusionsvg/internal/illusion"
	"illusionsvg/internal/preview"
)

var (
	// Console colors
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

var (
	grayscale = illusion.Palette{Dark: "black", Light: "white", Background: "gray"}
	colorway  = illusion.Palette{Dark: "blue", Light: "yellow", Background: "forestgreen"}
)

// job is one scheduled output: an SVG render plus a PNG preview of
// the same spec.
type job struct {
	name    string
	render  func() error
	preview func() image.Image
}

func jobs() []job {
	squares := func(name string, pal illusion.Palette) job {
		spec := illusion.Squares{
			Name:        name,
			Size:        800,
			Rings:       4,
			BaseRadius:  100,
			RadiusStep:  72,
			SquareWidth: 24,
			Palette:     pal,
		}
		return job{name, spec.Render, func() image.Image { return preview.Squares(spec) }}
	}
	braids := func(name string, pal illusion.Palette) job {
		spec := illusion.Braids{
			Name:            name,
			Size:            800,
			EllipsesPerRing: 36,
			Radius:          300,
			LongRadius:      12,
			ShortRadius:     6,
			InnerOffset:     64,
			InnerScale:      0.8,
			Palette:         pal,
		}
		return job{name, spec.Render, func() image.Image { return preview.Braids(spec) }}
	}

	return []job{
		squares("output1", grayscale),
		squares("output1a", colorway),
		braids("output2", grayscale),
		braids("output2a", colorway),
	}
}

func main() {
	printHeader()

	for _, j := range jobs() {
		if err := j.render(); err != nil {
			red.Printf("✗ %s: %s\n", j.name, err)
			continue // keep going with the remaining images
		}
		green.Printf("✓ %s.svg\n", j.name)

		if err := preview.Write(j.name+".png", j.preview()); err != nil {
			red.Printf("✗ %s.png: %s\n", j.name, err)
			continue
		}
		green.Printf("✓ %s.png\n", j.name)
	}
}

func printHeader() {
	cyan.Println("╔════════════════════════════════════════════════╗")
	cyan.Println("║                                                ║")
	cyan.Println("║         OPTICAL ILLUSION SVG GENERATOR         ║")
	cyan.Println("║                                                ║")
	cyan.Println("╚════════════════════════════════════════════════╝")
	fmt.Println()
	yellow.Println("Tilted squares and braided rings, two palettes each")
	fmt.Println()
}
