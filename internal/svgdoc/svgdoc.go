// Package svgdoc writes one illusion image as a standalone SVG
// document: header, style declarations, background, then one
// transform group per shape.
package svgdoc

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"

	"illusionsvg/internal/ring"
)

// Doc is an open SVG document. The two color classes are declared
// once in a style block; every shape after that only carries its
// class name, which keeps the output small.
type Doc struct {
	canvas *svg.SVG
	file   *os.File // nil when writing to a caller-supplied stream
	cx, cy int      // rotation pivot for every shape group
}

// Create opens name+".svg" for writing and emits the document header.
// Failure to create the file is the only error this package reports;
// the caller skips that image and moves on.
func Create(name string, size int) (*Doc, error) {
	f, err := os.Create(name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("create %s.svg: %w", name, err)
	}
	d := New(f, size)
	d.file = f
	return d, nil
}

// New starts a document on w with a square canvas and a matching
// viewBox. Coordinates are written with one decimal place.
func New(w io.Writer, size int) *Doc {
	canvas := svg.New(w)
	canvas.Decimals = 1
	canvas.Startview(float64(size), float64(size), 0, 0, float64(size), float64(size))
	fmt.Fprintln(w, "<!-- Created by illusionsvg -->")
	return &Doc{canvas: canvas}
}

// RectStyle declares the square classes: stroked outlines of width 3
// in the dark and light colors, positioned at the pivot (cx, cy). The
// position lives in the style block so the per-shape rect tags stay
// attribute-free; the rotation pivot for every following shape group
// is the same point.
func (d *Doc) RectStyle(cx, cy int, dark, light string) {
	d.cx, d.cy = cx, cy
	d.canvas.Style("text/css",
		"rect{fill:none;stroke-width:3}",
		fmt.Sprintf("rect.b{x:%d;y:%d;stroke:%s;}", cx, cy, dark),
		fmt.Sprintf("rect.w{x:%d;y:%d;stroke:%s;}", cx, cy, light))
}

// EllipseStyle declares the ellipse classes: filled, no stroke,
// centered on the pivot (cx, cy).
func (d *Doc) EllipseStyle(cx, cy int, dark, light string) {
	d.cx, d.cy = cx, cy
	d.canvas.Style("text/css",
		"ellipse{fill:none;stroke-width:3}",
		fmt.Sprintf("ellipse.b{cx:%d;cy:%d;stroke:none;fill:%s;}", cx, cy, dark),
		fmt.Sprintf("ellipse.w{cx:%d;cy:%d;stroke:none;fill:%s;}", cx, cy, light))
}

// Background fills the whole canvas.
func (d *Doc) Background(size int, fill string) {
	d.canvas.Rect(0, 0, float64(size), float64(size), "style=\"fill:"+fill+"\"")
}

// Square emits one classed square of the given width at the
// placement, or nothing for a gap. The group translates by the
// placement offset plus half a square width so the square center
// lands on the ring, then rotates about the pivot.
func (d *Doc) Square(p ring.Placement, width int) {
	if p.Class == ring.None {
		return
	}
	half := float64(width) / 2
	d.group(p.Offset.X+half, p.Offset.Y+half, p.Rotation)
	d.canvas.Rect(0, 0, float64(width), float64(width), classAttr(p.Class))
	d.canvas.Gend()
}

// Ellipse emits one classed ellipse with the given radii at the
// placement, or nothing for a gap.
func (d *Doc) Ellipse(p ring.Placement, rx, ry float64) {
	if p.Class == ring.None {
		return
	}
	d.group(p.Offset.X, p.Offset.Y, p.Rotation)
	d.canvas.Ellipse(0, 0, rx, ry, classAttr(p.Class))
	d.canvas.Gend()
}

func (d *Doc) group(x, y, deg float64) {
	d.canvas.Gtransform(fmt.Sprintf("translate(%.1f %.1f) rotate(%.1f %d %d)", x, y, deg, d.cx, d.cy))
}

func classAttr(c ring.ColorClass) string {
	if c == ring.Dark {
		return `class="b"`
	}
	return `class="w"`
}

// Close writes the closing svg tag and releases the file, if any.
func (d *Doc) Close() error {
	d.canvas.End()
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
