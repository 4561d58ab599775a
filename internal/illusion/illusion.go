// Package illusion renders the two optical illusions from explicit
// per-image specs. Every parameter lives in the spec struct; the same
// spec always produces byte-identical output.
package illusion

import (
	"io"

	"illusionsvg/internal/ring"
	"illusionsvg/internal/svgdoc"
)

// Palette holds the three SVG color names shared by one image.
type Palette struct {
	Dark       string
	Light      string
	Background string
}

// Squares is the spec for illusion 1: concentric rings of tilted
// squares whose alternating colors and tilts make the rings appear to
// spiral.
type Squares struct {
	Name        string // output name, without extension
	Size        int    // canvas width and height, pixels
	Rings       int
	BaseRadius  float64
	RadiusStep  float64
	SquareWidth int
	Palette     Palette
}

// Render writes the image to Name+".svg". On a create failure the
// error is returned and no artifact is left behind.
func (s Squares) Render() error {
	doc, err := svgdoc.Create(s.Name, s.Size)
	if err != nil {
		return err
	}
	defer doc.Close()
	s.draw(doc)
	return nil
}

// Encode writes the image to w.
func (s Squares) Encode(w io.Writer) {
	doc := svgdoc.New(w, s.Size)
	s.draw(doc)
	doc.Close()
}

// Pivot returns the shared center of the rings. It sits half a square
// width above and left of the canvas center so that the squares,
// drawn from their top-left corner, center on it.
func (s Squares) Pivot() int {
	return s.Size/2 - s.SquareWidth/2
}

func (s Squares) draw(doc *svgdoc.Doc) {
	c := s.Pivot()
	doc.RectStyle(c, c, s.Palette.Dark, s.Palette.Light)
	doc.Background(s.Size, s.Palette.Background)

	for i := 0; i < s.Rings; i++ {
		r := s.BaseRadius + float64(i)*s.RadiusStep
		for _, p := range ring.Squares(r, s.SquareWidth, i&1 == 1) {
			doc.Square(p, s.SquareWidth)
		}
	}
}

// Braids is the spec for illusion 2: two concentric braids, each made
// of three interleaved circles of ellipses. The inner braid sits
// InnerOffset pixels further in with its ellipses shrunk by
// InnerScale, and is flipped so its color roles invert.
type Braids struct {
	Name            string
	Size            int
	EllipsesPerRing int // visible ellipses per circle; slots are double
	Radius          float64
	LongRadius      float64
	ShortRadius     float64
	InnerOffset     float64
	InnerScale      float64
	Palette         Palette
}

// Render writes the image to Name+".svg". On a create failure the
// error is returned and no artifact is left behind.
func (b Braids) Render() error {
	doc, err := svgdoc.Create(b.Name, b.Size)
	if err != nil {
		return err
	}
	defer doc.Close()
	b.draw(doc)
	return nil
}

// Encode writes the image to w.
func (b Braids) Encode(w io.Writer) {
	doc := svgdoc.New(w, b.Size)
	b.draw(doc)
	doc.Close()
}

// Pivot returns the shared center of the braids.
func (b Braids) Pivot() int {
	return b.Size / 2
}

func (b Braids) draw(doc *svgdoc.Doc) {
	c := b.Pivot()
	doc.EllipseStyle(c, c, b.Palette.Dark, b.Palette.Light)
	doc.Background(b.Size, b.Palette.Background)

	b.braid(doc, b.Radius, b.LongRadius, b.ShortRadius, false)
	b.braid(doc, b.Radius-b.InnerOffset, b.InnerScale*b.LongRadius, b.InnerScale*b.ShortRadius, true)
}

func (b Braids) braid(doc *svgdoc.Doc, radius, rx, ry float64, flipped bool) {
	for _, e := range ring.Braid(radius, ry, b.EllipsesPerRing, flipped) {
		for _, p := range e.Placements() {
			doc.Ellipse(p, rx, ry)
		}
	}
}
