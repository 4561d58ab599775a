// Package preview rasterizes the illusion specs to PNG so the output
// can be checked without an SVG viewer. Geometry matches the SVG
// output: same placements, same pivot, same stroke width.
package preview

import (
	"image"
	imgcolor "image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"illusionsvg/internal/illusion"
	"illusionsvg/internal/ring"
)

const strokeWidth = 3

var captionFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return // no caption, previews still render
	}
	captionFace, _ = opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72})
}

// Squares renders the tilted-squares spec to a raster image.
func Squares(s illusion.Squares) image.Image {
	dc := newCanvas(s.Size, s.Palette)
	c := float64(s.Pivot())
	sw := float64(s.SquareWidth)

	dc.SetLineWidth(strokeWidth)
	for i := 0; i < s.Rings; i++ {
		r := s.BaseRadius + float64(i)*s.RadiusStep
		for _, p := range ring.Squares(r, s.SquareWidth, i&1 == 1) {
			if p.Class == ring.None {
				continue
			}
			dc.Push()
			dc.Translate(p.Offset.X+sw/2, p.Offset.Y+sw/2)
			dc.RotateAbout(gg.Radians(p.Rotation), c, c)
			dc.DrawRectangle(c, c, sw, sw)
			dc.SetColor(classColor(p.Class, s.Palette))
			dc.Stroke()
			dc.Pop()
		}
	}

	caption(dc, s.Name, s.Size, s.Palette)
	return dc.Image()
}

// Braids renders the braided-ellipses spec to a raster image.
func Braids(b illusion.Braids) image.Image {
	dc := newCanvas(b.Size, b.Palette)
	c := float64(b.Pivot())

	drawBraid := func(radius, rx, ry float64, flipped bool) {
		for _, e := range ring.Braid(radius, ry, b.EllipsesPerRing, flipped) {
			for _, p := range e.Placements() {
				if p.Class == ring.None {
					continue
				}
				dc.Push()
				dc.Translate(p.Offset.X, p.Offset.Y)
				dc.RotateAbout(gg.Radians(p.Rotation), c, c)
				dc.DrawEllipse(c, c, rx, ry)
				dc.SetColor(classColor(p.Class, b.Palette))
				dc.Fill()
				dc.Pop()
			}
		}
	}
	drawBraid(b.Radius, b.LongRadius, b.ShortRadius, false)
	drawBraid(b.Radius-b.InnerOffset, b.InnerScale*b.LongRadius, b.InnerScale*b.ShortRadius, true)

	caption(dc, b.Name, b.Size, b.Palette)
	return dc.Image()
}

// Write saves the image to path as PNG.
func Write(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

func newCanvas(size int, pal illusion.Palette) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetColor(lookup(pal.Background))
	dc.Clear()
	return dc
}

func caption(dc *gg.Context, name string, size int, pal illusion.Palette) {
	if captionFace == nil {
		return
	}
	dc.SetFontFace(captionFace)
	dc.SetColor(lookup(pal.Dark))
	dc.DrawStringAnchored(name, float64(size)/2, float64(size)-12, 0.5, 0.5)
}

func classColor(c ring.ColorClass, pal illusion.Palette) imgcolor.RGBA {
	if c == ring.Dark {
		return lookup(pal.Dark)
	}
	return lookup(pal.Light)
}

// lookup resolves an SVG color name; unknown names fall back to gray.
func lookup(name string) imgcolor.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Gray
}
