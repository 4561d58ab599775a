package illusion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"illusionsvg/internal/ring"
)

var testPalette = Palette{Dark: "black", Light: "white", Background: "gray"}

func testSquares(name string) Squares {
	return Squares{
		Name:        name,
		Size:        800,
		Rings:       4,
		BaseRadius:  100,
		RadiusStep:  72,
		SquareWidth: 24,
		Palette:     testPalette,
	}
}

func testBraids(name string) Braids {
	return Braids{
		Name:            name,
		Size:            800,
		EllipsesPerRing: 36,
		Radius:          300,
		LongRadius:      12,
		ShortRadius:     6,
		InnerOffset:     64,
		InnerScale:      0.8,
		Palette:         testPalette,
	}
}

func TestSquaresShapeCount(t *testing.T) {
	s := testSquares("out")
	var buf bytes.Buffer
	s.Encode(&buf)
	out := buf.String()

	want := 0
	for i := 0; i < s.Rings; i++ {
		want += ring.SquareCount(s.BaseRadius+float64(i)*s.RadiusStep, s.SquareWidth)
	}
	if got := strings.Count(out, "<g "); got != want {
		t.Errorf("emitted %d squares, want %d", got, want)
	}
	// even counts per ring keep the alternation balanced
	if b, w := strings.Count(out, `class="b"`), strings.Count(out, `class="w"`); b != w || b != want/2 {
		t.Errorf("class balance b=%d w=%d, want %d each", b, w, want/2)
	}
}

func TestBraidsShapeCount(t *testing.T) {
	b := testBraids("out")
	var buf bytes.Buffer
	b.Encode(&buf)
	out := buf.String()

	// two braids, three rings each, half of the 72 slots per ring
	// are gaps
	const want = 2 * 3 * 36
	if got := strings.Count(out, "<ellipse"); got != want {
		t.Errorf("emitted %d ellipses, want %d", got, want)
	}
	if dark, light := strings.Count(out, `class="b"`), strings.Count(out, `class="w"`); dark != want/2 || light != want/2 {
		t.Errorf("class balance b=%d w=%d, want %d each", dark, light, want/2)
	}
}

func TestEncodeDeterminism(t *testing.T) {
	var a, b bytes.Buffer
	testSquares("out").Encode(&a)
	testSquares("out").Encode(&b)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two runs of the same squares spec differ")
	}

	a.Reset()
	b.Reset()
	testBraids("out").Encode(&a)
	testBraids("out").Encode(&b)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two runs of the same braids spec differ")
	}
}

func TestRenderWritesFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out1")
	if err := testSquares(name).Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	data, err := os.ReadFile(name + ".svg")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("output does not start with an XML declaration")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("output is not finalized with a closing svg tag")
	}
}

func TestRenderUnwritableDestination(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing-dir", "out1")
	if err := testSquares(name).Render(); err == nil {
		t.Fatal("Render into a missing directory succeeded")
	}
	if _, err := os.Stat(name + ".svg"); !os.IsNotExist(err) {
		t.Error("a partial artifact was left behind")
	}

	if err := testBraids(name).Render(); err == nil {
		t.Fatal("Render into a missing directory succeeded")
	}
}

func TestSquaresPivot(t *testing.T) {
	if got := testSquares("out").Pivot(); got != 388 {
		t.Errorf("squares pivot = %d, want 388", got)
	}
	if got := testBraids("out").Pivot(); got != 400 {
		t.Errorf("braids pivot = %d, want 400", got)
	}
}
