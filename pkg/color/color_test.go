package color

import (
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var testHexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// --- ParseHex ---

func TestParseHexAcceptsValidForms(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#667eea", RGB{102, 126, 234}},
		{"667eea", RGB{102, 126, 234}},
		{"#667EEA", RGB{102, 126, 234}},
		{"#000000", RGB{0, 0, 0}},
		{"FFFFFF", RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		got, ok := ParseHex(tt.in)
		if !ok {
			t.Errorf("ParseHex(%q) ok=false, want true", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"not-a-color",
		"",
		"#",
		"#fff",
		"#12345",
		"#1234567",
		"##667eea",
		"#66 7ee",
		"#gg0000",
		"+f0000",
		" 667eea",
		"#+12345",
	} {
		if _, ok := ParseHex(in); ok {
			t.Errorf("ParseHex(%q) ok=true, want false", in)
		}
	}
}

// --- RGBToHSL ---

func TestRGBToHSLKnownValues(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    HSL
	}{
		{255, 255, 255, HSL{0, 0, 100}},
		{0, 0, 0, HSL{0, 0, 0}},
		{255, 0, 0, HSL{0, 100, 50}},
		{0, 255, 0, HSL{120, 100, 50}},
		{0, 0, 255, HSL{240, 100, 50}},
		{128, 128, 128, HSL{0, 0, 50}},
		{102, 126, 234, HSL{229, 76, 66}},
	}
	for _, tt := range tests {
		got := RGBToHSL(tt.r, tt.g, tt.b)
		if got != tt.want {
			t.Errorf("RGBToHSL(%d,%d,%d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestRGBToHSLMatchesReference(t *testing.T) {
	gen := NewGenerator(42)
	samples := append(gen.Palette(500), "#667eea", "#ff00ff", "#00ffff", "#808000", "#010203")

	for _, hex := range samples {
		rgb, ok := ParseHex(hex)
		if !ok {
			t.Fatalf("generated invalid hex %q", hex)
		}
		got := RGBToHSL(rgb.R, rgb.G, rgb.B)

		ref, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", hex, err)
		}
		h, s, l := ref.Hsl()

		if d := hueDistance(got.H, h); d > 1 {
			t.Errorf("%s: hue %d, reference %.2f", hex, got.H, h)
		}
		if d := math.Abs(float64(got.S) - s*100); d > 1 {
			t.Errorf("%s: saturation %d, reference %.2f", hex, got.S, s*100)
		}
		if d := math.Abs(float64(got.L) - l*100); d > 1 {
			t.Errorf("%s: lightness %d, reference %.2f", hex, got.L, l*100)
		}
	}
}

func hueDistance(h int, ref float64) float64 {
	d := math.Mod(math.Abs(float64(h)-ref), 360)
	return math.Min(d, 360-d)
}

func TestRGBToHSLOutputRanges(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				got := RGBToHSL(uint8(r), uint8(g), uint8(b))
				if got.H < 0 || got.H > 360 || got.S < 0 || got.S > 100 || got.L < 0 || got.L > 100 {
					t.Fatalf("RGBToHSL(%d,%d,%d) = %+v out of range", r, g, b, got)
				}
			}
		}
	}
}

// --- Formatting ---

func TestFromHexFormatsAllFields(t *testing.T) {
	c, ok := FromHex("#667eea")
	if !ok {
		t.Fatal("FromHex(#667eea) failed")
	}
	if got := c.HexUpper(); got != "#667EEA" {
		t.Errorf("HexUpper = %q", got)
	}
	if got := c.RGB.String(); got != "rgb(102, 126, 234)" {
		t.Errorf("RGB.String = %q", got)
	}
	if got := c.HSL.String(); got != "hsl(229, 76%, 66%)" {
		t.Errorf("HSL.String = %q", got)
	}
}

func TestFromHexNormalizesCase(t *testing.T) {
	c, ok := FromHex("ABCDEF")
	if !ok {
		t.Fatal("FromHex(ABCDEF) failed")
	}
	if c.Hex != "#abcdef" {
		t.Errorf("Hex = %q, want #abcdef", c.Hex)
	}
}

// --- Adjust ---

func TestAdjustDarkens(t *testing.T) {
	got, ok := Adjust("#667eea", -20)
	if !ok {
		t.Fatal("Adjust returned ok=false")
	}
	if got != "#526ad6" {
		t.Errorf("Adjust(#667eea, -20) = %q, want #526ad6", got)
	}
	if !testHexPattern.MatchString(got) {
		t.Errorf("Adjust produced malformed hex %q", got)
	}
}

func TestAdjustClamps(t *testing.T) {
	tests := []struct {
		in    string
		delta int
		want  string
	}{
		{"#0a1400", -20, "#000000"},
		{"#f0fafe", 20, "#ffffff"},
		{"#808080", 0, "#808080"},
		{"#10ff05", -10, "#06f500"},
	}
	for _, tt := range tests {
		got, ok := Adjust(tt.in, tt.delta)
		if !ok || got != tt.want {
			t.Errorf("Adjust(%q, %d) = %q, %v; want %q", tt.in, tt.delta, got, ok, tt.want)
		}
	}
}

func TestAdjustRejectsMalformed(t *testing.T) {
	if _, ok := Adjust("nope", 10); ok {
		t.Error("Adjust(nope) ok=true")
	}
	if got := MustAdjust("nope", 10); got != "nope" {
		t.Errorf("MustAdjust(nope) = %q, want input unchanged", got)
	}
}

func TestContrast(t *testing.T) {
	if got := Contrast(RGB{255, 255, 255}); got != (RGB{}) {
		t.Errorf("Contrast(white) = %+v, want black", got)
	}
	if got := Contrast(RGB{20, 20, 60}); got != (RGB{255, 255, 255}) {
		t.Errorf("Contrast(navy) = %+v, want white", got)
	}
}

// --- Generator ---

func TestRandomProducesValidHex(t *testing.T) {
	g := NewGenerator(7)
	for i := 0; i < 1000; i++ {
		hex := g.Random()
		if !testHexPattern.MatchString(hex) {
			t.Fatalf("Random() = %q, not #rrggbb", hex)
		}
	}
}

func TestGeneratorIsDeterministicForSeed(t *testing.T) {
	a := NewGenerator(99).Palette(5)
	b := NewGenerator(99).Palette(5)
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestPaletteSize(t *testing.T) {
	g := NewGenerator(1)
	if got := len(g.Palette(0)); got != DefaultPaletteSize {
		t.Errorf("Palette(0) len = %d, want %d", got, DefaultPaletteSize)
	}
	if got := len(g.Palette(8)); got != 8 {
		t.Errorf("Palette(8) len = %d, want 8", got)
	}
}
