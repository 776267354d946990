package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestVisibleLenIgnoresEscapes(t *testing.T) {
	s := "\x1b[31mhello\x1b[0m"
	if got := VisibleLen(s); got != 5 {
		t.Errorf("VisibleLen = %d, want 5", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q, want abc", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("Truncate(0) = %q, want empty", got)
	}
}

func TestPadRightAndCenter(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q", got)
	}
	if got := PadCenter("abcdef", 3); got != "abcdef" {
		t.Errorf("PadCenter wide = %q", got)
	}
}

func TestFitLine(t *testing.T) {
	if got := FitLine("hello world", 6); VisibleLen(got) != 6 || !strings.HasSuffix(got, "…") {
		t.Errorf("FitLine long = %q", got)
	}
	if got := FitLine("hi", 4); got != "hi  " {
		t.Errorf("FitLine short = %q", got)
	}
}

func TestFitBlockDimensions(t *testing.T) {
	out := FitBlock("one\ntwo\nthree\nfour", 4, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		if VisibleLen(l) != 4 {
			t.Errorf("line %d width = %d, want 4", i, VisibleLen(l))
		}
	}
	if FitBlock("x", 0, 3) != "" {
		t.Error("zero width should be empty")
	}
}

func TestSwatchSize(t *testing.T) {
	out := Swatch("#667eea", 8, 3, "#667EEA")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	for i, l := range lines {
		if w := VisibleLen(l); w != 8 {
			t.Errorf("row %d width = %d, want 8", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(lines[1]), "#667EEA") {
		t.Errorf("middle row missing label: %q", ansi.Strip(lines[1]))
	}
}

func TestSwatchMalformedKeepsSize(t *testing.T) {
	out := Swatch("#zzz", 5, 2, "")
	if out != "     \n     " {
		t.Errorf("Swatch malformed = %q", out)
	}
}

func TestChipKeepsLabel(t *testing.T) {
	if got := ansi.Strip(Chip("#1e3a5f", "Kind of Blue")); !strings.Contains(got, "Kind of Blue") {
		t.Errorf("Chip = %q", got)
	}
	if got := Chip("bogus", "x"); got != "x" {
		t.Errorf("Chip malformed = %q", got)
	}
}

func TestDiscFrameAdvancesPerSecond(t *testing.T) {
	seen := map[string]bool{}
	for s := 0; s < 4; s++ {
		seen[DiscFrame(s)] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct frames, got %d", len(seen))
	}
	if DiscFrame(0) != DiscFrame(4) {
		t.Error("frames should cycle every 4 seconds")
	}
	if DiscFrame(-3) != DiscFrame(0) {
		t.Error("negative elapsed should clamp to frame 0")
	}
}

func TestDiscContainsFrame(t *testing.T) {
	got := ansi.Strip(Disc(1, "#ff0000", "#00ff00"))
	if got != "("+DiscFrame(1)+")" {
		t.Errorf("Disc = %q", got)
	}
}
