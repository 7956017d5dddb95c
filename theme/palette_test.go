package theme

import (
	"strings"
	"testing"
)

func TestParseGPL(t *testing.T) {
	src := `GIMP Palette
Name: test
Columns: 2
#
  0   0   0	black
255 255 255	white
`
	p, err := ParseGPL(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "test" || len(p.Colors) != 2 {
		t.Fatalf("got %q with %d colors", p.Name, len(p.Colors))
	}

	t.Run("Lookup", func(t *testing.T) {
		if got := p.Lookup(-1); got != (RGB{0, 0, 0}) {
			t.Errorf("below range = %v", got)
		}
		if got := p.Lookup(2); got != (RGB{255, 255, 255}) {
			t.Errorf("above range = %v", got)
		}
		if got := p.Lookup(0.5); got != (RGB{127, 127, 127}) {
			t.Errorf("midpoint = %v", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := ParseGPL(strings.NewReader("GIMP Palette\nName: none\n")); err == nil {
			t.Error("palette without colors should fail")
		}
	})

	t.Run("SingleColor", func(t *testing.T) {
		one, err := ParseGPL(strings.NewReader("10 20 30\n"))
		if err != nil {
			t.Fatal(err)
		}
		if got := one.Lookup(0.7); got != (RGB{10, 20, 30}) {
			t.Errorf("got %v", got)
		}
	})
}

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if len(th.Palette.Colors) != 9 {
		t.Errorf("embedded palette has %d colors, want 9", len(th.Palette.Colors))
	}
	if th.PitchColor(0) != th.Palette.Colors[0] {
		t.Error("low pitches should clamp to the first color")
	}
	if th.PitchColor(127) != th.Palette.Colors[8] {
		t.Error("high pitches should clamp to the last color")
	}
	if th.VelocityColor(127) != th.Palette.Colors[8] {
		t.Error("full velocity should map to the last color")
	}
	if got := string(th.Accent()); !strings.HasPrefix(got, "#") || len(got) != 7 {
		t.Errorf("accent = %q, want a hex color", got)
	}
}
