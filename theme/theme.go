package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Note   rune // ■ melodic note, colored by pitch
	Hold   rune // ─ note still sounding
	Rest   rune // · nothing sounding
	Hit    rune // ● drum hit
	Accent rune // ◉ loud drum hit
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Note:   '■',
			Hold:   '─',
			Rest:   '·',
			Hit:    '●',
			Accent: '◉',
		},
	}
}

// Default returns the theme built on the embedded palette
func Default() *Theme {
	return New(DefaultPalette())
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deep purple
	RoleMuted   = 0.2 // purple-magenta
	RoleFG      = 0.4 // pink-purple (readable)
	RoleAccent  = 0.5 // vivid magenta
	RoleActive  = 0.7 // soft red
	RoleWarning = 0.8 // orange
	RoleSuccess = 1.0 // bright yellow
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// PitchColor maps a MIDI pitch onto the palette, low notes dark and high notes bright
func (t *Theme) PitchColor(pitch int) RGB {
	const lo, hi = 36.0, 96.0
	return t.Palette.Lookup((float64(pitch) - lo) / (hi - lo))
}

// VelocityColor maps a MIDI velocity onto the palette
func (t *Theme) VelocityColor(velocity int) RGB {
	return t.Palette.Lookup(float64(velocity) / 127)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
