package composer

import (
	"fmt"
	"io"

	"moodgen/debug"
	"moodgen/midi"
	"moodgen/mood"
)

// Composition is a finished multi-track piece. It is built once per run and
// not modified afterwards.
type Composition struct {
	Mood         string
	Seed         int64
	TempoBPM     float64
	TicksPerBeat int
	Scale        mood.Scale
	Instruments  map[mood.Role]mood.Instrument
	Melody       Melody
	Tracks       []midi.Track
}

// Compose runs every generator for the profile. The profile must have passed
// Validate; the result depends only on the profile and rng.
func Compose(p *mood.Profile, rng Rand) *Composition {
	c := &Composition{
		Mood:         p.Name,
		TempoBPM:     p.TempoBPM,
		TicksPerBeat: midi.TicksPerBeat,
		Instruments:  make(map[mood.Role]mood.Instrument, len(p.Instruments)),
	}

	for _, role := range p.Roles() {
		inst := choice(rng, p.Instruments[role])
		c.Instruments[role] = inst
		debug.Log("compose", "%s %s instrument: %s (program %d)", p.Name, role, inst.Name, inst.Program)
	}

	c.Scale = p.Scales[0]
	if len(p.Scales) > 1 {
		c.Scale = choice(rng, p.Scales)
	}
	debug.Log("compose", "%s scale: %s", p.Name, c.Scale.Name)

	set := NewRegisterSet(c.Scale.Pitches)
	c.Melody = GenerateMelody(p.Register, set, p.Length(), rng)

	for _, layer := range p.Layers {
		if layer.Kind == mood.LayerPercussion {
			events := GeneratePercussion(p.Percussion, p.Bars, rng)
			t := AssembleEvents(layer.Name, layer.Channel, p.Percussion.Program, p.TempoBPM, events)
			t.Instrument = p.Percussion.Kit.Name
			c.Tracks = append(c.Tracks, t)
			continue
		}

		pitches := layerPitches(p, layer.Kind, c.Melody.Pitches, set)
		durations := SwingDurations(len(pitches), p.Swing)
		notes := Humanize(pitches, durations, p.Velocity[layer.Role], p.Humanize, rng)

		inst := c.Instruments[layer.Role]
		t := AssembleTrack(layer.Name, layer.Channel, inst.Program, p.TempoBPM, notes)
		t.Instrument = inst.Name
		c.Tracks = append(c.Tracks, t)
	}

	debug.Log("compose", "%s: %d notes, %d tracks", p.Name, c.Melody.Len(), len(c.Tracks))
	return c
}

// ComposeSeed composes with a fresh source seeded with seed
func ComposeSeed(p *mood.Profile, seed int64) *Composition {
	c := Compose(p, NewRand(seed))
	c.Seed = seed
	return c
}

func layerPitches(p *mood.Profile, kind mood.LayerKind, melody []int, set *RegisterSet) []int {
	switch kind {
	case mood.LayerLow:
		return DoubleOctave(melody, -12, p.Doubling.Floor, set)
	case mood.LayerHigh:
		return DoubleOctave(melody, 12, p.Doubling.Ceiling, set)
	case mood.LayerHarmony:
		return Harmonize(melody, p.Harmony, set)
	case mood.LayerComplementary:
		return Harmonize(melody, p.Complementary, set)
	}
	return append([]int(nil), melody...)
}

// Track returns the track with the given layer name
func (c *Composition) Track(name string) (*midi.Track, bool) {
	for i := range c.Tracks {
		if c.Tracks[i].Name == name {
			return &c.Tracks[i], true
		}
	}
	return nil, false
}

// Filename is the default output name, e.g. happy_42.mid
func (c *Composition) Filename() string {
	return fmt.Sprintf("%s_%d.mid", c.Mood, c.Seed)
}

// WriteSMF serializes the composition as a Standard MIDI File
func (c *Composition) WriteSMF(w io.Writer) error {
	return midi.WriteSMF(w, uint16(c.TicksPerBeat), c.Tracks)
}
