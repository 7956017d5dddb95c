package mood

import (
	"errors"
	"fmt"
)

// Sentinel errors for profile lookup and validation
var (
	ErrUnknownMood    = errors.New("unknown mood")
	ErrInvalidProfile = errors.New("invalid mood profile")
)

// ValidationError describes the first invalid field of a profile
type ValidationError struct {
	Profile string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mood %q: %s: %s", e.Profile, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProfile
}

// Validate checks every option of the profile. Generation assumes a valid profile
// and has no error path of its own.
func (p *Profile) Validate() error {
	fail := func(field, format string, args ...any) error {
		return &ValidationError{Profile: p.Name, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	if p.Name == "" {
		return fail("name", "must not be empty")
	}
	if p.TempoBPM <= 0 {
		return fail("tempo", "must be positive, got %v", p.TempoBPM)
	}

	if len(p.Scales) == 0 {
		return fail("scales", "at least one scale is required")
	}
	for i, s := range p.Scales {
		if len(s.Pitches) == 0 {
			return fail(fmt.Sprintf("scales[%d]", i), "empty scale")
		}
		for _, pitch := range s.Pitches {
			// low and high registers sit an octave either side
			if pitch < 12 || pitch > 115 {
				return fail(fmt.Sprintf("scales[%d]", i), "pitch %d leaves MIDI range once transposed an octave", pitch)
			}
		}
	}

	if p.Bars < 0 || p.NotesPerBar < 0 {
		return fail("bars", "bar count and notes per bar must not be negative")
	}
	if p.Swing.Long < 0 || p.Swing.Short < 0 {
		return fail("swing", "durations must not be negative")
	}
	if p.Humanize.Jitter < 0 {
		return fail("humanize.jitter", "must not be negative")
	}
	switch p.Humanize.Onset {
	case OnsetFirst, OnsetAll, OnsetAllButFirst, OnsetNone:
	default:
		return fail("humanize.onset", "unknown policy %q", p.Humanize.Onset)
	}

	if err := p.validateRegister(fail); err != nil {
		return err
	}

	if p.Doubling.Floor < 0 || p.Doubling.Ceiling > 127 || p.Doubling.Floor > p.Doubling.Ceiling {
		return fail("doubling", "bounds %d..%d outside 0..127", p.Doubling.Floor, p.Doubling.Ceiling)
	}

	if len(p.Layers) == 0 {
		return fail("layers", "at least one layer is required")
	}
	for i, l := range p.Layers {
		field := fmt.Sprintf("layers[%d]", i)
		if l.Channel > 15 {
			return fail(field, "channel %d out of range", l.Channel)
		}
		if l.Kind == LayerPercussion {
			if l.Channel != PercussionChannel {
				return fail(field, "percussion must use channel %d", PercussionChannel)
			}
			continue
		}
		switch l.Kind {
		case LayerMelody, LayerLow, LayerHigh, LayerHarmony, LayerComplementary:
		default:
			return fail(field, "unknown kind %q", l.Kind)
		}
		if l.Channel == PercussionChannel {
			return fail(field, "channel %d is reserved for percussion", PercussionChannel)
		}
		if len(p.Instruments[l.Role]) == 0 {
			return fail(field, "empty instrument pool for role %q", l.Role)
		}
		r, ok := p.Velocity[l.Role]
		if !ok {
			return fail(field, "no velocity range for role %q", l.Role)
		}
		if r.Min < 0 || r.Max > 127 || r.Min > r.Max {
			return fail(field, "velocity range %d..%d outside 0..127", r.Min, r.Max)
		}
	}
	for _, role := range p.Roles() {
		pool := p.Instruments[role]
		if len(pool) == 0 {
			return fail("instruments", "empty instrument pool for role %q", role)
		}
		for _, inst := range pool {
			if inst.Program > 127 {
				return fail("instruments", "program %d for role %q out of range", inst.Program, role)
			}
		}
	}

	if p.HasLayer(LayerPercussion) {
		return p.validatePercussion(fail)
	}
	return nil
}

func (p *Profile) validateRegister(fail func(field, format string, args ...any) error) error {
	r := p.Register
	if r.PassingTone < 0 || r.PassingTone > 1 {
		return fail("register.passingTone", "probability %v outside 0..1", r.PassingTone)
	}
	switch r.Mode {
	case RegisterSegmented:
		if r.SegmentSize < 1 {
			return fail("register.segmentSize", "must be at least 1")
		}
		if r.MaxInterval < 0 {
			return fail("register.maxInterval", "must not be negative")
		}
	case RegisterProbabilistic:
		if r.StayProbability < 0 || r.StayProbability > 1 {
			return fail("register.stayProbability", "probability %v outside 0..1", r.StayProbability)
		}
		if r.MaxRun < 1 {
			return fail("register.maxRun", "must be at least 1")
		}
		if r.ForceLowAfterHigh && r.MaxRun < 2 {
			return fail("register.maxRun", "forced low notes need a run of at least 2")
		}
		if r.PassingTone > 0 {
			return fail("register.passingTone", "passing tones need segmented mode")
		}
	default:
		return fail("register.mode", "unknown mode %q", r.Mode)
	}
	return nil
}

func (p *Profile) validatePercussion(fail func(field, format string, args ...any) error) error {
	pat := p.Percussion
	if pat.BeatTicks <= 0 {
		return fail("percussion.beatTicks", "must be positive, got %d", pat.BeatTicks)
	}
	if pat.KitName != "" {
		if _, ok := LookupKit(pat.KitName); !ok {
			return fail("percussion.kitName", "unknown kit %q", pat.KitName)
		}
	}
	if pat.Program > 127 {
		return fail("percussion.program", "program %d out of range", pat.Program)
	}
	for i, h := range pat.Hits {
		field := fmt.Sprintf("percussion.hits[%d]", i)
		note, ok := pat.Kit.Note(h.Voice)
		if !ok {
			return fail(field, "unknown voice %q", h.Voice)
		}
		if note > 127 {
			return fail(field, "note %d out of range", note)
		}
		for _, b := range h.Beats {
			if b < 0 || b >= BeatsPerBar {
				return fail(field, "beat %d outside the bar", b)
			}
		}
		if h.Velocity.Min < 0 || h.Velocity.Max > 127 || h.Velocity.Min > h.Velocity.Max {
			return fail(field, "velocity range %d..%d outside 0..127", h.Velocity.Min, h.Velocity.Max)
		}
		if h.Probability < 0 || h.Probability > 1 {
			return fail(field, "probability %v outside 0..1", h.Probability)
		}
		if h.Offset < 0 || h.Length < 0 {
			return fail(field, "offset and length must not be negative")
		}
	}
	return nil
}
