package mood

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		field  string
	}{
		{"EmptyName", func(p *Profile) { p.Name = "" }, "name"},
		{"ZeroTempo", func(p *Profile) { p.TempoBPM = 0 }, "tempo"},
		{"NoScales", func(p *Profile) { p.Scales = nil }, "scales"},
		{"ScaleTooLow", func(p *Profile) { p.Scales = []Scale{{Name: "x", Pitches: []int{5, 7}}} }, "scales[0]"},
		{"NegativeBars", func(p *Profile) { p.Bars = -1 }, "bars"},
		{"NegativeSwing", func(p *Profile) { p.Swing.Short = -1 }, "swing"},
		{"NegativeJitter", func(p *Profile) { p.Humanize.Jitter = -3 }, "humanize.jitter"},
		{"UnknownOnset", func(p *Profile) { p.Humanize.Onset = "sometimes" }, "humanize.onset"},
		{"UnknownMode", func(p *Profile) { p.Register.Mode = "random" }, "register.mode"},
		{"ZeroSegment", func(p *Profile) { p.Register.SegmentSize = 0 }, "register.segmentSize"},
		{"PassingToneRange", func(p *Profile) { p.Register.PassingTone = 1.5 }, "register.passingTone"},
		{"DoublingBounds", func(p *Profile) { p.Doubling = Doubling{Floor: 90, Ceiling: 80} }, "doubling"},
		{"NoLayers", func(p *Profile) { p.Layers = nil }, "layers"},
		{"ChannelRange", func(p *Profile) { p.Layers[0].Channel = 16 }, "layers[0]"},
		{"PercussionChannel", func(p *Profile) { p.Layers[4].Channel = 3 }, "layers[4]"},
		{"ReservedChannel", func(p *Profile) { p.Layers[0].Channel = 9 }, "layers[0]"},
		{"UnknownKind", func(p *Profile) { p.Layers[0].Kind = "counterpoint" }, "layers[0]"},
		{"EmptyPool", func(p *Profile) { p.Instruments[RoleBackground] = nil }, "layers[3]"},
		{"MissingVelocity", func(p *Profile) { delete(p.Velocity, RoleMain) }, "layers[0]"},
		{"VelocityRange", func(p *Profile) { p.Velocity[RoleMain] = Range{Min: 100, Max: 140} }, "layers[0]"},
		{"ProgramRange", func(p *Profile) { p.Instruments[RoleMain][0].Program = 128 }, "instruments"},
		{"HitBeat", func(p *Profile) { p.Percussion.Hits[0].Beats = []int{4} }, "percussion.hits[0]"},
		{"HitVoice", func(p *Profile) { p.Percussion.Hits[1].Voice = "cowbell" }, "percussion.hits[1]"},
		{"HitProbability", func(p *Profile) { p.Percussion.Hits[3].Probability = 2 }, "percussion.hits[3]"},
		{"HitLength", func(p *Profile) { p.Percussion.Hits[2].Length = -1 }, "percussion.hits[2]"},
		{"UnusedEmptyPool", func(p *Profile) { p.Instruments["pad"] = nil }, "instruments"},
		{"ZeroBeatTicks", func(p *Profile) { p.Percussion.BeatTicks = 0 }, "percussion.beatTicks"},
		{"UnknownKit", func(p *Profile) { p.Percussion.KitName = "909" }, "percussion.kitName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Happy()
			tt.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("got %v, want ErrInvalidProfile", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %T, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q (%v)", verr.Field, tt.field, err)
			}
		})
	}
}

func TestValidateProbabilistic(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *RegisterRule)
		field  string
	}{
		{"StayRange", func(r *RegisterRule) { r.StayProbability = -0.1 }, "register.stayProbability"},
		{"ZeroRun", func(r *RegisterRule) { r.MaxRun = 0 }, "register.maxRun"},
		{"ForcedLowNeedsRun", func(r *RegisterRule) { r.MaxRun = 1 }, "register.maxRun"},
		{"PassingTone", func(r *RegisterRule) { r.PassingTone = 0.1 }, "register.passingTone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Moody()
			tt.mutate(&p.Register)
			var verr *ValidationError
			if err := p.Validate(); !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("got %v, want error on %s", err, tt.field)
			}
		})
	}

	p := Moody()
	p.Register.ForceLowAfterHigh = false
	p.Register.MaxRun = 1
	if err := p.Validate(); err != nil {
		t.Errorf("a run of 1 without forced lows is valid: %v", err)
	}
}

func TestValidateZeroBars(t *testing.T) {
	p := Energetic()
	p.Bars = 0
	if err := p.Validate(); err != nil {
		t.Errorf("zero bars should be valid: %v", err)
	}
}
