package mood

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = map[string]func() Profile{}
	registryMu sync.RWMutex
)

func init() {
	registry["happy"] = Happy
	registry["moody"] = Moody
	registry["energetic"] = Energetic
}

// Preset returns a validated copy of the named profile
func Preset(name string) (Profile, error) {
	registryMu.RLock()
	build, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownMood, name)
	}
	return build(), nil
}

// Names returns all registered mood names, sorted
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Register validates a custom profile and makes it available by name.
// A custom profile may replace a builtin of the same name. A set
// Percussion.KitName selects the drum kit from Kits.
func Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	stored := p.Clone()
	if name := stored.Percussion.KitName; name != "" {
		stored.Percussion.Kit = GetKit(name)
	}
	registryMu.Lock()
	registry[p.Name] = func() Profile { return stored.Clone() }
	registryMu.Unlock()
	return nil
}

// sixLayers is the layout shared by the bright presets
func sixLayers() []Layer {
	return []Layer{
		{Name: "main", Kind: LayerMelody, Channel: 0, Role: RoleMain},
		{Name: "main-low", Kind: LayerLow, Channel: 1, Role: RoleMain},
		{Name: "main-high", Kind: LayerHigh, Channel: 2, Role: RoleMain},
		{Name: "background", Kind: LayerHarmony, Channel: 3, Role: RoleBackground},
		{Name: "percussion", Kind: LayerPercussion, Channel: PercussionChannel},
		{Name: "second", Kind: LayerComplementary, Channel: 4, Role: RoleMain},
	}
}

// Happy is an upbeat jazz preset in C major
func Happy() Profile {
	return Profile{
		Name:        "happy",
		Description: "upbeat swing in C major",
		TempoBPM:    110,
		Scales:      []Scale{mustScale(60, "major")},
		Instruments: map[Role][]Instrument{
			RoleMain: {
				{Name: "bright_acoustic_piano", Program: 1},
				{Name: "electric_piano", Program: 5},
				{Name: "vibraphone", Program: 11},
				{Name: "celesta", Program: 8},
				{Name: "acoustic_guitar", Program: 24},
			},
			RoleBackground: {
				{Name: "string_ensemble", Program: 48},
				{Name: "clarinet", Program: 71},
				{Name: "flute", Program: 73},
			},
		},
		Velocity: map[Role]Range{
			RoleMain:       {Min: 100, Max: 127},
			RoleBackground: {Min: 60, Max: 80},
		},
		Swing: Swing{Long: 320, Short: 160},
		Register: RegisterRule{
			Mode:        RegisterSegmented,
			SegmentSize: 6,
			MaxInterval: 4,
			PassingTone: 0.15,
		},
		Harmony:       OffsetTable{-5, 4, 7, 4},
		Complementary: OffsetTable{5, 0, 3, 0},
		Doubling:      Doubling{Floor: 40, Ceiling: 84},
		Percussion: PercussionPattern{
			KitName:   DefaultKit,
			Kit:       GetKit(DefaultKit),
			BeatTicks: 480,
			Hits: []DrumHit{
				{Voice: VoiceKick, Beats: []int{0, 2}, Velocity: Range{80, 80}, Length: 120},
				{Voice: VoiceSnare, Beats: []int{1, 3}, Velocity: Range{60, 90}, Length: 120},
				{Voice: VoiceClosedHat, Beats: []int{0, 1, 2}, Velocity: Range{40, 40}, Offset: 60, Length: 60},
				{Voice: VoiceOpenHat, Beats: []int{0, 1, 2}, Velocity: Range{50, 50}, Probability: 0.15, Length: 120},
			},
		},
		Bars:        16,
		NotesPerBar: 8,
		Humanize:    Humanize{Jitter: 15, Onset: OnsetFirst},
		Layers:      sixLayers(),
	}
}

// Moody is a slow jazz preset in C minor pentatonic
func Moody() Profile {
	return Profile{
		Name:        "moody",
		Description: "slow jazz in C minor pentatonic",
		TempoBPM:    60,
		Scales:      []Scale{mustScale(60, "minor-pentatonic")},
		Instruments: map[Role][]Instrument{
			RoleMain: {
				{Name: "piano", Program: 0},
				{Name: "harpsichord", Program: 6},
				{Name: "celesta", Program: 8},
			},
			RoleBackground: {
				{Name: "violin", Program: 40},
				{Name: "cello", Program: 42},
				{Name: "viola", Program: 41},
			},
		},
		Velocity: map[Role]Range{
			RoleMain:       {Min: 80, Max: 110},
			RoleBackground: {Min: 40, Max: 60},
		},
		Swing: Swing{Long: 300, Short: 180},
		Register: RegisterRule{
			Mode:              RegisterProbabilistic,
			StayProbability:   0.5,
			MaxRun:            2,
			ForceLowAfterHigh: true,
			AvoidRepeats:      true,
		},
		Harmony:  OffsetTable{-4, -4, -4, -4},
		Doubling: Doubling{Floor: 40, Ceiling: 84},
		Percussion: PercussionPattern{
			KitName:   DefaultKit,
			Kit:       GetKit(DefaultKit),
			BeatTicks: 480,
			Hits: []DrumHit{
				{Voice: VoiceKick, Beats: []int{0, 2}, Velocity: Range{50, 50}, Length: 120},
				{Voice: VoiceSnare, Beats: []int{1, 3}, Velocity: Range{50, 50}, Length: 120},
				{Voice: VoiceClosedHat, Beats: []int{0, 1, 2, 3}, Velocity: Range{30, 30}, Offset: 60, Length: 60},
			},
		},
		Bars:        16,
		NotesPerBar: 8,
		Humanize:    Humanize{Jitter: 10, Onset: OnsetFirst},
		Layers: []Layer{
			{Name: "main", Kind: LayerMelody, Channel: 0, Role: RoleMain},
			{Name: "background", Kind: LayerHarmony, Channel: 1, Role: RoleBackground},
			{Name: "percussion", Kind: LayerPercussion, Channel: PercussionChannel},
		},
	}
}

// Energetic is a driving rock preset in C dorian
func Energetic() Profile {
	return Profile{
		Name:        "energetic",
		Description: "driving funk-rock in C dorian",
		TempoBPM:    120,
		Scales:      []Scale{mustScale(60, "dorian")},
		Instruments: map[Role][]Instrument{
			RoleMain: {
				{Name: "distortion_guitar", Program: 30},
				{Name: "overdriven_guitar", Program: 29},
				{Name: "rock_organ", Program: 19},
				{Name: "synth_bass", Program: 38},
			},
			RoleBackground: {
				{Name: "lead_2_sawtooth", Program: 81},
				{Name: "lead_1_square", Program: 80},
				{Name: "synth_brass", Program: 63},
			},
		},
		Velocity: map[Role]Range{
			RoleMain:       {Min: 110, Max: 127},
			RoleBackground: {Min: 80, Max: 100},
		},
		Swing: Swing{Long: 240, Short: 120},
		Register: RegisterRule{
			Mode:        RegisterSegmented,
			SegmentSize: 6,
			MaxInterval: 7,
			PassingTone: 0.2,
		},
		Harmony:       OffsetTable{-5, 4, 7, 4},
		Complementary: OffsetTable{5, 0, 3, 0},
		Doubling:      Doubling{Floor: 40, Ceiling: 84},
		Percussion: PercussionPattern{
			KitName:   DefaultKit,
			Kit:       GetKit(DefaultKit),
			BeatTicks: 480,
			Hits: []DrumHit{
				{Voice: VoiceKick, Beats: []int{0, 2}, Velocity: Range{90, 90}, Length: 100},
				{Voice: VoiceSnare, Beats: []int{1, 3}, Velocity: Range{90, 110}, Length: 100},
				{Voice: VoiceClosedHat, Beats: []int{0, 1, 2}, Velocity: Range{60, 60}, Offset: 30, Length: 30},
				{Voice: VoiceOpenHat, Beats: []int{0, 1, 2}, Velocity: Range{60, 60}, Probability: 0.2, Length: 100},
			},
		},
		Bars:        16,
		NotesPerBar: 8,
		Humanize:    Humanize{Jitter: 10, Onset: OnsetFirst},
		Layers:      sixLayers(),
	}
}

// Clone returns a deep copy so callers can't mutate shared slices or maps
func (p Profile) Clone() Profile {
	c := p
	c.Scales = make([]Scale, len(p.Scales))
	for i, s := range p.Scales {
		c.Scales[i] = Scale{Name: s.Name, Pitches: append([]int(nil), s.Pitches...)}
	}
	c.Instruments = make(map[Role][]Instrument, len(p.Instruments))
	for r, pool := range p.Instruments {
		c.Instruments[r] = append([]Instrument(nil), pool...)
	}
	c.Velocity = make(map[Role]Range, len(p.Velocity))
	for r, v := range p.Velocity {
		c.Velocity[r] = v
	}
	c.Percussion.Hits = make([]DrumHit, len(p.Percussion.Hits))
	for i, h := range p.Percussion.Hits {
		h.Beats = append([]int(nil), h.Beats...)
		c.Percussion.Hits[i] = h
	}
	c.Layers = append([]Layer(nil), p.Layers...)
	return c
}
