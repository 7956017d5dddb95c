package mood

import "sort"

// Role groups layers that share an instrument pool and velocity range
type Role string

const (
	RoleMain       Role = "main"
	RoleBackground Role = "background"
)

// RegisterMode selects how the melody moves between registers
type RegisterMode string

const (
	RegisterSegmented     RegisterMode = "segmented"
	RegisterProbabilistic RegisterMode = "probabilistic"
)

// LayerKind identifies how a track's notes are derived
type LayerKind string

const (
	LayerMelody        LayerKind = "melody"
	LayerLow           LayerKind = "low"  // octave below the melody
	LayerHigh          LayerKind = "high" // octave above the melody
	LayerHarmony       LayerKind = "harmony"
	LayerComplementary LayerKind = "complementary"
	LayerPercussion    LayerKind = "percussion"
)

// OnsetPolicy decides which notes of a layer receive the humanized leading onset
type OnsetPolicy string

const (
	OnsetFirst       OnsetPolicy = "first"
	OnsetAll         OnsetPolicy = "all"
	OnsetAllButFirst OnsetPolicy = "all-but-first"
	OnsetNone        OnsetPolicy = "none"
)

// PercussionChannel is the zero-indexed GM drum channel
const PercussionChannel uint8 = 9

// Instrument is a GM program with a display name
type Instrument struct {
	Name    string `json:"name"`
	Program uint8  `json:"program"`
}

// Range is an inclusive integer range
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Fixed reports whether the range holds a single value
func (r Range) Fixed() bool {
	return r.Min == r.Max
}

// Swing holds the alternating long/short note durations in ticks
type Swing struct {
	Long  int `json:"long"`
	Short int `json:"short"`
}

// RegisterRule configures register switching in the melody generator.
// Segmented fields apply to RegisterSegmented, the rest to RegisterProbabilistic.
type RegisterRule struct {
	Mode RegisterMode `json:"mode"`

	SegmentSize int     `json:"segmentSize,omitempty"`
	MaxInterval int     `json:"maxInterval,omitempty"` // semitones from previous note
	PassingTone float64 `json:"passingTone,omitempty"` // insertion probability

	StayProbability   float64 `json:"stayProbability,omitempty"`
	MaxRun            int     `json:"maxRun,omitempty"`
	ForceLowAfterHigh bool    `json:"forceLowAfterHigh,omitempty"`
	AvoidRepeats      bool    `json:"avoidRepeats,omitempty"`
}

// OffsetTable maps note position mod 4 to a semitone offset
type OffsetTable [4]int

// At returns the offset for position i
func (t OffsetTable) At(i int) int {
	return t[i%4]
}

// Doubling bounds the octave doubling layers
type Doubling struct {
	Floor   int `json:"floor"`
	Ceiling int `json:"ceiling"`
}

// Humanize configures timing jitter
type Humanize struct {
	Jitter int         `json:"jitter"`
	Onset  OnsetPolicy `json:"onset"`
}

// Layer is one output track of a composition
type Layer struct {
	Name    string    `json:"name"`
	Kind    LayerKind `json:"kind"`
	Channel uint8     `json:"channel"`
	Role    Role      `json:"role,omitempty"` // unused for percussion
}

// Profile fully describes a mood. Treat it as immutable once validated.
type Profile struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	TempoBPM    float64               `json:"tempo"`
	Scales      []Scale               `json:"scales"`
	Instruments map[Role][]Instrument `json:"instruments"`
	Velocity    map[Role]Range        `json:"velocity"`
	Swing       Swing                 `json:"swing"`
	Register    RegisterRule          `json:"register"`

	Harmony       OffsetTable `json:"harmony"`
	Complementary OffsetTable `json:"complementary"`
	Doubling      Doubling    `json:"doubling"`

	Percussion PercussionPattern `json:"percussion"`

	Bars        int      `json:"bars"`
	NotesPerBar int      `json:"notesPerBar"`
	Humanize    Humanize `json:"humanize"`
	Layers      []Layer  `json:"layers"`
}

// Length returns the number of notes in the principal melody
func (p *Profile) Length() int {
	return p.Bars * p.NotesPerBar
}

// Roles returns the instrument roles in a stable order
func (p *Profile) Roles() []Role {
	roles := make([]Role, 0, len(p.Instruments))
	for r := range p.Instruments {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// HasLayer reports whether any layer of the given kind is configured
func (p *Profile) HasLayer(kind LayerKind) bool {
	for _, l := range p.Layers {
		if l.Kind == kind {
			return true
		}
	}
	return false
}
