package mood

import "sort"

// Voice is a drum voice slot of a kit
type Voice string

const (
	VoiceKick      Voice = "kick"
	VoiceSnare     Voice = "snare"
	VoiceClosedHat Voice = "closed-hat"
	VoiceOpenHat   Voice = "open-hat"
)

// DrumKit maps voices to MIDI notes on the drum channel
type DrumKit struct {
	Name      string `json:"name"`
	Kick      uint8  `json:"kick"`
	Snare     uint8  `json:"snare"`
	ClosedHat uint8  `json:"closedHat"`
	OpenHat   uint8  `json:"openHat"`
}

// Note returns the MIDI note for a voice (0, false if unknown)
func (k DrumKit) Note(v Voice) (uint8, bool) {
	switch v {
	case VoiceKick:
		return k.Kick, true
	case VoiceSnare:
		return k.Snare, true
	case VoiceClosedHat:
		return k.ClosedHat, true
	case VoiceOpenHat:
		return k.OpenHat, true
	}
	return 0, false
}

// Kits contains the available drum kit mappings
var Kits = map[string]DrumKit{
	"gm": {
		Name:      "General MIDI",
		Kick:      36,
		Snare:     38,
		ClosedHat: 42,
		OpenHat:   46,
	},
	"rd8": {
		Name:      "Behringer RD-8",
		Kick:      36,
		Snare:     40, // RD-8 uses 40, not 38
		ClosedHat: 42,
		OpenHat:   46,
	},
	"tr8s": {
		Name:      "Roland TR-8S",
		Kick:      36,
		Snare:     38,
		ClosedHat: 42,
		OpenHat:   46,
	},
}

// DefaultKit is the default kit name
const DefaultKit = "gm"

// GetKit returns a kit by name, defaulting to GM if not found
func GetKit(name string) DrumKit {
	if kit, ok := LookupKit(name); ok {
		return kit
	}
	return Kits[DefaultKit]
}

// LookupKit returns a kit by name
func LookupKit(name string) (DrumKit, bool) {
	kit, ok := Kits[name]
	return kit, ok
}

// KitNames returns the available kit names, sorted
func KitNames() []string {
	names := make([]string, 0, len(Kits))
	for n := range Kits {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DrumHit declares one voice firing on some beats of every bar
type DrumHit struct {
	Voice       Voice   `json:"voice"`
	Beats       []int   `json:"beats"`                 // beats 0-3 of the bar
	Velocity    Range   `json:"velocity"`              // Min == Max for a fixed value
	Probability float64 `json:"probability,omitempty"` // 0 means always
	Offset      int     `json:"offset"`                // ticks before note-on
	Length      int     `json:"length"`                // ticks from note-on to note-off
}

// FiresOn reports whether the hit is declared for the given beat
func (h DrumHit) FiresOn(beat int) bool {
	for _, b := range h.Beats {
		if b == beat {
			return true
		}
	}
	return false
}

// PercussionPattern is a declarative one-bar drum pattern repeated for every bar
type PercussionPattern struct {
	KitName   string    `json:"kitName,omitempty"` // replaces Kit on Register when set
	Kit       DrumKit   `json:"kit"`
	Program   uint8     `json:"program"`
	BeatTicks int       `json:"beatTicks"`
	Hits      []DrumHit `json:"hits"`
}

// BeatsPerBar is the fixed meter of the percussion layer
const BeatsPerBar = 4
