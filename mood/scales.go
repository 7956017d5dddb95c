package mood

import "fmt"

// Scale is one octave of pitches, already rooted (e.g. 60..72 for C)
type Scale struct {
	Name    string `json:"name"`
	Pitches []int  `json:"pitches"`
}

// Scale definitions - intervals from root (semitones)
var intervals = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11, 12},
	"minor":            {0, 2, 3, 5, 7, 8, 10, 12},
	"minor-pentatonic": {0, 3, 5, 7, 10, 12},
	"pentatonic":       {0, 2, 4, 7, 9, 12},
	"dorian":           {0, 2, 3, 5, 7, 9, 10, 12},
	"phrygian":         {0, 1, 3, 5, 7, 8, 10, 12},
	"lydian":           {0, 2, 4, 6, 7, 9, 11, 12},
	"mixolydian":       {0, 2, 4, 5, 7, 9, 10, 12},
	"harmonic-minor":   {0, 2, 3, 5, 7, 8, 11, 12},
	"blues":            {0, 3, 5, 6, 7, 10, 12},
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NewScale builds a scale from a named mode rooted at the given MIDI pitch
func NewScale(root int, mode string) (Scale, error) {
	steps, ok := intervals[mode]
	if !ok {
		return Scale{}, fmt.Errorf("unknown mode %q", mode)
	}
	pitches := make([]int, len(steps))
	for i, s := range steps {
		pitches[i] = root + s
	}
	return Scale{
		Name:    fmt.Sprintf("%s %s", noteNames[root%12], mode),
		Pitches: pitches,
	}, nil
}

func mustScale(root int, mode string) Scale {
	s, err := NewScale(root, mode)
	if err != nil {
		panic(err)
	}
	return s
}

// PitchName returns the note name with octave, e.g. 60 -> C4
func PitchName(pitch int) string {
	if pitch < 0 {
		return fmt.Sprintf("?%d", pitch)
	}
	return fmt.Sprintf("%s%d", noteNames[pitch%12], pitch/12-1)
}
