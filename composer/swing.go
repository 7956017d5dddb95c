package composer

import "moodgen/mood"

// Note is a pitched note with humanized timing, all times in ticks
type Note struct {
	Pitch    int
	Velocity int
	Duration int
	Onset    int // delay before the note starts
}

// SwingDurations alternates long (even indices) and short (odd indices)
func SwingDurations(n int, swing mood.Swing) []int {
	out := make([]int, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = swing.Long
		} else {
			out[i] = swing.Short
		}
	}
	return out
}

// Humanize turns pitches and nominal durations into notes with a random
// velocity from vel and a jitter in [-h.Jitter, h.Jitter]. The note-off moves
// by the jitter; onsets only move for notes selected by h.Onset. Negative
// values are clamped to zero.
func Humanize(pitches, durations []int, vel mood.Range, h mood.Humanize, rng Rand) []Note {
	notes := make([]Note, len(pitches))
	for i, p := range pitches {
		velocity := between(rng, vel.Min, vel.Max)
		jitter := between(rng, -h.Jitter, h.Jitter)

		onset := 0
		if leads(h.Onset, i) {
			onset = max(jitter, 0)
		}
		notes[i] = Note{
			Pitch:    p,
			Velocity: velocity,
			Duration: max(durations[i]-jitter, 0),
			Onset:    onset,
		}
	}
	return notes
}

func leads(policy mood.OnsetPolicy, i int) bool {
	switch policy {
	case mood.OnsetAll:
		return true
	case mood.OnsetAllButFirst:
		return i > 0
	case mood.OnsetFirst:
		return i == 0
	}
	return false
}
