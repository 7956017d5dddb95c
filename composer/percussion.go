package composer

import (
	"moodgen/midi"
	"moodgen/mood"
)

// GeneratePercussion renders the pattern for the given number of 4/4 bars on
// the drum channel. Beat slots are aligned to pat.BeatTicks; within a slot the
// hits fire in declaration order, each as a note-on/note-off pair.
func GeneratePercussion(pat mood.PercussionPattern, bars int, rng Rand) []midi.Event {
	var events []midi.Event
	var cursor int // ticks consumed so far

	for bar := 0; bar < bars; bar++ {
		for beat := 0; beat < mood.BeatsPerBar; beat++ {
			start := (bar*mood.BeatsPerBar + beat) * pat.BeatTicks
			pending := max(start-cursor, 0)

			for _, hit := range pat.Hits {
				if !hit.FiresOn(beat) {
					continue
				}
				if hit.Probability > 0 && hit.Probability < 1 && !chance(rng, hit.Probability) {
					continue
				}
				note, ok := pat.Kit.Note(hit.Voice)
				if !ok {
					continue
				}
				velocity := hit.Velocity.Min
				if !hit.Velocity.Fixed() {
					velocity = between(rng, hit.Velocity.Min, hit.Velocity.Max)
				}

				on := pending + hit.Offset
				events = append(events,
					midi.Event{
						Type:     midi.NoteOn,
						Channel:  mood.PercussionChannel,
						Note:     note,
						Velocity: uint8(velocity),
						Delta:    uint32(on),
					},
					midi.Event{
						Type:    midi.NoteOff,
						Channel: mood.PercussionChannel,
						Note:    note,
						Delta:   uint32(hit.Length),
					},
				)
				cursor += on + hit.Length
				pending = 0
			}
		}
	}
	return events
}
