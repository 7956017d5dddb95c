package composer

import "moodgen/midi"

// AssembleTrack converts notes into a channel-tagged event list. A tempo meta
// event and a program change lead the track; each note then becomes a
// note-on after its onset and a note-off after its duration.
func AssembleTrack(name string, channel, program uint8, bpm float64, notes []Note) midi.Track {
	t := newTrack(name, channel, program, bpm, 2*len(notes))
	for _, n := range notes {
		t.Events = append(t.Events,
			midi.Event{
				Type:     midi.NoteOn,
				Channel:  channel,
				Note:     uint8(n.Pitch),
				Velocity: uint8(n.Velocity),
				Delta:    uint32(n.Onset),
			},
			midi.Event{
				Type:    midi.NoteOff,
				Channel: channel,
				Note:    uint8(n.Pitch),
				Delta:   uint32(n.Duration),
			},
		)
	}
	return t
}

// AssembleEvents wraps pre-timed events (percussion) with the same header
func AssembleEvents(name string, channel, program uint8, bpm float64, events []midi.Event) midi.Track {
	t := newTrack(name, channel, program, bpm, len(events))
	t.Events = append(t.Events, events...)
	return t
}

func newTrack(name string, channel, program uint8, bpm float64, capacity int) midi.Track {
	events := make([]midi.Event, 0, capacity+2)
	events = append(events,
		midi.Event{Type: midi.Tempo, Channel: channel, BPM: bpm},
		midi.Event{Type: midi.ProgramChange, Channel: channel, Program: program},
	)
	return midi.Track{
		Name:    name,
		Channel: channel,
		Program: program,
		Events:  events,
	}
}
