package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Event types. Channel messages use their status nibble, Tempo is a meta event.
const (
	NoteOn        uint8 = 0x90
	NoteOff       uint8 = 0x80
	ProgramChange uint8 = 0xC0
	Tempo         uint8 = 0xFF
)

// TicksPerBeat is the time resolution of every composition
const TicksPerBeat = 480

// Event is one timed event of a track
type Event struct {
	Type     uint8   // NoteOn, NoteOff, ProgramChange, Tempo
	Channel  uint8   // 0-15
	Note     uint8   // NoteOn/NoteOff
	Velocity uint8   // NoteOn/NoteOff (always 0 for NoteOff)
	Program  uint8   // ProgramChange
	BPM      float64 // Tempo
	Delta    uint32  // ticks since the previous event in the track
}

// Message converts the event to its wire form
func (e Event) Message() []byte {
	switch e.Type {
	case NoteOn:
		return gomidi.NoteOn(e.Channel, e.Note, e.Velocity)
	case NoteOff:
		return gomidi.NoteOff(e.Channel, e.Note)
	case ProgramChange:
		return gomidi.ProgramChange(e.Channel, e.Program)
	case Tempo:
		return smf.MetaTempo(e.BPM)
	}
	return nil
}

// Track is an ordered list of events on one channel
type Track struct {
	Name       string
	Channel    uint8
	Program    uint8
	Instrument string
	Events     []Event
}

// Ticks returns the total elapsed ticks of the track
func (t *Track) Ticks() int64 {
	var total int64
	for _, e := range t.Events {
		total += int64(e.Delta)
	}
	return total
}

// Notes returns the note-on events in order
func (t *Track) Notes() []Event {
	var notes []Event
	for _, e := range t.Events {
		if e.Type == NoteOn {
			notes = append(notes, e)
		}
	}
	return notes
}

// Balanced reports whether every note-on is closed by a later note-off
// for the same key on the same channel
func (t *Track) Balanced() bool {
	open := make(map[[2]uint8]int)
	for _, e := range t.Events {
		key := [2]uint8{e.Channel, e.Note}
		switch e.Type {
		case NoteOn:
			open[key]++
		case NoteOff:
			if open[key] == 0 {
				return false
			}
			open[key]--
		}
	}
	for _, n := range open {
		if n != 0 {
			return false
		}
	}
	return true
}
