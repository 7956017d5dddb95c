package composer

import (
	"testing"

	"moodgen/midi"
)

func TestAssembleTrack(t *testing.T) {
	notes := []Note{
		{Pitch: 60, Velocity: 100, Duration: 320, Onset: 7},
		{Pitch: 62, Velocity: 110, Duration: 160},
	}
	tr := AssembleTrack("main", 2, 5, 110, notes)

	if tr.Name != "main" || tr.Channel != 2 || tr.Program != 5 {
		t.Errorf("track header = %q ch%d prog%d", tr.Name, tr.Channel, tr.Program)
	}
	if len(tr.Events) != 2+2*len(notes) {
		t.Fatalf("got %d events, want %d", len(tr.Events), 2+2*len(notes))
	}

	if e := tr.Events[0]; e.Type != midi.Tempo || e.BPM != 110 || e.Delta != 0 {
		t.Errorf("first event = %+v, want tempo 110", e)
	}
	if e := tr.Events[1]; e.Type != midi.ProgramChange || e.Program != 5 || e.Channel != 2 {
		t.Errorf("second event = %+v, want program change 5", e)
	}

	on := tr.Events[2]
	if on.Type != midi.NoteOn || on.Note != 60 || on.Velocity != 100 || on.Delta != 7 {
		t.Errorf("note-on = %+v", on)
	}
	off := tr.Events[3]
	if off.Type != midi.NoteOff || off.Note != 60 || off.Delta != 320 {
		t.Errorf("note-off = %+v", off)
	}

	if got := tr.Ticks(); got != 7+320+160 {
		t.Errorf("ticks = %d, want %d", got, 7+320+160)
	}
	if !tr.Balanced() {
		t.Error("track should be balanced")
	}
}

func TestAssembleTrackEmpty(t *testing.T) {
	tr := AssembleTrack("main", 0, 0, 60, nil)
	if len(tr.Events) != 2 {
		t.Errorf("got %d events, want tempo and program change only", len(tr.Events))
	}
	if tr.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", tr.Ticks())
	}
}

func TestAssembleEvents(t *testing.T) {
	events := []midi.Event{
		{Type: midi.NoteOn, Channel: 9, Note: 36, Velocity: 80},
		{Type: midi.NoteOff, Channel: 9, Note: 36, Delta: 120},
	}
	tr := AssembleEvents("percussion", 9, 0, 120, events)
	if len(tr.Events) != 4 {
		t.Fatalf("got %d events, want 4", len(tr.Events))
	}
	if tr.Events[1].Type != midi.ProgramChange || tr.Events[1].Channel != 9 {
		t.Errorf("second event = %+v", tr.Events[1])
	}
	if len(tr.Notes()) != 1 {
		t.Errorf("got %d notes, want 1", len(tr.Notes()))
	}
}
