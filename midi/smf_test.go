package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func testTracks() []Track {
	return []Track{
		{
			Name:    "main",
			Channel: 0,
			Program: 5,
			Events: []Event{
				{Type: Tempo, Channel: 0, BPM: 110},
				{Type: ProgramChange, Channel: 0, Program: 5},
				{Type: NoteOn, Channel: 0, Note: 60, Velocity: 100},
				{Type: NoteOff, Channel: 0, Note: 60, Delta: 320},
				{Type: NoteOn, Channel: 0, Note: 62, Velocity: 110, Delta: 5},
				{Type: NoteOff, Channel: 0, Note: 62, Delta: 160},
			},
		},
		{
			Name:    "percussion",
			Channel: 9,
			Events: []Event{
				{Type: Tempo, Channel: 9, BPM: 110},
				{Type: ProgramChange, Channel: 9},
				{Type: NoteOn, Channel: 9, Note: 36, Velocity: 80},
				{Type: NoteOff, Channel: 9, Note: 36, Delta: 120},
			},
		},
	}
}

func TestWriteSMFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSMF(&buf, TicksPerBeat, testTracks()); err != nil {
		t.Fatal(err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(s.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(s.Tracks))
	}
	if s.TimeFormat != smf.MetricTicks(TicksPerBeat) {
		t.Errorf("time format = %v", s.TimeFormat)
	}

	wantNotes := [][]uint8{{60, 62}, {36}}
	for i, tr := range s.Tracks {
		var keys []uint8
		var ticks uint32
		for _, ev := range tr {
			ticks += ev.Delta
			var ch, key, vel uint8
			if gomidi.Message(ev.Message).GetNoteOn(&ch, &key, &vel) {
				keys = append(keys, key)
			}
		}
		if !bytes.Equal(keys, wantNotes[i]) {
			t.Errorf("track %d notes = %v, want %v", i, keys, wantNotes[i])
		}
		if want := uint32(testTracks()[i].Ticks()); ticks != want {
			t.Errorf("track %d spans %d ticks, want %d", i, ticks, want)
		}
	}
}

func TestWriteSMFUnsupportedEvent(t *testing.T) {
	tracks := []Track{{Name: "bad", Events: []Event{{Type: 0x42}}}}
	if err := WriteSMF(&bytes.Buffer{}, TicksPerBeat, tracks); err == nil {
		t.Error("expected an error for an unknown event type")
	}
}

func TestSaveSMF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "happy_1.mid")
	if err := SaveSMF(path, TicksPerBeat, testTracks()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Errorf("file does not start with an SMF header: % X", data[:min(len(data), 8)])
	}
}
