package midi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gitlab.com/gomidi/midi/v2/smf"
)

// NewSMF builds a format 1 Standard MIDI File from the tracks
func NewSMF(ticksPerBeat uint16, tracks []Track) (*smf.SMF, error) {
	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)

	for _, t := range tracks {
		var tr smf.Track
		if t.Name != "" {
			tr.Add(0, smf.MetaTrackSequenceName(t.Name))
		}
		for _, e := range t.Events {
			msg := e.Message()
			if msg == nil {
				return nil, fmt.Errorf("track %q: unsupported event type 0x%02X", t.Name, e.Type)
			}
			tr.Add(e.Delta, msg)
		}
		tr.Close(0)
		if err := s.Add(tr); err != nil {
			return nil, fmt.Errorf("add track %q: %w", t.Name, err)
		}
	}
	return s, nil
}

// WriteSMF serializes the tracks as a Standard MIDI File
func WriteSMF(w io.Writer, ticksPerBeat uint16, tracks []Track) error {
	s, err := NewSMF(ticksPerBeat, tracks)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write smf: %w", err)
	}
	return nil
}

// SaveSMF writes the tracks to path, creating parent directories
func SaveSMF(path string, ticksPerBeat uint16, tracks []Track) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSMF(f, ticksPerBeat, tracks); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
