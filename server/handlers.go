package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"moodgen/composer"
	"moodgen/debug"
	"moodgen/mood"
)

type moodSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tempo       float64  `json:"tempo"`
	Scales      []string `json:"scales"`
	Layers      []string `json:"layers"`
}

type trackSummary struct {
	Name       string `json:"name"`
	Channel    uint8  `json:"channel"`
	Program    uint8  `json:"program"`
	Instrument string `json:"instrument"`
	Notes      int    `json:"notes"`
	Ticks      int64  `json:"ticks"`
}

type compositionSummary struct {
	Mood         string                        `json:"mood"`
	Seed         int64                         `json:"seed"`
	Tempo        float64                       `json:"tempo"`
	TicksPerBeat int                           `json:"ticksPerBeat"`
	Scale        string                        `json:"scale"`
	Instruments  map[mood.Role]mood.Instrument `json:"instruments"`
	Melody       []int                         `json:"melody"`
	Tracks       []trackSummary                `json:"tracks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMoods(w http.ResponseWriter, r *http.Request) {
	var out []moodSummary
	for _, name := range mood.Names() {
		p, err := mood.Preset(name)
		if err != nil {
			continue
		}
		sum := moodSummary{Name: p.Name, Description: p.Description, Tempo: p.TempoBPM}
		for _, sc := range p.Scales {
			sum.Scales = append(sum.Scales, sc.Name)
		}
		for _, l := range p.Layers {
			sum.Layers = append(sum.Layers, l.Name)
		}
		out = append(out, sum)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	c, ok := s.compose(w, r)
	if !ok {
		return
	}

	sum := compositionSummary{
		Mood:         c.Mood,
		Seed:         c.Seed,
		Tempo:        c.TempoBPM,
		TicksPerBeat: c.TicksPerBeat,
		Scale:        c.Scale.Name,
		Instruments:  c.Instruments,
		Melody:       c.Melody.Pitches,
	}
	for i := range c.Tracks {
		t := &c.Tracks[i]
		sum.Tracks = append(sum.Tracks, trackSummary{
			Name:       t.Name,
			Channel:    t.Channel,
			Program:    t.Program,
			Instrument: t.Instrument,
			Notes:      len(t.Notes()),
			Ticks:      t.Ticks(),
		})
	}
	s.writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleComposeMIDI(w http.ResponseWriter, r *http.Request) {
	c, ok := s.compose(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := c.WriteSMF(&buf); err != nil {
		s.logger.WithError(err).Error("write smf")
		s.renderError(w, "failed to encode midi", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Filename()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// compose resolves the mood and seed of the request and runs the engine
func (s *Server) compose(w http.ResponseWriter, r *http.Request) (*composer.Composition, bool) {
	p, ok := s.lookup(w, r)
	if !ok {
		return nil, false
	}

	seed := time.Now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.renderError(w, fmt.Sprintf("invalid seed %q", raw), http.StatusBadRequest)
			return nil, false
		}
		seed = v
	}

	debug.LogEvery(100, "http", "composed %s", p.Name)
	return composer.ComposeSeed(&p, seed), true
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (mood.Profile, bool) {
	name := chi.URLParam(r, "name")
	p, err := mood.Preset(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mood.ErrUnknownMood) {
			status = http.StatusNotFound
		}
		s.renderError(w, err.Error(), status)
		return mood.Profile{}, false
	}
	return p, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("encode response")
	}
}

func (s *Server) renderError(w http.ResponseWriter, message string, status int) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
