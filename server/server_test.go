package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ts := httptest.NewServer(New(Config{}, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestMoods(t *testing.T) {
	ts := newTestServer(t)

	t.Run("List", func(t *testing.T) {
		resp := get(t, ts.URL+"/moods")
		var moods []moodSummary
		if err := json.NewDecoder(resp.Body).Decode(&moods); err != nil {
			t.Fatal(err)
		}
		names := map[string]bool{}
		for _, m := range moods {
			names[m.Name] = true
		}
		for _, want := range []string{"happy", "moody", "energetic"} {
			if !names[want] {
				t.Errorf("missing mood %s", want)
			}
		}
	})

	t.Run("Detail", func(t *testing.T) {
		resp := get(t, ts.URL+"/moods/moody")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		var p struct {
			Name  string  `json:"name"`
			Tempo float64 `json:"tempo"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			t.Fatal(err)
		}
		if p.Name != "moody" || p.Tempo != 60 {
			t.Errorf("got %+v", p)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		resp := get(t, ts.URL+"/moods/melancholy")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestCompose(t *testing.T) {
	ts := newTestServer(t)

	t.Run("Summary", func(t *testing.T) {
		resp := get(t, ts.URL+"/compose/happy?seed=42")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		var sum compositionSummary
		if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
			t.Fatal(err)
		}
		if sum.Seed != 42 || sum.Mood != "happy" || len(sum.Melody) != 128 || len(sum.Tracks) != 6 {
			t.Errorf("got seed %d mood %s, %d notes, %d tracks", sum.Seed, sum.Mood, len(sum.Melody), len(sum.Tracks))
		}
	})

	t.Run("SameSeedSameFile", func(t *testing.T) {
		a, _ := io.ReadAll(get(t, ts.URL+"/compose/energetic/midi?seed=7").Body)
		b, _ := io.ReadAll(get(t, ts.URL+"/compose/energetic/midi?seed=7").Body)
		if len(a) == 0 || !bytes.Equal(a, b) {
			t.Error("same seed should serve identical files")
		}
	})

	t.Run("MIDI", func(t *testing.T) {
		resp := get(t, ts.URL+"/compose/moody/midi?seed=3")
		if ct := resp.Header.Get("Content-Type"); ct != "audio/midi" {
			t.Errorf("content type = %q", ct)
		}
		if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="moody_3.mid"` {
			t.Errorf("content disposition = %q", cd)
		}
		s, err := smf.ReadFrom(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if len(s.Tracks) != 3 {
			t.Errorf("got %d tracks, want 3", len(s.Tracks))
		}
	})

	t.Run("BadSeed", func(t *testing.T) {
		resp := get(t, ts.URL+"/compose/happy?seed=abc")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("UnknownMood", func(t *testing.T) {
		resp := get(t, ts.URL+"/compose/melancholy/midi")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}
