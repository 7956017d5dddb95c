package config

import (
	"os"
	"path/filepath"
	"testing"

	"moodgen/mood"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultMood != "happy" || cfg.Server.Addr != ":8080" || cfg.UI.LaneWidth != 64 {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.DefaultMood = "moody"
	cfg.OutputDir = "/tmp/pieces"

	p := mood.Moody()
	p.Name = "config-test-rainy"
	cfg.AddProfile(p)

	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.DefaultMood != "moody" || loaded.OutputDir != "/tmp/pieces" {
		t.Errorf("got %+v", loaded)
	}
	got := loaded.FindProfile("config-test-rainy")
	if got == nil {
		t.Fatal("custom profile not saved")
	}
	if got.Register != p.Register || got.TempoBPM != p.TempoBPM || len(got.Layers) != len(p.Layers) {
		t.Errorf("profile changed across save: %+v", got)
	}

	if err := loaded.RegisterProfiles(); err != nil {
		t.Fatal(err)
	}
	if _, err := mood.Preset("config-test-rainy"); err != nil {
		t.Errorf("registered profile not available: %v", err)
	}
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"defaultMood": "energetic"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultMood != "energetic" {
		t.Errorf("default mood = %q", cfg.DefaultMood)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("unset fields should keep defaults, addr = %q", cfg.Server.Addr)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{not json`), 0644)
	if _, err := LoadFile(path); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestRegisterProfilesInvalid(t *testing.T) {
	p := mood.Happy()
	p.Name = "config-test-broken"
	p.TempoBPM = -1

	cfg := DefaultConfig()
	cfg.AddProfile(p)
	if err := cfg.RegisterProfiles(); err == nil {
		t.Error("invalid profile should fail registration")
	}
}

func TestAddProfileReplaces(t *testing.T) {
	cfg := DefaultConfig()
	p := mood.Happy()
	p.Name = "x"
	cfg.AddProfile(p)
	p.TempoBPM = 99
	cfg.AddProfile(p)

	if len(cfg.Profiles) != 1 || cfg.Profiles[0].TempoBPM != 99 {
		t.Errorf("got %d profiles, tempo %v", len(cfg.Profiles), cfg.Profiles[0].TempoBPM)
	}
}
