package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(Te *testing.T) {
	cfg, err := Load("")
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Host != DefaultHost || cfg.Port != DefaultPort {
		Te.Errorf("bad defaults: %+v", cfg)
	}
	if cfg.Addr() != "127.0.0.1:8050" {
		Te.Errorf("got addr %s", cfg.Addr())
	}
	if cfg.Debug {
		Te.Error("debug should default to off")
	}
	if cfg.UploadLimit != DefaultUploadLimit {
		Te.Errorf("got upload limit %d", cfg.UploadLimit)
	}
}

func TestLoadFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "curview.yml")
	content := "host: 0.0.0.0\nport: 9000\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Addr() != "0.0.0.0:9000" || !cfg.Debug {
		Te.Errorf("file values ignored: %+v", cfg)
	}
	if cfg.DataDir != DefaultDataDir {
		Te.Errorf("unset keys should keep defaults: %+v", cfg)
	}
	if _, err := Load(filepath.Join(Te.TempDir(), "missing.yml")); err == nil {
		Te.Error("expected an error for an explicit missing file")
	}
}

func TestLoadElementColors(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "elementColors.yml")
	content := "jmol:\n  C: \"#909090\"\n  O: \"#FF0D0D\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	table, err := LoadElementColors(path)
	if err != nil {
		Te.Fatal(err)
	}
	if table["C"] != "#909090" || table["O"] != "#FF0D0D" {
		Te.Errorf("bad table: %v", table)
	}
	table, err = LoadElementColors("")
	if err != nil || table != nil {
		Te.Errorf("empty path should be a no-op, got %v, %v", table, err)
	}
	bad := filepath.Join(Te.TempDir(), "bad.yml")
	if err := os.WriteFile(bad, []byte("other: {}\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadElementColors(bad); err == nil {
		Te.Error("expected an error when the jmol table is missing")
	}
}
