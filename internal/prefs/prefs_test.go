package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func writePrefs(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %+v, want %+v", p, Defaults())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writePrefs(t, filepath.Join(home, ".config", "shopfront", "prefs.toml"), "theme = \"Slate\"\ncolumns = 2\n")

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.Columns != 2 {
		t.Fatalf("Columns = %d, want 2", p.Columns)
	}
}

func TestLoad_NormalizesValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Prefs
	}{
		{"empty theme", "theme = \"\"\n", Prefs{Theme: defaultTheme}},
		{"padded theme", "theme = \"  Kanagawa \"\n", Prefs{Theme: "Kanagawa"}},
		{"columns too wide", "theme = \"Slate\"\ncolumns = 9\n", Prefs{Theme: "Slate"}},
		{"negative columns", "columns = -1\n", Prefs{Theme: defaultTheme}},
		{"invalid toml", "not valid toml {{{\n", Defaults()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			writePrefs(t, path, tc.body)
			if got := Load(path); got != tc.want {
				t.Fatalf("Load = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate", Columns: 3}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(path)
	if loaded.Theme != "Slate" || loaded.Columns != 3 {
		t.Fatalf("Load after Save = %+v", loaded)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want only prefs.toml", len(entries))
	}
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "theme = \"Slate\"\n")

	if err := Save(path, Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(path).Theme; got != "Kanagawa" {
		t.Fatalf("Theme = %q, want %q", got, "Kanagawa")
	}
}
