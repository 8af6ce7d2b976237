package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTeamsAreValid(t *testing.T) {
	teams := DefaultTeams()
	if len(teams) != 20 {
		t.Fatalf("teams got=%d want=20", len(teams))
	}
	if err := ValidateTeams(teams); err != nil {
		t.Fatalf("default teams invalid: %v", err)
	}
	if got := teams[0].Initial(); got != "A" {
		t.Fatalf("initial got=%q want=A", got)
	}
}

func TestLoadTeams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	data := `[
		{"id": 1, "name": "Reds", "short_name": "RED", "primary_color": "#DC2626", "secondary_color": "#FFFFFF"},
		{"id": 2, "name": "Blues", "short_name": "BLU", "primary_color": "#2563EB", "secondary_color": "#FFFFFF"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	teams, err := LoadTeams(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(teams) != 2 || teams[1].Name != "Blues" || teams[1].PrimaryColor != "#2563EB" {
		t.Fatalf("teams got=%+v", teams)
	}
}

func TestLoadTeamsRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"single.json":    `[{"id": 1, "name": "Reds", "primary_color": "#DC2626"}]`,
		"duplicate.json": `[{"id": 1, "name": "A", "primary_color": "#111"}, {"id": 1, "name": "B", "primary_color": "#222"}]`,
		"colour.json":    `[{"id": 1, "name": "A", "primary_color": "red"}, {"id": 2, "name": "B", "primary_color": "#222"}]`,
		"unnamed.json":   `[{"id": 1, "primary_color": "#111"}, {"id": 2, "name": "B", "primary_color": "#222"}]`,
	}
	for name, data := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTeams(path); !errors.Is(err, ErrInvalidTeams) {
			t.Fatalf("%s: got=%v want=%v", name, err, ErrInvalidTeams)
		}
	}

	if _, err := LoadTeams(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file got=%v want=%v", err, os.ErrNotExist)
	}
}

func TestTeamsFromEmptyPathUsesDefaults(t *testing.T) {
	teams, err := TeamsFrom("")
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(teams) != len(DefaultTeams()) {
		t.Fatalf("teams got=%d want=%d", len(teams), len(DefaultTeams()))
	}
}
