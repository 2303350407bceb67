package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	models "gitlabsearch/internal/domain/models/search"
)

func TestDecodeParams(t *testing.T) {
	input := `
scope: issues
search: "login bug"
confidential: true
page: 3
created_after: 2024-05-01T10:00:00Z
sort: "true"
`
	params, err := DecodeParams(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeParams() error: %v", err)
	}

	checks := []struct {
		key  string
		kind models.Kind
		str  string
	}{
		{"scope", models.KindString, "issues"},
		{"search", models.KindString, "login bug"},
		{"confidential", models.KindBool, "true"},
		{"page", models.KindInt, "3"},
		{"created_after", models.KindTime, "2024-05-01T10:00:00Z"},
		{"sort", models.KindString, "true"},
	}
	if len(params) != len(checks) {
		t.Fatalf("got %d params, want %d", len(params), len(checks))
	}
	for _, c := range checks {
		v, ok := params[c.key]
		if !ok {
			t.Errorf("missing key %q", c.key)
			continue
		}
		if v.Kind() != c.kind {
			t.Errorf("%s: kind = %s, want %s", c.key, v.Kind(), c.kind)
		}
		if v.String() != c.str {
			t.Errorf("%s: value = %q, want %q", c.key, v.String(), c.str)
		}
	}

	ts, _ := params["created_after"].AsTime()
	if !ts.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("created_after = %v", ts)
	}
}

func TestDecodeParams_Empty(t *testing.T) {
	params, err := DecodeParams(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeParams() error: %v", err)
	}
	if len(params) != 0 {
		t.Errorf("expected empty params, got %v", params)
	}
}

func TestDecodeParams_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a mapping", "- scope\n- search\n"},
		{"nested mapping", "scope:\n  name: projects\n"},
		{"list value", "scope: [projects]\n"},
		{"null value", "scope: ~\n"},
		{"float value", "search: 1.5\n"},
		{"malformed yaml", "scope: [projects\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeParams(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte("scope: users\nsearch: alice\n"), 0644); err != nil {
		t.Fatal(err)
	}

	params, err := LoadParamsFile(path)
	if err != nil {
		t.Fatalf("LoadParamsFile() error: %v", err)
	}
	query, err := Validate(params)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if query["scope"] != "users" || query["search"] != "alice" {
		t.Errorf("unexpected query %v", query)
	}

	if _, err := LoadParamsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
