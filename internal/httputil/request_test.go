package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		path    string
		query   map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "joins path",
			base: "https://gitlab.example.com/api/v4",
			path: "search",
			want: "https://gitlab.example.com/api/v4/search",
		},
		{
			name: "trailing and leading slashes",
			base: "https://gitlab.example.com/api/v4/",
			path: "/search",
			want: "https://gitlab.example.com/api/v4/search",
		},
		{
			name:  "sorted encoded query",
			base:  "https://gitlab.example.com/api/v4",
			path:  "search",
			query: map[string]string{"sort": "asc", "search": "a b&c", "confidential": "true"},
			want:  "https://gitlab.example.com/api/v4/search?confidential=true&search=a+b%26c&sort=asc",
		},
		{
			name:  "keeps base query",
			base:  "https://gitlab.example.com/api/v4?per_page=50",
			path:  "search",
			query: map[string]string{"scope": "users"},
			want:  "https://gitlab.example.com/api/v4/search?per_page=50&scope=users",
		},
		{
			name:    "missing scheme",
			base:    "gitlab.example.com",
			path:    "search",
			wantErr: true,
		},
		{
			name:    "unparsable",
			base:    "://bad",
			path:    "search",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.base, tt.path, tt.query)
			if tt.wantErr {
				if err == nil {
					t.Errorf("BuildURL() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildURL() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.WriteString("hello")
	resp := rec.Result()

	body, err := ReadBody(resp, 5)
	if err != nil || string(body) != "hello" {
		t.Errorf("ReadBody() = %q, %v", body, err)
	}

	rec = httptest.NewRecorder()
	rec.WriteString(strings.Repeat("x", 10))
	if _, err := ReadBody(rec.Result(), 5); err == nil {
		t.Error("expected error for oversized body")
	}
}

func TestIsSuccess(t *testing.T) {
	for status, want := range map[int]bool{
		http.StatusOK:                  true,
		http.StatusNoContent:           true,
		http.StatusMultipleChoices:     false,
		http.StatusBadRequest:          false,
		http.StatusInternalServerError: false,
	} {
		if got := IsSuccess(status); got != want {
			t.Errorf("IsSuccess(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %q", got)
	}
	if got := Truncate("0123456789", 4); got != "0123..." {
		t.Errorf("Truncate() = %q", got)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID() on empty context = %q", got)
	}
	ctx = WithRequestID(ctx, "abc")
	if got := GetRequestID(ctx); got != "abc" {
		t.Errorf("GetRequestID() = %q, want abc", got)
	}
}
