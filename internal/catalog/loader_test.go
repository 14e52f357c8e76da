package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const manifestJSON = `[
  {"id": "snake", "title": "Snake", "description": "Eat apples", "tags": ["arcade"], "thumb": "thumbs/snake.png", "new": true},
  {"id": "pong"}
]`

func TestNewLoaderPicksImplementation(t *testing.T) {
	tests := []struct {
		source string
		http   bool
	}{
		{"", false},
		{"./games.json", false},
		{"/srv/site/games.json", false},
		{"http://localhost:8000/games.json", true},
		{"HTTPS://cdn.example.com/games.json", true},
	}
	for _, tt := range tests {
		l := NewLoader(tt.source)
		_, isHTTP := l.(*HTTPLoader)
		if isHTTP != tt.http {
			t.Errorf("NewLoader(%q) http = %v, want %v", tt.source, isHTTP, tt.http)
		}
	}
	if fl, ok := NewLoader("").(*FileLoader); !ok || fl.Path != DefaultSource {
		t.Errorf("NewLoader(\"\") should default to %s", DefaultSource)
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.json")
	if err := os.WriteFile(path, []byte(manifestJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := (&FileLoader{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m[0].ID != "snake" || !m[0].New || m[0].Thumb != "thumbs/snake.png" || len(m[0].Tags) != 1 {
		t.Errorf("first game = %+v", m[0])
	}
	if m[1].ID != "pong" || m[1].Title != "" || m[1].New {
		t.Errorf("second game = %+v", m[1])
	}
}

func TestFileLoaderReadsFreshEachTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.json")
	l := &FileLoader{Path: path}

	if err := os.WriteFile(path, []byte(`[{"id":"a"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := l.Load(context.Background())
	if err != nil || len(m) != 1 {
		t.Fatalf("first Load = %v, %v", m, err)
	}

	if err := os.WriteFile(path, []byte(`[{"id":"a"},{"id":"b"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err = l.Load(context.Background())
	if err != nil || len(m) != 2 {
		t.Fatalf("second Load = %v, %v", m, err)
	}
}

func TestFileLoaderMissing(t *testing.T) {
	_, err := (&FileLoader{Path: filepath.Join(t.TempDir(), "nope.json")}).Load(context.Background())
	if !errors.Is(err, ErrLoad) {
		t.Errorf("err = %v, want ErrLoad", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, body := range []string{
		"",
		"{",
		`{"id":"x"}`,
		`[{"id": 3}]`,
		"not json",
		`[{"id":"snake"}] {"oops"`,
		`[{"id":"snake"}][]`,
		`[] x`,
		`null null`,
	} {
		_, err := Decode(strings.NewReader(body))
		if !errors.Is(err, ErrParse) {
			t.Errorf("Decode(%q) err = %v, want ErrParse", body, err)
		}
	}
}

func TestDecodeTrailingWhitespace(t *testing.T) {
	m, err := Decode(strings.NewReader("[{\"id\":\"snake\"}]\n\t \n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(m) != 1 || m[0].ID != "snake" {
		t.Errorf("Decode = %#v", m)
	}
}

func TestDecodeNullIsEmpty(t *testing.T) {
	m, err := Decode(strings.NewReader("null"))
	if err != nil {
		t.Fatalf("Decode(null): %v", err)
	}
	if m == nil || len(m) != 0 {
		t.Errorf("Decode(null) = %#v, want empty manifest", m)
	}
}

func TestHTTPLoader(t *testing.T) {
	var gotCacheControl, gotPragma string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		gotPragma = r.Header.Get("Pragma")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(manifestJSON))
	}))
	defer srv.Close()

	m, err := NewLoader(srv.URL + "/games.json").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != 2 {
		t.Errorf("len = %d, want 2", len(m))
	}
	if !strings.Contains(gotCacheControl, "no-store") {
		t.Errorf("Cache-Control = %q, want no-store", gotCacheControl)
	}
	if gotPragma != "no-cache" {
		t.Errorf("Pragma = %q, want no-cache", gotPragma)
	}
}

func TestHTTPLoaderBadStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNotModified} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := (&HTTPLoader{URL: srv.URL, Client: srv.Client()}).Load(context.Background())
		srv.Close()
		if !errors.Is(err, ErrLoad) {
			t.Errorf("status %d: err = %v, want ErrLoad", status, err)
		}
	}
}

func TestHTTPLoaderBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := NewLoader(srv.URL).Load(context.Background())
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
	if errors.Is(err, ErrLoad) {
		t.Error("parse failure should not be reported as ErrLoad")
	}
}

func TestHTTPLoaderCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(srv.URL).Load(ctx)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("err = %v, want ErrLoad", err)
	}
}
