package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultSource is the manifest location used when none is configured.
const DefaultSource = "./games.json"

var (
	// ErrLoad means the manifest could not be fetched.
	ErrLoad = errors.New("could not load games.json")
	// ErrParse means the manifest was fetched but is not a JSON array of games.
	ErrParse = errors.New("could not parse games.json")
)

// Loader fetches the manifest. Every call performs a fresh read; nothing
// is cached between calls.
type Loader interface {
	Load(ctx context.Context) (Manifest, error)
}

// NewLoader returns an HTTPLoader for http(s) sources and a FileLoader
// for everything else.
func NewLoader(source string) Loader {
	if source == "" {
		source = DefaultSource
	}
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &HTTPLoader{URL: source}
	}
	return &FileLoader{Path: source}
}

// FileLoader reads the manifest from the local filesystem.
type FileLoader struct {
	Path string
}

// Load reads and decodes the manifest file.
func (l *FileLoader) Load(ctx context.Context) (Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	return Decode(f)
}

// HTTPLoader fetches the manifest over HTTP, asking every cache on the
// way to revalidate.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// Load issues a GET for the manifest. Non-2xx responses yield ErrLoad.
func (l *HTTPLoader) Load(ctx context.Context) (Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %s", ErrLoad, resp.Status)
	}
	return Decode(resp.Body)
}

// Decode parses a JSON array of games. Anything after the array other
// than whitespace is a parse error.
func Decode(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after manifest")
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if m == nil {
		// A literal null decodes without error; treat it as empty.
		m = Manifest{}
	}
	return m, nil
}
