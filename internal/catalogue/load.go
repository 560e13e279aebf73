package catalogue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrEmptySource is returned when no catalogue location is configured.
var ErrEmptySource = errors.New("no catalogue source configured")

const userAgent = "announcer/1.0 (https://github.com/llehouerou/announcer)"

// Loader fetches the catalogue document once at startup.
type Loader struct {
	httpClient *http.Client
}

// NewLoader creates a loader with a bounded HTTP timeout.
func NewLoader() *Loader {
	return &Loader{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Load reads the catalogue from source, which is either a local file path or
// an http(s) URL. Clip IDs are assigned from their position in the document.
func (l *Loader) Load(ctx context.Context, source string) ([]Clip, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	var (
		r   io.ReadCloser
		err error
	)
	if isURL(source) {
		r, err = l.fetch(ctx, source)
	} else {
		r, err = os.Open(source)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Decode(r)
}

// Decode parses a catalogue document and numbers its clips.
func Decode(r io.Reader) ([]Clip, error) {
	var clips []Clip
	if err := json.NewDecoder(r).Decode(&clips); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	for i := range clips {
		clips[i].ID = i
	}
	return clips, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return resp.Body, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
