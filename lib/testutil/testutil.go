package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"hltv-crawler/lib/telemetry"

	"github.com/stretchr/testify/require"
)

var setupOnce sync.Once

// Setup configures logging for a test binary, it only runs once no matter
// how many tests call it.
func Setup(t testing.TB) {
	setupOnce.Do(func() {
		telemetry.InitSlog(testing.Verbose())
	})
}

// FakeSite serves a fixed set of pages keyed by request path, anything else
// is a 404. the server is closed when the test ends.
type FakeSite struct {
	Server *httptest.Server

	mutex sync.Mutex
	pages map[string]string
	hits  map[string]int
}

func NewFakeSite(t testing.TB, pages map[string]string) *FakeSite {
	site := &FakeSite{
		pages: pages,
		hits:  map[string]int{},
	}
	site.Server = httptest.NewServer(http.HandlerFunc(site.serve))
	t.Cleanup(site.Server.Close)
	return site
}

func (s *FakeSite) serve(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.hits[r.URL.Path]++
	page, ok := s.pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *FakeSite) Url() string {
	return s.Server.URL
}

// Hits returns how many times a path has been requested.
func (s *FakeSite) Hits(path string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.hits[path]
}

// ReadFile reads a file relative to the root of the module, so packages can
// share fixtures.
func ReadFile(t testing.TB, path string) string {
	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		_, err := os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			break
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, parent, dir, "could not find module root")
		dir = parent
	}

	contents, err := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, err)
	return string(contents)
}
