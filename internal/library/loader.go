package library

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"placer/internal/cachemanager"
	"placer/internal/log"
)

// libraryFile is the YAML shape of a package library file.
type libraryFile struct {
	Packages []*Package `yaml:"packages"`
}

// Loader reads package libraries from YAML files, caching parsed
// libraries by path so repeated loads (e.g. on watcher reloads of an
// unchanged file) stay cheap.
type Loader struct {
	cache cachemanager.CacheManager[*Library]
	ttl   time.Duration
}

// NewLoader creates a loader with an in-memory cache.
func NewLoader() *Loader {
	return &Loader{
		cache: cachemanager.NewInMemoryCacheManager[*Library](
			"library", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		ttl: cachemanager.DefaultExpiration,
	}
}

// Load parses the library file at path, consulting the cache first.
func (l *Loader) Load(ctx context.Context, path string) (*Library, error) {
	if lib, ok := l.cache.GetWithRefresh(ctx, path, l.ttl); ok {
		return lib, nil
	}

	lib, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	l.cache.Set(ctx, path, lib, l.ttl)
	log.Info(log.CatLibrary, "library loaded", "path", path, "packages", lib.Count())
	return lib, nil
}

// Invalidate drops the cached library for path, forcing the next Load
// to re-read the file. Called by the watcher when the file changes.
func (l *Loader) Invalidate(ctx context.Context, path string) {
	_ = l.cache.Delete(ctx, path)
	log.Debug(log.CatLibrary, "library cache invalidated", "path", path)
}

func parseFile(path string) (*Library, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		return nil, fmt.Errorf("reading library file: %w", err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing library file: %w", err)
	}

	lib := NewLibrary()
	for _, p := range file.Packages {
		if p.Name == "" {
			return nil, fmt.Errorf("library file %s: package with empty name", path)
		}
		lib.Add(p)
	}
	return lib, nil
}
