package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeLibrary(t, `
packages:
  - name: DIP-16
    pin_count: 16
    width: 6.35
    height: 20.32
  - name: TO-92
    pin_count: 3
    width: 4.8
    height: 4.8
`)

	loader := NewLoader()
	lib, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, 2, lib.Count())
	pkg, err := lib.Get("DIP-16")
	require.NoError(t, err)
	assert.Equal(t, 16, pkg.PinCount)
	assert.Equal(t, []string{"DIP-16", "TO-92"}, lib.Names())
}

func TestLoader_CachesByPath(t *testing.T) {
	path := writeLibrary(t, "packages:\n  - name: DIP-8\n    pin_count: 8\n")

	loader := NewLoader()
	ctx := context.Background()

	first, err := loader.Load(ctx, path)
	require.NoError(t, err)

	// Rewrite the file; the cached parse must still be served.
	require.NoError(t, os.WriteFile(path, []byte("packages:\n  - name: DIP-40\n    pin_count: 40\n"), 0o644))

	second, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// Invalidation forces a re-read.
	loader.Invalidate(ctx, path)
	third, err := loader.Load(ctx, path)
	require.NoError(t, err)
	_, err = third.Get("DIP-40")
	assert.NoError(t, err)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "reading library file")
}

func TestLoader_Load_EmptyName(t *testing.T) {
	path := writeLibrary(t, "packages:\n  - pin_count: 4\n")

	loader := NewLoader()
	_, err := loader.Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorContains(t, err, "empty name")
}

func TestLibrary_Get_NotFound(t *testing.T) {
	lib := Standard()

	_, err := lib.Get("QFP-100")

	require.ErrorIs(t, err, ErrPackageNotFound)
}

func TestStandard_ContainsCommonDIPs(t *testing.T) {
	lib := Standard()

	for _, name := range []string{"DIP-8", "DIP-14", "DIP-16", "DIP-40"} {
		pkg, err := lib.Get(name)
		require.NoError(t, err, name)
		assert.Positive(t, pkg.PinCount, name)
	}
}
