package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/utsavdotdev/basobas/internal/store"
)

// SetupTestStore opens a throwaway state database under a per-test temp
// directory and closes it when the test finishes.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err, "Failed to open test state store")
	t.Cleanup(func() { _ = s.Close() })
	return s
}
