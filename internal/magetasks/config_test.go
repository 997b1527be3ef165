package magetasks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesBinDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, Initialize())

	info, err := os.Stat(filepath.Join(tmpDir, "bin"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expectedRoot, actualRoot)
}

func TestPaths_PointAtCardfit(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/cardfit", ModulePath)
	assert.Equal(t, "./bin/cardfit", BinPath)
	assert.Equal(t, "./cmd/cardfit", MainPackage)
}

func TestLDFlags_StampsVersionPackage(t *testing.T) {
	flags := LDFlags("v1.2.3", "abc123", "2026-01-01T00:00:00Z")

	assert.Contains(t, flags, "github.com/dkoosis/cardfit/internal/version.Version=v1.2.3")
	assert.Contains(t, flags, "internal/version.CommitHash=abc123")
	assert.Contains(t, flags, "internal/version.BuildDate=2026-01-01T00:00:00Z")
	assert.True(t, strings.HasPrefix(flags, "-s -w "))
}
