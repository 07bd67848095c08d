package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/config"
)

func TestEnsureGitignore_CreatesOnce(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "project", ".footprint")

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.True(t, created, "first call should create the file")

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))
	assert.Contains(t, string(data), "*.pdf")
	assert.Contains(t, string(data), "*.log")

	created, err = config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created, "second call should leave the file alone")
}

func TestEnsureGitignore_DoesNotOverwriteExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gitignorePath := filepath.Join(dir, ".gitignore")
	custom := "# mine\nbuild/\n"
	require.NoError(t, os.WriteFile(gitignorePath, []byte(custom), 0o600))

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(gitignorePath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}
