package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add users table", "add_users_table"},
		{"Add-Users-Table", "add_users_table"},
		{"ADD_USERS_TABLE", "add_users_table"},
		{"add__users__table", "add_users_table"},
		{"Add Users 123", "add_users_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"índice único", "ndice_nico"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func writeMigrationFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- test"), 0o644))
	}
}

func TestCreateMigration(t *testing.T) {
	t.Run("first migration is 000001", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "create users", "Accounts table")
		require.NoError(t, err)
		assert.Equal(t, "000001", mf.Version)
		assert.Equal(t, filepath.Join(dir, "000001_create_users.up.sql"), mf.UpPath)
		assert.Equal(t, filepath.Join(dir, "000001_create_users.down.sql"), mf.DownPath)

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "create_users")
		assert.Contains(t, string(up), "Accounts table")

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(down), "Rollback")
	})

	t.Run("numbers after the highest existing version", func(t *testing.T) {
		dir := t.TempDir()
		writeMigrationFiles(t, dir,
			"000001_create_users.up.sql", "000001_create_users.down.sql",
			"000007_create_forecasts.up.sql", "000007_create_forecasts.down.sql",
			"notes_without_version.up.sql",
		)

		mf, err := CreateMigration(dir, "add forecast index", "")
		require.NoError(t, err)
		assert.Equal(t, "000008", mf.Version)
	})

	t.Run("creates missing directory", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "nested", "migrations")

		_, err := CreateMigration(nested, "init", "")
		require.NoError(t, err)

		info, err := os.Stat(nested)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects a name with no usable characters", func(t *testing.T) {
		_, err := CreateMigration(t.TempDir(), "!!!", "")
		assert.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("returns sorted base names of up files", func(t *testing.T) {
		dir := t.TempDir()
		writeMigrationFiles(t, dir,
			"000003_create_procurement.up.sql", "000003_create_procurement.down.sql",
			"000001_create_users.up.sql", "000001_create_users.down.sql",
			"000002_create_saved_dashboards.up.sql", "000002_create_saved_dashboards.down.sql",
			"README.md", ".gitkeep",
		)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0o755))

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"000001_create_users",
			"000002_create_saved_dashboards",
			"000003_create_procurement",
		}, migrations)
	})

	t.Run("empty directory", func(t *testing.T) {
		migrations, err := ListMigrations(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		migrations, err := ListMigrations("/nonexistent/path/to/migrations")
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}

func TestRepositoryMigrationsArePaired(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "migrations")
	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, base := range migrations {
		_, err := os.Stat(filepath.Join(dir, base+".down.sql"))
		assert.NoError(t, err, "%s has no down migration", base)
		assert.Regexp(t, `^0000\d\d_[a-z0-9_]+$`, base)
		assert.Equal(t, i+1, mustVersion(t, base))
	}
}

func mustVersion(t *testing.T, base string) int {
	t.Helper()
	var n int
	_, err := fmt.Sscanf(base, "%06d_", &n)
	require.NoError(t, err)
	return n
}
