package cmd

import (
	"bytes"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerStartCommand_AddrInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	t.Setenv("LOG_LEVEL", "error")

	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"server", "start",
		"--addr", ln.Addr().String(),
		"--db-driver", "sqlite",
		"--db-dsn", filepath.Join(t.TempDir(), "start.db"),
	})

	// The bound port makes Start fail immediately; the command must return
	// the error instead of waiting for a signal.
	err = root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}

func TestServerMigrateCommand(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	t.Run("dry run lists pending migrations", func(t *testing.T) {
		root := NewRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"server", "migrate", "--dry-run", "--db-driver", "sqlite", "--db-dsn", dsn})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Pending migrations:")
		assert.Contains(t, out.String(), "001_create_categories_table")
	})

	t.Run("applies migrations", func(t *testing.T) {
		root := NewRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"server", "migrate", "--db-driver", "sqlite", "--db-dsn", dsn})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Migrations applied")
	})

	t.Run("dry run after apply reports nothing pending", func(t *testing.T) {
		root := NewRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"server", "migrate", "--dry-run", "--db-driver", "sqlite", "--db-dsn", dsn})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "No pending migrations")
	})
}
