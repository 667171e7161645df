package migration

import (
	"io/fs"
	"testing"

	"github.com/Gthulhu/priosim/config"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRunMongoMigrationDisabled(t *testing.T) {
	assert.NoError(t, RunMongoMigration(config.MongoDBConfig{Enable: false}))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := iofs.New(migrationFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	entries, err := fs.ReadDir(migrationFS, "migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		data, err := fs.ReadFile(migrationFS, "migrations/"+entry.Name())
		require.NoError(t, err)
		require.True(t, gjson.ValidBytes(data), "%s is not valid json", entry.Name())
		commands := gjson.ParseBytes(data)
		assert.True(t, commands.IsArray(), "%s must hold a list of commands", entry.Name())
	}
}
