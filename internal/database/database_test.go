package database

import (
	"io/fs"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/contacts-api/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{
		DBUser: "app",
		DBPass: "s3cret",
		DBHost: "db",
		DBPort: "3307",
		DBName: "contacts",
	})

	mc, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", mc.User)
	assert.Equal(t, "s3cret", mc.Passwd)
	assert.Equal(t, "db:3307", mc.Addr)
	assert.Equal(t, "contacts", mc.DBName)
	assert.True(t, mc.ParseTime)
	assert.True(t, mc.ClientFoundRows)
	assert.Equal(t, time.UTC, mc.Loc)
}

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.Len(t, ups, 2)
	assert.Len(t, downs, len(ups))
}
