package db

import (
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-warden/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{Host: "db", Port: 5433, Username: "warden", Password: "pw", Database: "reviews"})
	assert.Equal(t, "host=db port=5433 user=warden password=pw dbname=reviews sslmode=disable", dsn)
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "migrations/0001_create_review_records.up.sql")
	assert.Contains(t, names, "migrations/0001_create_review_records.down.sql")

	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}
