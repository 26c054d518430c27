package helper_test

import (
	"darshan/config"
	"darshan/helper"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "darshan"
	cfg.DB.Postgres.Write.Password = "p@ss:word"
	cfg.DB.Postgres.Write.Name = "darshan"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	dsn, err := url.Parse(helper.ConnectionString(cfg))
	require.NoError(t, err)

	password, _ := dsn.User.Password()

	assert.Equal(t, "postgres", dsn.Scheme)
	assert.Equal(t, "localhost:5432", dsn.Host)
	assert.Equal(t, "/test_darshan", dsn.Path)
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "disable", dsn.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", dsn.Query().Get("x-migrations-table"))
}

func TestRunner_UnknownAction(t *testing.T) {
	err := helper.Runner(&config.Config{}, "sideways")

	assert.ErrorIs(t, err, helper.ErrUnknownAction)
}
