package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, "data/budget.db", cfg.Database.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BILLFOLD_DB_PATH", "/tmp/other.db")

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
}
