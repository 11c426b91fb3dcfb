package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signal-dashboard/models"
)

func TestOpen_MigratesSignals(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "signals.db"))
	require.NoError(t, err)
	defer Close(db)

	assert.True(t, db.Migrator().HasTable(&models.Signal{}))
	assert.True(t, db.Migrator().HasColumn(&models.Signal{}, "impact_score"))
	assert.True(t, db.Migrator().HasColumn(&models.Signal{}, "topic_cluster"))
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing-dir", "signals.db"))
	assert.Error(t, err)
}
