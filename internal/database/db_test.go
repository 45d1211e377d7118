package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adalicious/internal/models"
)

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestMigrateAndSeedAreIdempotent(t *testing.T) {
	db, err := Open("sqlite3", filepath.Join(t.TempDir(), "adalicious_test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	require.NotZero(t, count)
	seeded := count

	// Running the bootstrap again must not duplicate the menu.
	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))

	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Equal(t, seeded, count)
}

func TestUniqueFirstnameIndex(t *testing.T) {
	db, err := Open("sqlite3", filepath.Join(t.TempDir(), "adalicious_test.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&models.Customer{Firstname: "Alice"}).Error)
	// The storage layer, not application code, is the backstop against
	// duplicate identities.
	assert.Error(t, db.Create(&models.Customer{Firstname: "Alice"}).Error)
}
