package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(Config{Driver: DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestOpenSharesInMemoryDatabase(t *testing.T) {
	db, err := Open(Config{SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, db.Exec("CREATE TABLE wheels (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("INSERT INTO wheels (id) VALUES (1)").Error)

	var count int64
	require.NoError(t, db.Table("wheels").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "bikeshop.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("bikeshop.db"))
	assert.Equal(t, "file:test.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:test.db?cache=shared"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	db, err := Open(Config{SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, db.Exec("CREATE TABLE frames (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("CREATE TABLE forks (id INTEGER PRIMARY KEY, frame_id INTEGER NOT NULL REFERENCES frames(id) ON DELETE RESTRICT)").Error)
	require.NoError(t, db.Exec("INSERT INTO frames (id) VALUES (1)").Error)
	require.NoError(t, db.Exec("INSERT INTO forks (id, frame_id) VALUES (1, 1)").Error)

	err = db.Exec("DELETE FROM frames WHERE id = 1").Error
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("delete frame: %w", err)))

	err = db.Exec("INSERT INTO forks (id, frame_id) VALUES (2, 9)").Error
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsForeignKeyViolation(errors.New("disk I/O error")))
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
}
