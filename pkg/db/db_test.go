package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matt-steen/ball-in-court/pkg/db"
	"github.com/stretchr/testify/assert"
)

func getDB(t *testing.T, assert *assert.Assertions) (*db.Database, string) {
	filename := filepath.Join(t.TempDir(), "test_new_database.sqlite")

	database, err := db.NewDatabase(context.Background(), filename)
	assert.NotNil(database)
	assert.Nil(err)

	return database, filename
}

func TestNewDatabaseBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, err := db.NewDatabase(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
	assert.Nil(database)
	assert.NotNil(err)
	assert.Contains(err.Error(), "error running base sql: unable to open database file")
}

func TestLoadMissingKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, _ := getDB(t, assert)
	defer database.Close()

	value, ok, err := database.Load(context.Background(), "nothing-here")
	assert.Nil(err)
	assert.False(ok)
	assert.Nil(value)
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, _ := getDB(t, assert)
	defer database.Close()

	ctx := context.Background()

	assert.Nil(database.Save(ctx, "tasks", []byte(`[1]`)))
	assert.Nil(database.Save(ctx, "tasks", []byte(`[1,2]`)))
	assert.Nil(database.Save(ctx, "contacts", []byte(`[]`)))

	value, ok, err := database.Load(ctx, "tasks")
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(`[1,2]`, string(value))

	keys, err := database.Keys(ctx)
	assert.Nil(err)
	assert.Equal([]string{"contacts", "tasks"}, keys)
}

func TestNewDatabaseIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, filename := getDB(t, assert)
	ctx := context.Background()

	assert.Nil(database.Save(ctx, "tasks", []byte(`["kept"]`)))
	assert.Nil(database.Close())

	database2, err := db.NewDatabase(ctx, filename)
	assert.NotNil(database2)
	assert.Nil(err)

	defer database2.Close()

	value, ok, err := database2.Load(ctx, "tasks")
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(`["kept"]`, string(value))
	assert.Equal(filename, database2.Filename())
}
