package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/combokit/internal/database/repository"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := openMigrated(t)
	require.NoError(t, RunMigrations(db))
	require.NoError(t, db.Ping(), "migrating must not close the handle")
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	db := openMigrated(t)

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	repo := repository.NewItemRepo(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	want := 0
	for _, labels := range defaultItems {
		want += len(labels)
	}
	require.Equal(t, want, n)

	apple, err := repo.Get(ctx, ItemID("Fruit", "Apple"))
	require.NoError(t, err)
	require.NotNil(t, apple)
	require.Equal(t, "Apple", apple.Label)
}

func TestSeedDefaultsIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	db := openMigrated(t)
	_, err := db.Exec(`
	CREATE TRIGGER reject_kale BEFORE INSERT ON items WHEN NEW.label = 'Kale'
	BEGIN SELECT RAISE(ABORT, 'no kale'); END;
	`)
	require.NoError(t, err)

	err = SeedDefaults(ctx, db)
	require.ErrorContains(t, err, "seed Vegetables/Kale")

	n, err := repository.NewItemRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "a failed seed leaves no rows behind")
}

var errBoom = errors.New("boom")

func TestWithTxRollsBack(t *testing.T) {
	db := openMigrated(t)
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items(id, label) VALUES ('x', 'X')`); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	n, err := repository.NewItemRepo(db).Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}
