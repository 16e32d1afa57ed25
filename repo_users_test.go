package login_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	login "github.com/ram-0209/go-login"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.NewCreateTable().
		Model((*login.User)(nil)).
		IfNotExists().
		Exec(context.Background())
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestUsersRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := login.NewUsersRepository(setupTestDB(t))

	t.Run("missing user is a not-found error", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody")
		require.Error(t, err)
		assert.ErrorIs(t, err, login.ErrIdentityNotFound)
		assert.True(t, login.IsRecordNotFound(err))
	})

	t.Run("returns the stored record", func(t *testing.T) {
		created, err := repo.Create(ctx, &login.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
			IsActive:     true,
		})
		require.NoError(t, err)
		require.Greater(t, created.ID, int64(0))

		found, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "alice@example.com", found.Email)
		assert.True(t, found.IsActive)
	})
}

func TestUsersRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := login.NewUsersRepository(setupTestDB(t))

	first, err := repo.Create(ctx, &login.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsActive:     true,
	})
	require.NoError(t, err)

	t.Run("duplicate username resolves to the committed row", func(t *testing.T) {
		second, err := repo.Create(ctx, &login.User{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "other-hash",
			IsActive:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "alice@example.com", second.Email)
	})
}

func TestUsersRepository_GetOrProvision(t *testing.T) {
	ctx := context.Background()
	repo := login.NewUsersRepository(setupTestDB(t))

	record := &login.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsActive:     true,
	}

	first, err := repo.GetOrProvision(ctx, record)
	require.NoError(t, err)
	require.Greater(t, first.ID, int64(0))

	second, err := repo.GetOrProvision(ctx, &login.User{
		Username:     "alice",
		Email:        "ignored@example.com",
		PasswordHash: "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice@example.com", second.Email)
}

func TestRepositoryManager(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	manager := login.NewRepositoryManager(db)

	require.NoError(t, manager.Validate())
	assert.NotPanics(t, manager.MustValidate)

	t.Run("runs work in a transaction", func(t *testing.T) {
		err := manager.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			_, err := manager.Users().CreateTx(ctx, tx, &login.User{
				Username:     "txuser",
				Email:        "txuser@example.com",
				PasswordHash: "hash",
				IsActive:     true,
			})
			return err
		})
		require.NoError(t, err)

		found, err := manager.Users().GetByUsername(ctx, "txuser")
		require.NoError(t, err)
		assert.Equal(t, "txuser", found.Username)
	})
}
