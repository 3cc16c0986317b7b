package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAccountsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS accounts (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec(`DELETE FROM accounts`).Error)
	return db
}

func TestRepositoryCreateAndFindByEmail(t *testing.T) {
	db := setupAccountsTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Create(context.Background(), CreateAccountDTO{
		Email:        "owner@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	found, err := repo.FindByEmail(context.Background(), "OWNER@example.com")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Nil(t, found.LastLoginAt)
}

func TestRepositoryFindByEmailMissing(t *testing.T) {
	db := setupAccountsTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateLastLogin(t *testing.T) {
	db := setupAccountsTestDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO accounts (id, email, password_hash) VALUES (?, ?, ?)`,
		id.String(), "login@example.com", "hash",
	).Error)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(context.Background(), id, at))

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.WithinDuration(t, at, *found.LastLoginAt, time.Second)
}
