package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProfilesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  full_name TEXT,
  role TEXT NOT NULL DEFAULT 'user',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec(`DELETE FROM profiles`).Error)
	return db
}

func TestRepositoryCreateDefaultsRole(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)

	accountID := uuid.New()
	created, err := repo.Create(context.Background(), CreateProfileDTO{AccountID: accountID})
	require.NoError(t, err)
	assert.Equal(t, accountID, created.ID)
	assert.Equal(t, enums.RoleUser, created.Role)
	assert.Nil(t, created.FullName)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListOrderedByCreation(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)

	now := time.Now().UTC()
	first := uuid.New()
	second := uuid.New()
	seedProfile(t, db, first, "First User", "user", now.Add(-time.Hour))
	seedProfile(t, db, second, "Second User", "admin", now)

	list, err := repo.ListOrderedByCreation(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, second, list[1].ID)
}

func TestRepositoryUpdateFullNameAndRole(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	seedProfile(t, db, id, "Before", "user", time.Now().UTC())

	name := "After"
	require.NoError(t, repo.UpdateFullNameAndRole(context.Background(), id, &name, enums.RoleAdmin))

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, found.FullName)
	assert.Equal(t, "After", *found.FullName)
	assert.Equal(t, enums.RoleAdmin, found.Role)
}

func TestRepositoryUpdateRole(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	seedProfile(t, db, id, "Role Change", "user", time.Now().UTC())

	require.NoError(t, repo.UpdateRole(context.Background(), id, enums.RoleAdmin))

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, enums.RoleAdmin, found.Role)
}

func seedProfile(t *testing.T, db *gorm.DB, id uuid.UUID, name, role string, created time.Time) {
	t.Helper()
	require.NoError(t, db.Exec(
		`INSERT INTO profiles (id, full_name, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id.String(), name, role, created, created,
	).Error)
}
