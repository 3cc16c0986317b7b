package users

import (
	"context"
	"testing"
	"time"

	"github.com/eport-labs/asset-manager-backend/internal/profiles"
	"github.com/eport-labs/asset-manager-backend/pkg/config"
	"github.com/eport-labs/asset-manager-backend/pkg/db"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  full_name TEXT,
  role TEXT NOT NULL DEFAULT 'user',
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	require.NoError(t, conn.Exec(`DROP TRIGGER IF EXISTS block_profile_updates`).Error)
	require.NoError(t, conn.Exec(`DELETE FROM profiles`).Error)
	require.NoError(t, conn.Exec(`DELETE FROM accounts`).Error)
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		DB:             db.NewWithConn(conn),
		PasswordConfig: config.PasswordConfig{},
	})
	require.NoError(t, err)
	return svc
}

func TestServiceCreateUserCompleted(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	outcome, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "New.Admin@Example.com",
		Password: "strong-password",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, CreateUserCompleted, outcome.Status)
	require.NotNil(t, outcome.AccountID)

	repo := profiles.NewRepository(conn)
	profile, err := repo.FindByID(context.Background(), *outcome.AccountID)
	require.NoError(t, err)
	require.NotNil(t, profile.FullName)
	assert.Equal(t, "new.admin@example.com", *profile.FullName)
	assert.Equal(t, enums.RoleAdmin, profile.Role)
}

func TestServiceCreateUserConflict(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "taken@example.com",
		Password: "strong-password",
		Role:     "user",
	})
	require.NoError(t, err)

	outcome, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "TAKEN@example.com",
		Password: "another-password",
		Role:     "user",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, CreateUserFailed, outcome.Status)
	assert.Equal(t, "account", outcome.Stage)
}

func TestServiceCreateUserPartialFailure(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	// the second phase updates the profile; blocking updates leaves the
	// account behind with its default profile
	require.NoError(t, conn.Exec(`
CREATE TRIGGER block_profile_updates BEFORE UPDATE ON profiles
BEGIN
  SELECT RAISE(ABORT, 'profile updates disabled');
END;`).Error)

	outcome, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "partial@example.com",
		Password: "strong-password",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, CreateUserPartiallyCompleted, outcome.Status)
	assert.Equal(t, "profile", outcome.Stage)
	require.NotNil(t, outcome.AccountID)
	assert.NotEmpty(t, outcome.Warning)

	// phase one survived: the default profile exists with the user role
	repo := profiles.NewRepository(conn)
	profile, err := repo.FindByID(context.Background(), *outcome.AccountID)
	require.NoError(t, err)
	assert.Equal(t, enums.RoleUser, profile.Role)
	assert.Nil(t, profile.FullName)
}

func TestServiceUpdateRoleSelfDemotionBlocked(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	admin := seedProfile(t, conn, "admin@example.com", "admin", time.Now().UTC())

	_, err := svc.UpdateRole(context.Background(), admin, admin, UpdateRoleRequest{Role: "user"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	// keeping admin on yourself is a no-op, not a violation
	updated, err := svc.UpdateRole(context.Background(), admin, admin, UpdateRoleRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, enums.RoleAdmin, updated.Role)
}

func TestServiceUpdateRolePromotesTarget(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	admin := seedProfile(t, conn, "admin@example.com", "admin", time.Now().UTC())
	target := seedProfile(t, conn, "member@example.com", "user", time.Now().UTC())

	updated, err := svc.UpdateRole(context.Background(), admin, target, UpdateRoleRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, enums.RoleAdmin, updated.Role)
}

func TestServiceUpdateRoleMissingTarget(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	admin := seedProfile(t, conn, "admin@example.com", "admin", time.Now().UTC())

	_, err := svc.UpdateRole(context.Background(), admin, uuid.New(), UpdateRoleRequest{Role: "user"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceListUsersOldestFirst(t *testing.T) {
	conn := setupUsersTestDB(t)
	svc := newTestService(t, conn)

	now := time.Now().UTC()
	first := seedProfile(t, conn, "first@example.com", "user", now.Add(-time.Hour))
	second := seedProfile(t, conn, "second@example.com", "admin", now)

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, second, list[1].ID)
}

func seedProfile(t *testing.T, conn *gorm.DB, name, role string, created time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, conn.Exec(
		`INSERT INTO profiles (id, full_name, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id.String(), name, role, created, created,
	).Error)
	return id
}
