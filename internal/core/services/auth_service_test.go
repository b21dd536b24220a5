package services

import (
	"context"
	"testing"

	"luxpackers-admin/internal/adapters/persistence/models"
	"luxpackers-admin/internal/adapters/persistence/repositories"
	"luxpackers-admin/internal/core/domain"
	"luxpackers-admin/internal/pkg/password"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, username, plain, role string) models.EmployeeAccess {
	t.Helper()

	hash := ""
	if plain != "" {
		var err error
		hash, err = password.Hash(plain)
		require.NoError(t, err)
	}

	employee := models.EmployeeAccess{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	seeded := seedEmployee(t, db, "agent1", "hunter2", "agent")

	svc := NewAuthService(repositories.NewEmployeeRepository(db))

	sess, err := svc.Login(context.Background(), &LoginInput{Username: "agent1", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, sess.ID)
	assert.Equal(t, "agent1", sess.Username)
	assert.Equal(t, "agent", sess.Role)
}

func TestLoginUnknownUsername(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "agent1", "hunter2", "agent")

	svc := NewAuthService(repositories.NewEmployeeRepository(db))

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: "hunter2"})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	// The password is irrelevant when the username is unknown.
	_, err = svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
}

func TestLoginIncorrectPassword(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "agent1", "hunter2", "agent")

	svc := NewAuthService(repositories.NewEmployeeRepository(db))

	_, err := svc.Login(context.Background(), &LoginInput{Username: "agent1", Password: "hunter3"})
	assert.ErrorIs(t, err, domain.ErrIncorrectPassword)
}

func TestLoginMisconfiguredAccount(t *testing.T) {
	db := newTestDB(t)
	// Credential row with no password hash set: a data-setup bug,
	// distinct from a wrong password.
	seedEmployee(t, db, "broken", "", "agent")

	svc := NewAuthService(repositories.NewEmployeeRepository(db))

	_, err := svc.Login(context.Background(), &LoginInput{Username: "broken", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrMisconfiguredAccount)
	assert.NotErrorIs(t, err, domain.ErrIncorrectPassword)
}
