package repository

import (
	"context"
	"io"
	"testing"

	authdomain "mesto-backend/internal/auth/domain"
	"mesto-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.NewConnection("file:"+uuid.NewString()+"?mode=memory&cache=shared", log)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, repo UserRepository, email string) *authdomain.User {
	t.Helper()

	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	user := &authdomain.User{Email: email, Password: hash}
	user.ApplyDefaults()
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
