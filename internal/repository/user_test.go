package repository

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("CreateAndGetByID", func(t *testing.T) {
		user := &models.User{Name: "alice", Email: "alice@example.com", Password: "hashed"}
		require.NoError(t, repo.Create(ctx, user))
		assert.NotZero(t, user.ID)

		fetched, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", fetched.Name)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Name: "other alice", Email: "alice@example.com", Password: "hashed"})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		fetched, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "alice", fetched.Name)
	})

	t.Run("GetByEmailMissingReturnsNil", func(t *testing.T) {
		fetched, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("Delete", func(t *testing.T) {
		user := &models.User{Name: "bob", Email: "bob@example.com", Password: "hashed"}
		require.NoError(t, repo.Create(ctx, user))

		require.NoError(t, repo.Delete(ctx, user.ID))

		_, err := repo.GetByID(ctx, user.ID)
		assertCode(t, err, models.CodeNotFound)
	})
}
