package repository

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner", "owner@example.com")

	t.Run("CreateAndGetByOwner", func(t *testing.T) {
		profile := &models.Profile{
			UserID: owner.ID,
			Status: "Developer",
			Skills: []string{"Go", "SQL"},
			Social: models.SocialLinks{Twitter: "https://twitter.com/owner"},
		}
		require.NoError(t, repo.Create(ctx, profile))

		fetched, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Developer", fetched.Status)
		assert.Equal(t, []string{"Go", "SQL"}, fetched.Skills)
		assert.Equal(t, "https://twitter.com/owner", fetched.Social.Twitter)
		assert.Equal(t, "owner", fetched.User.Name)
	})

	t.Run("CreateDuplicateRejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.Profile{UserID: owner.ID, Status: "Again"})
		assertCode(t, err, models.CodeConflict)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.GetByOwner(ctx, models.UserID(99999))
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		profile, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)

		profile.Status = "Senior Developer"
		profile.Skills = []string{"Go", "SQL", "Redis"}
		require.NoError(t, repo.Update(ctx, profile))

		fetched, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Senior Developer", fetched.Status)
		assert.Equal(t, []string{"Go", "SQL", "Redis"}, fetched.Skills)
	})

	t.Run("ExperienceNewestFirst", func(t *testing.T) {
		profile, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)

		from := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
		for _, title := range []string{"first job", "second job", "third job"} {
			entry := &models.Experience{ProfileID: profile.ID, Title: title, Company: "Acme", From: from}
			require.NoError(t, repo.AddExperience(ctx, owner.ID, entry))
		}

		fetched, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Experience, 3)
		assert.Equal(t, "third job", fetched.Experience[0].Title)
		assert.Equal(t, "second job", fetched.Experience[1].Title)
		assert.Equal(t, "first job", fetched.Experience[2].Title)
	})

	t.Run("RemoveExperiencePreservesOrder", func(t *testing.T) {
		fetched, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Experience, 3)

		// Remove the middle entry; the relative order of the rest holds.
		middle := fetched.Experience[1]
		require.NoError(t, repo.RemoveExperience(ctx, owner.ID, fetched.ID, middle.ID))

		fetched, err = repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Experience, 2)
		assert.Equal(t, "third job", fetched.Experience[0].Title)
		assert.Equal(t, "first job", fetched.Experience[1].Title)
	})

	t.Run("RemoveMissingExperience", func(t *testing.T) {
		fetched, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)

		err = repo.RemoveExperience(ctx, owner.ID, fetched.ID, 99999)
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("RemoveExperienceScopedToProfile", func(t *testing.T) {
		other := createTestUser(t, db, "other", "other@example.com")
		otherProfile := &models.Profile{UserID: other.ID, Status: "Developer"}
		require.NoError(t, repo.Create(ctx, otherProfile))

		entry := &models.Experience{ProfileID: otherProfile.ID, Title: "theirs", Company: "Acme", From: time.Now()}
		require.NoError(t, repo.AddExperience(ctx, other.ID, entry))

		// The owner cannot remove an entry belonging to another profile.
		ownerProfile, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		err = repo.RemoveExperience(ctx, owner.ID, ownerProfile.ID, entry.ID)
		assertCode(t, err, models.CodeNotFound)

		fetched, err := repo.GetByOwner(ctx, other.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Experience, 1)
	})

	t.Run("EducationNewestFirst", func(t *testing.T) {
		profile, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)

		from := time.Date(2012, 9, 1, 0, 0, 0, 0, time.UTC)
		for _, school := range []string{"old school", "new school"} {
			entry := &models.Education{ProfileID: profile.ID, School: school, Degree: "BSc", FieldOfStudy: "CS", From: from}
			require.NoError(t, repo.AddEducation(ctx, owner.ID, entry))
		}

		fetched, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Education, 2)
		assert.Equal(t, "new school", fetched.Education[0].School)
		assert.Equal(t, "old school", fetched.Education[1].School)

		require.NoError(t, repo.RemoveEducation(ctx, owner.ID, fetched.ID, fetched.Education[0].ID))
		fetched, err = repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Education, 1)
		assert.Equal(t, "old school", fetched.Education[0].School)
	})

	t.Run("List", func(t *testing.T) {
		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		for _, p := range profiles {
			assert.NotEmpty(t, p.User.Name)
		}
	})

	t.Run("DeleteCascade", func(t *testing.T) {
		userRepo := NewUserRepository(db)
		postRepo := NewPostRepository(db)

		victim := createTestUser(t, db, "victim", "victim@example.com")
		require.NoError(t, repo.Create(ctx, &models.Profile{UserID: victim.ID, Status: "Developer"}))
		post := &models.Post{UserID: victim.ID, Text: "survives deletion", Name: victim.Name}
		require.NoError(t, postRepo.Create(ctx, post))

		require.NoError(t, repo.DeleteCascade(ctx, victim.ID))

		_, err := repo.GetByOwner(ctx, victim.ID)
		assertCode(t, err, models.CodeNotFound)
		_, err = userRepo.GetByID(ctx, victim.ID)
		assertCode(t, err, models.CodeNotFound)

		// The author's posts are left in place.
		fetched, err := postRepo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "survives deletion", fetched.Text)
	})
}
