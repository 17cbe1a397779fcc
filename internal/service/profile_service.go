// Package service implements the business operations on top of the
// repository layer.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService manages profile upserts, cascading deletion, and the
// experience/education collections.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService returns a ProfileService using the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// SocialPatch carries the optional social link updates of a ProfilePatch.
// Each field merges independently; a nil field never clears a stored value.
type SocialPatch struct {
	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

// ProfilePatch is an explicit partial update: nil fields are left
// untouched, set fields overwrite. Skills arrive as one comma-separated
// string and are parsed before storage.
type ProfilePatch struct {
	Status         *string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Skills         *string
	Social         SocialPatch
}

// ExperienceInput describes a new work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput describes a new schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ParseSkills splits a comma-separated skill list, trimming surrounding
// whitespace from each element and dropping empty ones. Order is preserved.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func applyPatch(profile *models.Profile, patch ProfilePatch) {
	if patch.Status != nil {
		profile.Status = *patch.Status
	}
	if patch.Company != nil {
		profile.Company = *patch.Company
	}
	if patch.Website != nil {
		profile.Website = *patch.Website
	}
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}
	if patch.GithubUsername != nil {
		profile.GithubUsername = *patch.GithubUsername
	}
	if patch.Skills != nil {
		profile.Skills = ParseSkills(*patch.Skills)
	}
	if patch.Social.Youtube != nil {
		profile.Social.Youtube = *patch.Social.Youtube
	}
	if patch.Social.Twitter != nil {
		profile.Social.Twitter = *patch.Social.Twitter
	}
	if patch.Social.Facebook != nil {
		profile.Social.Facebook = *patch.Social.Facebook
	}
	if patch.Social.Linkedin != nil {
		profile.Social.Linkedin = *patch.Social.Linkedin
	}
	if patch.Social.Instagram != nil {
		profile.Social.Instagram = *patch.Social.Instagram
	}
}

func isNotFound(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeNotFound
}

// Upsert merges the patch into the owner's profile, creating the profile
// when it does not exist yet. Both branches succeed the same way.
func (s *ProfileService) Upsert(ctx context.Context, ownerID models.UserID, patch ProfilePatch) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	switch {
	case err == nil:
		applyPatch(profile, patch)
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	case isNotFound(err):
		profile = &models.Profile{UserID: ownerID}
		applyPatch(profile, patch)
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.profileRepo.GetByOwner(ctx, ownerID)
}

// GetByOwner returns the profile belonging to ownerID.
func (s *ProfileService) GetByOwner(ctx context.Context, ownerID models.UserID) (*models.Profile, error) {
	return s.profileRepo.GetByOwner(ctx, ownerID)
}

// List returns all profiles with their owners' name and avatar attached.
func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// DeleteOwner removes the caller's profile and account in one operation,
// profile first. Posts written by the owner are not touched.
func (s *ProfileService) DeleteOwner(ctx context.Context, ownerID models.UserID) error {
	return s.profileRepo.DeleteCascade(ctx, ownerID)
}

// AddExperience prepends a work history entry to the caller's profile and
// returns the refreshed profile.
func (s *ProfileService) AddExperience(ctx context.Context, ownerID models.UserID, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entry := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, ownerID, entry); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByOwner(ctx, ownerID)
}

// RemoveExperience deletes the entry with the given synthetic id from the
// caller's own profile. Entries on other profiles are unreachable because
// lookup is scoped by the caller's profile id.
func (s *ProfileService) RemoveExperience(ctx context.Context, ownerID models.UserID, entryID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, ownerID, profile.ID, entryID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, ownerID)
}

// AddEducation prepends a schooling entry to the caller's profile and
// returns the refreshed profile.
func (s *ProfileService) AddEducation(ctx context.Context, ownerID models.UserID, in EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entry := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, ownerID, entry); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByOwner(ctx, ownerID)
}

// RemoveEducation deletes the entry with the given synthetic id from the
// caller's own profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, ownerID models.UserID, entryID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, ownerID, profile.ID, entryID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, ownerID)
}
