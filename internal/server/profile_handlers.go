// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"devconnect/internal/models"
	"devconnect/internal/service"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetProfiles handles GET /api/profiles, listing all profiles with their
// owners' name and avatar.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByOwner handles GET /api/profiles/owner/:id
func (s *Server) GetProfileByOwner(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByOwner(c.Context(), models.UserID(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByOwner(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// profileRequest is the wire shape of a profile upsert. Absent fields
// stay nil and are never applied, which is what makes the request a
// patch rather than a replacement.
type profileRequest struct {
	Status         *string `json:"status"`
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

// UpsertMyProfile handles POST /api/profiles/me. Creation and update are
// the same request; status and skills are always required.
func (s *Server) UpsertMyProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var v validation.Errors
	if req.Status == nil || *req.Status == "" {
		v.Add("status", "Status is required")
	}
	if req.Skills == nil || *req.Skills == "" {
		v.Add("skills", "Skills is required")
	}
	if err := v.Err(); err != nil {
		return respondError(c, err)
	}

	patch := service.ProfilePatch{
		Status:         req.Status,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Social: service.SocialPatch{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	}

	profile, err := s.profileService.Upsert(c.Context(), currentUserID(c), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteMyAccount handles DELETE /api/profiles/me, removing the caller's
// profile and identity together.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteOwner(c.Context(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

type experienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// AddExperience handles PUT /api/profiles/me/experience. The new entry
// appears at the front of the collection.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var v validation.Errors
	v.Require("title", req.Title, "Title is required")
	v.Require("company", req.Company, "Company is required")
	if req.From.IsZero() {
		v.Add("from", "From date is required")
	}
	if err := v.Err(); err != nil {
		return respondError(c, err)
	}

	profile, err := s.profileService.AddExperience(c.Context(), currentUserID(c), service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// RemoveExperience handles DELETE /api/profiles/me/experience/:entryId
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	entryID, err := s.parseID(c, "entryId", "entry ID")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveExperience(c.Context(), currentUserID(c), entryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

type educationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// AddEducation handles PUT /api/profiles/me/education. The new entry
// appears at the front of the collection.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var v validation.Errors
	v.Require("school", req.School, "School is required")
	v.Require("degree", req.Degree, "Degree is required")
	v.Require("fieldofstudy", req.FieldOfStudy, "Field of study is required")
	if req.From.IsZero() {
		v.Add("from", "From date is required")
	}
	if err := v.Err(); err != nil {
		return respondError(c, err)
	}

	profile, err := s.profileService.AddEducation(c.Context(), currentUserID(c), service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// RemoveEducation handles DELETE /api/profiles/me/education/:entryId
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	entryID, err := s.parseID(c, "entryId", "entry ID")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveEducation(c.Context(), currentUserID(c), entryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
