// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/avatar"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL",
	"React", "Vue", "PostgreSQL", "Redis", "Docker", "Kubernetes",
	"gRPC", "GraphQL", "Terraform", "AWS",
}

var statusPool = []string{
	"Developer", "Senior Developer", "Student or Learning",
	"Instructor or Teacher", "Manager", "Intern",
}

// CreateUser constructs and persists a sample identity. All seeded users
// share the password "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := gofakeit.Email()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   avatar.URL(email),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreateProfile builds and persists a developer profile for the user,
// with a few experience and education entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	skills := f.pickSkills(2 + f.rand.Intn(5))

	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Status:         statusPool[f.rand.Intn(len(statusPool))],
		Skills:         skills,
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + strings.ToLower(gofakeit.Username()),
			Linkedin: "https://linkedin.com/in/" + strings.ToLower(gofakeit.Username()),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}

	for i := 0; i < 1+f.rand.Intn(3); i++ {
		if err := f.createExperience(profile); err != nil {
			return nil, err
		}
	}
	for i := 0; i < 1+f.rand.Intn(2); i++ {
		if err := f.createEducation(profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

func (f *Factory) createExperience(profile *models.Profile) error {
	from := f.pastDate(8)
	entry := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Description: gofakeit.Sentence(10),
	}
	if f.rand.Intn(3) == 0 {
		entry.Current = true
	} else {
		to := from.Add(time.Duration(1+f.rand.Intn(36)) * 30 * 24 * time.Hour)
		entry.To = &to
	}
	if err := f.db.Create(entry).Error; err != nil {
		return fmt.Errorf("seed experience: %w", err)
	}
	return nil
}

func (f *Factory) createEducation(profile *models.Profile) error {
	from := f.pastDate(12)
	to := from.Add(time.Duration(3+f.rand.Intn(2)) * 365 * 24 * time.Hour)
	entry := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(8),
	}
	if err := f.db.Create(entry).Error; err != nil {
		return fmt.Errorf("seed education: %w", err)
	}
	return nil
}

// CreatePost constructs and persists a post authored by the user, stamped
// with the author's name and avatar, and spread over the past 90 days.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Text:      gofakeit.Paragraph(1, 2, 8, " "),
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: f.pastTimestamp(90),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateLike records a like; a duplicate like for the same user and post
// is silently skipped.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	res := f.db.Exec(
		"INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, ?) ON CONFLICT (user_id, post_id) DO NOTHING",
		user.ID, post.ID, time.Now().UTC(),
	)
	if res.Error != nil {
		return fmt.Errorf("seed like: %w", res.Error)
	}
	return nil
}

// CreateComment attaches a comment from the user to the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) error {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(10),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return fmt.Errorf("seed comment: %w", err)
	}
	return nil
}

func (f *Factory) pickSkills(n int) []string {
	picked := make([]string, 0, n)
	perm := f.rand.Perm(len(skillPool))
	for i := 0; i < n && i < len(perm); i++ {
		picked = append(picked, skillPool[perm[i]])
	}
	return picked
}

func (f *Factory) pastDate(maxYears int) time.Time {
	days := f.rand.Intn(maxYears * 365)
	return time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}

func (f *Factory) pastTimestamp(maxDays int) time.Time {
	back := time.Duration(f.rand.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}
