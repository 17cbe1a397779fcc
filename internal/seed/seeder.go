package seed

import (
	"fmt"
	"log"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates demo data creation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Child tables go first so foreign key
// constraints hold throughout.
func (s *Seeder) ClearAll() error {
	tables := []string{"comments", "likes", "posts", "experiences", "educations", "profiles", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// SeedIdentities creates n users, each with a developer profile.
func (s *Seeder) SeedIdentities(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users with profiles", len(users))
	return users, nil
}

// SeedEngagement creates numPosts posts spread across the users, then
// sprinkles likes and comments over them from random users.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) error {
	if len(users) == 0 {
		return fmt.Errorf("no users to seed posts for")
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rand.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}

	likes, comments := 0, 0
	for _, post := range posts {
		for i := 0; i < s.factory.rand.Intn(len(users)); i++ {
			liker := users[s.factory.rand.Intn(len(users))]
			if err := s.factory.CreateLike(liker, post); err != nil {
				return err
			}
			likes++
		}
		for i := 0; i < s.factory.rand.Intn(4); i++ {
			commenter := users[s.factory.rand.Intn(len(users))]
			if err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
			comments++
		}
	}

	log.Printf("Seeded %d posts, %d likes, %d comments", len(posts), likes, comments)
	return nil
}
