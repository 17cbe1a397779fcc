package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds the free-form career data a user publishes. Exactly one
// Profile exists per user (unique index on UserID).
type Profile struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         UserID         `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"user"`
	Company        string         `json:"company"`
	Website        string         `json:"website"`
	Location       string         `json:"location"`
	Status         string         `gorm:"not null" json:"status"`
	Bio            string         `gorm:"type:text" json:"bio"`
	GithubUsername string         `json:"github_username"`
	Skills         []string       `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks    `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience   `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education    `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// SocialLinks are the optional social network URLs embedded in a Profile.
// Each field merges independently on upsert.
type SocialLinks struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Experience is a work history entry owned by a Profile. Entries are read
// newest-insert-first (ordered by descending ID).
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Education is a schooling entry owned by a Profile, same ordering contract
// as Experience.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"field_of_study"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
}
