package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a feed entry. Name and Avatar are snapshots of the author's data
// captured at creation time; later profile edits do not update them.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID UserID `gorm:"not null;index" json:"user_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`

	// LikesCount and CommentsCount are not persisted; computed at query time.
	LikesCount    int `gorm:"->" json:"likes_count"`
	CommentsCount int `gorm:"->" json:"comments_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like marks that a user liked a post. The (user_id, post_id) pair is
// unique; the conditional insert in the repository relies on that index.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    UserID    `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a reply on a post. Name and Avatar are creation-time snapshots
// of the comment author, same as on Post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    UserID    `gorm:"not null" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
