package service

import (
	"context"
	"errors"
	"strings"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// PostService manages posts and their like and comment collections.
// Author name and avatar are captured as snapshots at write time, so
// later account changes do not rewrite existing posts or comments.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a PostService using the given repositories.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create stores a new post authored by userID, stamping the author's
// current name and avatar onto it.
func (s *PostService) Create(ctx context.Context, userID models.UserID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// List returns posts newest first.
func (s *PostService) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

// Get returns a single post with its likes and comments.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Delete removes a post. Only the author may delete it; anyone else is
// rejected before the write happens.
func (s *PostService) Delete(ctx context.Context, userID models.UserID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records that userID liked the post. A second like from the same
// user is rejected; the uniqueness check and the insert are one atomic
// statement, so concurrent duplicates cannot slip through.
func (s *PostService) Like(ctx context.Context, userID models.UserID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		if isConflict(err) {
			middleware.LikeConflicts.WithLabelValues("like").Inc()
		}
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// Unlike removes userID's like from the post. Removing a like that was
// never recorded is rejected.
func (s *PostService) Unlike(ctx context.Context, userID models.UserID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		if isConflict(err) {
			middleware.LikeConflicts.WithLabelValues("unlike").Inc()
		}
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// AddComment attaches a comment to the post, stamped with the commenter's
// current name and avatar, and returns the refreshed post.
func (s *PostService) AddComment(ctx context.Context, userID models.UserID, postID uint, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// DeleteComment removes a comment from the post. Only the comment's
// author may remove it. The delete itself is conditioned on authorship,
// so a stale read cannot let a non-author through.
func (s *PostService) DeleteComment(ctx context.Context, userID models.UserID, postID, commentID uint) (*models.Post, error) {
	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	if err := s.postRepo.DeleteCommentByAuthor(ctx, postID, commentID, userID); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

func isConflict(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeConflict
}
