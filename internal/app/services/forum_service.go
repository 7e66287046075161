package services

import (
	"context"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/repositories"
)

// ForumService handles the community forum
type ForumService struct {
	forumRepo *repositories.ForumRepository
}

// NewForumService creates a new ForumService
func NewForumService(forumRepo *repositories.ForumRepository) *ForumService {
	return &ForumService{forumRepo: forumRepo}
}

// CreatePost publishes a new post by the authenticated user
func (s *ForumService) CreatePost(ctx context.Context, authorID int64, req *dto.CreatePostRequest) (*models.ForumPost, error) {
	id, err := s.forumRepo.CreatePost(ctx, &models.ForumPost{
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		return nil, err
	}
	return s.forumRepo.GetPost(ctx, id)
}

// GetPost retrieves a post with its comments
func (s *ForumService) GetPost(ctx context.Context, id int64) (*models.ForumPost, []*models.ForumComment, error) {
	post, err := s.forumRepo.GetPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.forumRepo.ListComments(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// ListPosts retrieves posts newest first
func (s *ForumService) ListPosts(ctx context.Context, offset uint64, limit int) ([]*models.ForumPost, int64, error) {
	return s.forumRepo.ListPosts(ctx, offset, limit)
}

// DeletePost removes a post. Authors delete their own; admins delete any.
func (s *ForumService) DeletePost(ctx context.Context, id, requesterID int64, isAdmin bool) error {
	authorID := requesterID
	if isAdmin {
		authorID = 0
	}
	return s.forumRepo.DeletePost(ctx, id, authorID)
}

// CreateComment replies to an existing post
func (s *ForumService) CreateComment(ctx context.Context, postID, authorID int64, req *dto.CreateCommentRequest) ([]*models.ForumComment, error) {
	if _, err := s.forumRepo.CreateComment(ctx, &models.ForumComment{
		PostID:   postID,
		AuthorID: authorID,
		Body:     req.Body,
	}); err != nil {
		return nil, err
	}
	return s.forumRepo.ListComments(ctx, postID)
}
