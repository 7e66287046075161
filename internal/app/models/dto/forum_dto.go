package dto

import (
	"time"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
)

// CreatePostRequest creates a forum post
type CreatePostRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=5000"`
}

// CreateCommentRequest replies to a forum post
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// ForumPostResponse is the API view of a forum post
type ForumPostResponse struct {
	ID           int64     `json:"id"`
	AuthorID     int64     `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ForumCommentResponse is the API view of a comment
type ForumCommentResponse struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ForumPostListResponse is a paginated list of posts
type ForumPostListResponse struct {
	Posts      []ForumPostResponse `json:"posts"`
	Pagination PaginationInfo      `json:"pagination"`
}

// FromForumPost converts a post model into its API view
func FromForumPost(p *models.ForumPost) ForumPostResponse {
	if p == nil {
		return ForumPostResponse{}
	}
	return ForumPostResponse{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		AuthorName:   p.AuthorName,
		Title:        p.Title,
		Body:         p.Body,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}

// FromForumComment converts a comment model into its API view
func FromForumComment(c *models.ForumComment) ForumCommentResponse {
	if c == nil {
		return ForumCommentResponse{}
	}
	return ForumCommentResponse{
		ID:         c.ID,
		PostID:     c.PostID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}
