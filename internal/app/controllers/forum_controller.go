package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/services"
	"github.com/hostelmate/hostelmate-backend/internal/middleware"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/helpers"
)

// ForumController handles community forum endpoints
type ForumController struct {
	forumService *services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService *services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// CreatePost handles publishing a post
// @Summary Create a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=dto.ForumPostResponse}
// @Router /forum/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	post, err := c.forumService.CreatePost(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromForumPost(post)))
}

// ListPosts handles listing posts
// @Summary List forum posts
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ForumPostListResponse}
// @Router /forum/posts [get]
func (c *ForumController) ListPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	posts, total, err := c.forumService.ListPosts(ctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ForumPostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, dto.FromForumPost(post))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ForumPostListResponse{
		Posts:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// GetPost handles retrieving one post with its comments
// @Summary Get a forum post
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /forum/posts/{id} [get]
func (c *ForumController) GetPost(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	post, comments, err := c.forumService.GetPost(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	commentItems := make([]dto.ForumCommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentItems = append(commentItems, dto.FromForumComment(comment))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"post":     dto.FromForumPost(post),
		"comments": commentItems,
	}))
}

// DeletePost handles removing a post
// @Summary Delete a forum post
// @Description Authors delete their own posts; admins can delete any.
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Router /forum/posts/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	err := c.forumService.DeletePost(ctx, id, middleware.GetUserID(ctx), middleware.IsAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Post deleted"}))
}

// CreateComment handles replying to a post
// @Summary Comment on a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=[]dto.ForumCommentResponse}
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /forum/posts/{id}/comments [post]
func (c *ForumController) CreateComment(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	comments, err := c.forumService.CreateComment(ctx, id, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ForumCommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, dto.FromForumComment(comment))
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(items))
}
