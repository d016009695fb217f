package handlers

import (
	"atlantic-api/internal/db"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BlogHandler handles blog post operations
type BlogHandler struct {
	common *CommonServices
}

// NewBlogHandler creates a new BlogHandler instance
func NewBlogHandler(common *CommonServices) *BlogHandler {
	return &BlogHandler{common: common}
}

// BlogPostResponse represents the standardized API response for blog posts
type BlogPostResponse struct {
	ID            string   `json:"id"`
	Object        string   `json:"object"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt,omitempty"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Published     bool     `json:"published"`
	PublishedAt   int64    `json:"published_at,omitempty"`
	CreatedAt     int64    `json:"created_at"`
	UpdatedAt     int64    `json:"updated_at"`
}

// CreateBlogPostRequest represents the request body for creating a blog post
type CreateBlogPostRequest struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug" binding:"required"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" binding:"required"`
	Author        string   `json:"author" binding:"required"`
	CoverImageURL string   `json:"cover_image_url"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
}

// UpdateBlogPostRequest represents the request body for updating a blog post
type UpdateBlogPostRequest struct {
	Title         string   `json:"title,omitempty"`
	Slug          string   `json:"slug,omitempty"`
	Excerpt       string   `json:"excerpt,omitempty"`
	Content       string   `json:"content,omitempty"`
	Author        string   `json:"author,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Published     *bool    `json:"published,omitempty"`
}

// ListPublishedPosts godoc
// @Summary List published blog posts
// @Description Get published blog posts, newest first
// @Tags blog
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Param offset query int false "Number of results to skip"
// @Success 200 {array} BlogPostResponse
// @Failure 500 {object} ErrorResponse
// @Router /blog [get]
func (h *BlogHandler) ListPublishedPosts(c *gin.Context) {
	limit, offset, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	posts, err := h.common.db.ListPublishedBlogPosts(c.Request.Context(), db.ListPublishedBlogPostsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve blog posts", err)
		return
	}

	responses := make([]BlogPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = toBlogPostResponse(post)
	}
	sendList(c, responses)
}

// GetPostBySlug godoc
// @Summary Get blog post by slug
// @Description Get a published blog post by its URL slug
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} BlogPostResponse
// @Failure 404 {object} ErrorResponse
// @Router /blog/{slug} [get]
func (h *BlogHandler) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.common.db.GetBlogPostBySlug(c.Request.Context(), slug)
	if err != nil {
		handleDBError(c, err, "Blog post not found")
		return
	}

	// Unpublished posts stay invisible on the public route.
	if !post.Published {
		sendError(c, http.StatusNotFound, "Blog post not found", nil)
		return
	}

	sendSuccess(c, http.StatusOK, toBlogPostResponse(post))
}

// ListPosts godoc
// @Summary List all blog posts
// @Description Get all blog posts including drafts
// @Tags blog
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Param offset query int false "Number of results to skip"
// @Success 200 {array} BlogPostResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/blog [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	limit, offset, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	posts, err := h.common.db.ListBlogPosts(c.Request.Context(), db.ListBlogPostsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve blog posts", err)
		return
	}

	responses := make([]BlogPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = toBlogPostResponse(post)
	}
	sendList(c, responses)
}

// GetPost godoc
// @Summary Get blog post by ID
// @Description Get a blog post by its ID, published or not
// @Tags blog
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/blog/{post_id} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	postID := c.Param("post_id")
	parsedUUID, err := uuid.Parse(postID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid post ID format", err)
		return
	}

	post, err := h.common.db.GetBlogPost(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Blog post not found")
		return
	}

	sendSuccess(c, http.StatusOK, toBlogPostResponse(post))
}

// CreatePost godoc
// @Summary Create blog post
// @Description Create a new blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param post body CreateBlogPostRequest true "Post details"
// @Success 201 {object} BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/blog [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var publishedAt pgtype.Timestamptz
	if req.Published {
		publishedAt = pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
	}

	post, err := h.common.db.CreateBlogPost(c.Request.Context(), db.CreateBlogPostParams{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       textOrNullParam(req.Excerpt),
		Content:       req.Content,
		Author:        req.Author,
		CoverImageUrl: textOrNullParam(req.CoverImageURL),
		Tags:          req.Tags,
		Published:     req.Published,
		PublishedAt:   publishedAt,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create blog post", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toBlogPostResponse(post))
}

// UpdatePost godoc
// @Summary Update blog post
// @Description Update an existing blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param post body UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/blog/{post_id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("post_id")
	parsedUUID, err := uuid.Parse(postID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid post ID format", err)
		return
	}

	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := db.UpdateBlogPostParams{
		ID:   parsedUUID,
		Tags: req.Tags,
	}
	if req.Title != "" {
		params.Title = pgtype.Text{String: req.Title, Valid: true}
	}
	if req.Slug != "" {
		params.Slug = pgtype.Text{String: req.Slug, Valid: true}
	}
	if req.Excerpt != "" {
		params.Excerpt = pgtype.Text{String: req.Excerpt, Valid: true}
	}
	if req.Content != "" {
		params.Content = pgtype.Text{String: req.Content, Valid: true}
	}
	if req.Author != "" {
		params.Author = pgtype.Text{String: req.Author, Valid: true}
	}
	if req.CoverImageURL != "" {
		params.CoverImageUrl = pgtype.Text{String: req.CoverImageURL, Valid: true}
	}
	if req.Published != nil {
		params.Published = pgtype.Bool{Bool: *req.Published, Valid: true}
		if *req.Published {
			params.PublishedAt = pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
		}
	}

	post, err := h.common.db.UpdateBlogPost(c.Request.Context(), params)
	if err != nil {
		handleDBError(c, err, "Blog post not found")
		return
	}

	sendSuccess(c, http.StatusOK, toBlogPostResponse(post))
}

// DeletePost godoc
// @Summary Delete blog post
// @Description Delete a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/blog/{post_id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	postID := c.Param("post_id")
	parsedUUID, err := uuid.Parse(postID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid post ID format", err)
		return
	}

	if err := h.common.db.DeleteBlogPost(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete blog post", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Blog post deleted successfully")
}

func toBlogPostResponse(post db.BlogPost) BlogPostResponse {
	resp := BlogPostResponse{
		ID:            post.ID.String(),
		Object:        "blog_post",
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt.String,
		Content:       post.Content,
		Author:        post.Author,
		CoverImageURL: post.CoverImageUrl.String,
		Tags:          post.Tags,
		Published:     post.Published,
		CreatedAt:     post.CreatedAt.Time.Unix(),
		UpdatedAt:     post.UpdatedAt.Time.Unix(),
	}
	if post.PublishedAt.Valid {
		resp.PublishedAt = post.PublishedAt.Time.Unix()
	}
	return resp
}

func textOrNullParam(value string) pgtype.Text {
	if value == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: value, Valid: true}
}
