package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
	"portfolio/models"
)

type blogRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
	Image   string   `json:"image"`
}

func (r *blogRequest) input() actions.BlogInput {
	return actions.BlogInput{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
		Image:   r.Image,
	}
}

func (a *API) ListBlogs(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Blogs.List(ctx, actions.Filter{Query: c.Query("q")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) GetBlog(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Blogs.BySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RecordBlogView bumps the post's counter. Always answers 202: the counter
// is analytics, not content.
func (a *API) RecordBlogView(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	a.Blogs.IncrementViews(ctx, c.Param("slug"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Recorded"})
}

func (a *API) RelatedBlogs(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Blogs.Related(ctx, c.Param("slug"), relatedLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	if docs == nil {
		docs = []models.Blog{}
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateBlog(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Blogs.Create(ctx, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) UpdateBlog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Blogs.Update(ctx, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) DeleteBlog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	if err := a.Blogs.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
