package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
	"portfolio/models"
)

const relatedLimit = 3

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	RepoURL     string   `json:"repoUrl"`
	LiveURL     string   `json:"liveUrl"`
	Image       string   `json:"image"`
}

func (r *projectRequest) input() actions.ProjectInput {
	return actions.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Category:    r.Category,
		RepoURL:     r.RepoURL,
		LiveURL:     r.LiveURL,
		Image:       r.Image,
	}
}

func (a *API) ListProjects(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Projects.List(ctx, actions.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) GetProject(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Projects.BySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) RelatedProjects(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Projects.Related(ctx, c.Param("slug"), relatedLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	if docs == nil {
		docs = []models.Project{}
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Projects.Create(ctx, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) UpdateProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Projects.Update(ctx, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) DeleteProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	if err := a.Projects.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (a *API) ListCategories(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Categories.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Categories.Create(ctx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Categories.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
