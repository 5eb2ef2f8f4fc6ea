package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type galleryRequest struct {
	Title string `json:"title" binding:"required"`
	Image string `json:"image" binding:"required"`
}

func (a *API) ListGallery(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Gallery.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateGalleryImage(c *gin.Context) {
	var req galleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Gallery.Create(ctx, req.Title, req.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	if err := a.Gallery.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
