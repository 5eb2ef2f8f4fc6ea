package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Contact is the public contact form endpoint, rate limited in routes.
func (a *API) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if _, err := a.Messages.Create(ctx, actions.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent. Thank you for reaching out!"})
}

func (a *API) ListMessages(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Messages.List(ctx, c.Query("unread") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) MarkMessageRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Messages.MarkRead(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (a *API) DeleteMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Messages.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
