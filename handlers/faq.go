package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
)

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (a *API) ListFAQs(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.FAQs.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.FAQs.Create(ctx, actions.FAQInput{Question: req.Question, Answer: req.Answer})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) UpdateFAQ(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.FAQs.Update(ctx, id, actions.FAQInput{Question: req.Question, Answer: req.Answer})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) DeleteFAQ(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.FAQs.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
}
