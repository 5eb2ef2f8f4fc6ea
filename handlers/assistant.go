package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/assistant"
	"portfolio/logger"
)

// Model calls dominate the chat request; allow well beyond the usual budget.
const assistantTimeout = 45 * time.Second

type chatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type chatRequest struct {
	Question string     `json:"question" binding:"required"`
	History  []chatTurn `json:"history"`
}

func (a *API) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), assistantTimeout)
	defer cancel()

	history := make([]assistant.Turn, 0, len(req.History))
	for _, t := range req.History {
		role := assistant.RoleUser
		if t.Role == string(assistant.RoleModel) {
			role = assistant.RoleModel
		}
		history = append(history, assistant.Turn{Role: role, Text: t.Text})
	}

	answer, err := a.Assistant.Answer(ctx, req.Question, history)
	if err != nil {
		logger.L().Errorw("assistant chat failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "The assistant is unavailable right now. Please try again later."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

type keywordsRequest struct {
	Content string `json:"content" binding:"required"`
}

func (a *API) Keywords(c *gin.Context) {
	var req keywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), assistantTimeout)
	defer cancel()

	keywords, err := a.Assistant.Keywords(ctx, req.Content)
	if err != nil {
		logger.L().Errorw("keyword extraction failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not extract keywords. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}
