package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecordView logs one site visit. Best-effort: always answers 202.
func (a *API) RecordView(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	a.Views.Record(ctx)
	c.JSON(http.StatusAccepted, gin.H{"message": "Recorded"})
}

// Stats powers the admin dashboard: view buckets plus content counts.
func (a *API) Stats(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	views, err := a.Views.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	projects, err := a.Projects.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	blogs, err := a.Blogs.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := a.Messages.UnreadCount(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"views":          views,
		"projects":       projects,
		"blogs":          blogs,
		"unreadMessages": unread,
	})
}
