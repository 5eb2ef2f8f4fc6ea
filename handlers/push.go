package handlers

import (
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
)

// VapidPublicKey hands the admin SPA the key it needs to subscribe the
// browser's push manager.
func (a *API) VapidPublicKey(c *gin.Context) {
	if !a.Pusher.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Push notifications are not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicKey": a.Pusher.PublicKey()})
}

func (a *API) PushSubscribe(c *gin.Context) {
	if !a.Pusher.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Push notifications are not configured"})
		return
	}

	var sub webpush.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil || sub.Endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription"})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Pusher.Subscribe(ctx, sub); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
}
