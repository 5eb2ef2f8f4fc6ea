package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/auth"
	"portfolio/logger"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	token, err := a.Sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		logger.L().Errorw("failed to sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	a.Sessions.SetCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

func (a *API) Logout(c *gin.Context) {
	a.Sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session lets the admin SPA check whether its cookie is still valid
// without triggering the 401 interceptor.
func (a *API) Session(c *gin.Context) {
	subject := a.Sessions.Subject(c)
	if subject == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": subject})
}
