package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/actions"
	"portfolio/assistant"
	"portfolio/auth"
	"portfolio/logger"
	"portfolio/notify"
)

// API holds every dependency the HTTP layer needs. Handlers stay thin: bind,
// call the action, map the result.
type API struct {
	Projects     *actions.Projects
	Categories   *actions.Categories
	Blogs        *actions.Blogs
	Certificates *actions.Certificates
	Educations   *actions.Educations
	Experiences  *actions.Experiences
	FAQs         *actions.FAQs
	Site         *actions.Site
	Gallery      *actions.Gallery
	Messages     *actions.Messages
	Views        *actions.Views
	Assistant    *assistant.Assistant
	Pusher       *notify.Pusher
	Sessions     *auth.Sessions
}

const (
	requestTimeout = 10 * time.Second
	// Image payloads ride along on create/update; give uploads more room.
	uploadTimeout = 30 * time.Second
)

func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func uploadContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), uploadTimeout)
}

// respondError maps the action-layer error taxonomy onto HTTP. Validation
// and referential-integrity messages pass through for the admin UI;
// infrastructure errors are logged and stripped to a generic message.
func respondError(c *gin.Context, err error) {
	var (
		validation  *actions.ValidationError
		upload      *actions.UploadError
		persistence *actions.PersistenceError
		referential *actions.ReferentialIntegrityError
	)

	switch {
	case errors.Is(err, actions.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &referential):
		c.JSON(http.StatusConflict, gin.H{"error": referential.Error()})
	case errors.As(err, &upload):
		logger.L().Errorw("media upload failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process the image"})
	case errors.As(err, &persistence):
		if persistence.Duplicate() {
			c.JSON(http.StatusConflict, gin.H{"error": "An item with the same slug or name already exists"})
			return
		}
		logger.L().Errorw("persistence failure", "op", persistence.Op, "error", persistence.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	default:
		logger.L().Errorw("unexpected failure", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// paramID parses the :id route parameter, answering 400 itself on garbage.
func paramID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
