// Package routes wires the HTTP surface: public content reads, the contact
// form, the assistant, and the cookie-gated admin group.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio/handlers"
	"portfolio/middleware"
)

func Setup(api *handlers.API, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pub := r.Group("/api")
	{
		pub.GET("/projects", api.ListProjects)
		pub.GET("/projects/:slug", api.GetProject)
		pub.GET("/projects/:slug/related", api.RelatedProjects)
		pub.GET("/project-categories", api.ListCategories)

		pub.GET("/blogs", api.ListBlogs)
		pub.GET("/blogs/:slug", api.GetBlog)
		pub.GET("/blogs/:slug/related", api.RelatedBlogs)
		pub.POST("/blogs/:slug/view", api.RecordBlogView)

		pub.GET("/certificates", api.ListCertificates)
		pub.GET("/educations", api.ListEducations)
		pub.GET("/experiences", api.ListExperiences)
		pub.GET("/faqs", api.ListFAQs)
		pub.GET("/gallery", api.ListGallery)

		pub.GET("/intro", api.GetIntro)
		pub.GET("/about", api.GetAbout)
		pub.GET("/theme", api.GetTheme)

		pub.POST("/contact", middleware.RateLimit(5, time.Minute), api.Contact)
		pub.POST("/views", api.RecordView)
		pub.POST("/assistant/chat", middleware.RateLimit(10, time.Minute), api.Chat)

		pub.GET("/push/vapid-public-key", api.VapidPublicKey)
	}

	// Session endpoints live under /api/admin but outside the cookie gate:
	// login has no cookie yet, and the session probe must not 401.
	r.POST("/api/admin/login", middleware.RateLimit(5, time.Minute), api.Login)
	r.POST("/api/admin/logout", api.Logout)
	r.GET("/api/admin/session", api.Session)

	admin := r.Group("/api/admin")
	admin.Use(api.Sessions.Middleware())
	{
		admin.POST("/projects", api.CreateProject)
		admin.PUT("/projects/:id", api.UpdateProject)
		admin.DELETE("/projects/:id", api.DeleteProject)

		admin.POST("/project-categories", api.CreateCategory)
		admin.DELETE("/project-categories/:id", api.DeleteCategory)

		admin.POST("/blogs", api.CreateBlog)
		admin.PUT("/blogs/:id", api.UpdateBlog)
		admin.DELETE("/blogs/:id", api.DeleteBlog)

		admin.POST("/certificates", api.CreateCertificate)
		admin.PUT("/certificates/:id", api.UpdateCertificate)
		admin.DELETE("/certificates/:id", api.DeleteCertificate)

		admin.POST("/educations", api.CreateEducation)
		admin.PUT("/educations/:id", api.UpdateEducation)
		admin.DELETE("/educations/:id", api.DeleteEducation)

		admin.POST("/experiences", api.CreateExperience)
		admin.PUT("/experiences/:id", api.UpdateExperience)
		admin.DELETE("/experiences/:id", api.DeleteExperience)

		admin.POST("/faqs", api.CreateFAQ)
		admin.PUT("/faqs/:id", api.UpdateFAQ)
		admin.DELETE("/faqs/:id", api.DeleteFAQ)

		admin.PUT("/intro", api.UpsertIntro)
		admin.PUT("/about", api.UpsertAbout)
		admin.PUT("/theme", api.UpsertTheme)
		admin.DELETE("/theme", api.ResetTheme)

		admin.POST("/gallery", api.CreateGalleryImage)
		admin.DELETE("/gallery/:id", api.DeleteGalleryImage)

		admin.GET("/messages", api.ListMessages)
		admin.POST("/messages/:id/read", api.MarkMessageRead)
		admin.DELETE("/messages/:id", api.DeleteMessage)

		admin.GET("/stats", api.Stats)
		admin.POST("/assistant/keywords", api.Keywords)
		admin.POST("/push/subscribe", api.PushSubscribe)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
