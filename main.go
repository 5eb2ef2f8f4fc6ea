package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
	"portfolio/assistant"
	"portfolio/auth"
	"portfolio/config"
	"portfolio/database"
	"portfolio/handlers"
	"portfolio/logger"
	"portfolio/media"
	"portfolio/notify"
	"portfolio/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(true)
		logger.L().Fatalw("configuration error", "error", err)
	}

	release := cfg.GinMode == gin.ReleaseMode
	logger.Init(!release)
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db := connectWithRetry(cfg.MongoURI, cfg.DBName)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx); err != nil {
		logger.L().Fatalw("failed to create indexes", "error", err)
	}
	cancelIndex()

	store, err := media.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		logger.L().Fatalw("failed to configure media storage", "error", err)
	}

	modelCtx, cancelModel := context.WithTimeout(context.Background(), 15*time.Second)
	model, err := assistant.NewGeminiModel(modelCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
	cancelModel()
	if err != nil {
		logger.L().Fatalw("failed to configure assistant model", "error", err)
	}

	rev := actions.NewRevalidator(cfg.RevalidateURL, cfg.RevalidateSecret)
	pusher := notify.NewPusher(db.PushSubs, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.PushSubscriber)

	site := actions.NewSite(db.Intros, db.Abouts, db.Themes, store, rev)
	projects := actions.NewProjects(db.Projects, store, rev)
	blogs := actions.NewBlogs(db.Blogs, store, rev)
	certificates := actions.NewCertificates(db.Certificates, store, rev)
	educations := actions.NewEducations(db.Educations, rev)
	experiences := actions.NewExperiences(db.Experiences, rev)
	faqs := actions.NewFAQs(db.FAQs, rev)

	content := &actions.Content{
		Site:         site,
		Projects:     projects,
		Blogs:        blogs,
		Certificates: certificates,
		Educations:   educations,
		Experiences:  experiences,
		FAQs:         faqs,
	}

	api := &handlers.API{
		Projects:     projects,
		Categories:   actions.NewCategories(db.Categories, db.Projects, rev),
		Blogs:        blogs,
		Certificates: certificates,
		Educations:   educations,
		Experiences:  experiences,
		FAQs:         faqs,
		Site:         site,
		Gallery:      actions.NewGallery(db.Gallery, store, rev),
		Messages:     actions.NewMessages(db.Messages, pusher),
		Views:        actions.NewViews(db.Views),
		Assistant:    assistant.New(model, content),
		Pusher:       pusher,
		Sessions:     auth.NewSessions(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPasswordHash, release),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routes.Setup(api, cfg.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		logger.L().Infow("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Errorw("forced shutdown", "error", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		logger.L().Errorw("failed to disconnect database", "error", err)
	}
}

// connectWithRetry gives Mongo a few chances to come up; container
// orchestration often starts the database alongside the server.
func connectWithRetry(uri, name string) *database.DB {
	const attempts = 3

	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := database.Connect(context.Background(), uri, name)
		if err == nil {
			logger.L().Infow("connected to database", "name", name)
			return db
		}
		lastErr = err
		logger.L().Warnw("database connection failed", "attempt", i, "error", err)
		time.Sleep(2 * time.Second)
	}

	logger.L().Fatalw("could not connect to database", "error", lastErr)
	return nil
}
