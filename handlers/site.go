package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
)

// Singleton reads answer 200 with a JSON null body when nothing has been
// saved yet; the frontend renders its defaults.

func (a *API) GetIntro(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Site.Intro(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type introRequest struct {
	Name      string `json:"name" binding:"required"`
	Headline  string `json:"headline" binding:"required"`
	Summary   string `json:"summary"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	GithubURL string `json:"githubUrl"`
	Linkedin  string `json:"linkedinUrl"`
	ResumeURL string `json:"resumeUrl"`
	Image     string `json:"image"`
}

func (a *API) UpsertIntro(c *gin.Context) {
	var req introRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Site.UpsertIntro(ctx, actions.IntroInput{
		Name:      req.Name,
		Headline:  req.Headline,
		Summary:   req.Summary,
		Email:     req.Email,
		Location:  req.Location,
		GithubURL: req.GithubURL,
		Linkedin:  req.Linkedin,
		ResumeURL: req.ResumeURL,
		Image:     req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) GetAbout(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Site.About(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type aboutRequest struct {
	Heading string   `json:"heading" binding:"required"`
	Body    string   `json:"body" binding:"required"`
	Skills  []string `json:"skills"`
	Image   string   `json:"image"`
}

func (a *API) UpsertAbout(c *gin.Context) {
	var req aboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Site.UpsertAbout(ctx, actions.AboutInput{
		Heading: req.Heading,
		Body:    req.Body,
		Skills:  req.Skills,
		Image:   req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) GetTheme(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Site.Theme(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type themeRequest struct {
	Primary    string `json:"primary" binding:"required"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Font       string `json:"font"`
}

func (a *API) UpsertTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Site.UpsertTheme(ctx, actions.ThemeInput{
		Primary:    req.Primary,
		Accent:     req.Accent,
		Background: req.Background,
		Font:       req.Font,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) ResetTheme(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Site.ResetTheme(ctx); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Theme reset to defaults"})
}
