package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
)

type educationRequest struct {
	School      string `json:"school" binding:"required"`
	Degree      string `json:"degree" binding:"required"`
	StartDate   int64  `json:"startDate" binding:"required"`
	EndDate     int64  `json:"endDate"`
	Description string `json:"description"`
}

func (r *educationRequest) input() actions.EducationInput {
	return actions.EducationInput{
		School:      r.School,
		Degree:      r.Degree,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

func (a *API) ListEducations(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Educations.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Educations.Create(ctx, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) UpdateEducation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Educations.Update(ctx, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) DeleteEducation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Educations.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education deleted"})
}

type experienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	StartDate   int64  `json:"startDate" binding:"required"`
	EndDate     int64  `json:"endDate"`
	Description string `json:"description"`
}

func (r *experienceRequest) input() actions.ExperienceInput {
	return actions.ExperienceInput{
		Company:     r.Company,
		Role:        r.Role,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

func (a *API) ListExperiences(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Experiences.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Experiences.Create(ctx, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) UpdateExperience(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	doc, err := a.Experiences.Update(ctx, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) DeleteExperience(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := a.Experiences.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted"})
}
