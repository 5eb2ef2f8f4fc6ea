package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/actions"
)

type certificateRequest struct {
	Title         string `json:"title" binding:"required"`
	Organization  string `json:"organization" binding:"required"`
	IssueDate     int64  `json:"issueDate" binding:"required"`
	CredentialURL string `json:"credentialUrl"`
	Image         string `json:"image"`
}

func (r *certificateRequest) input() actions.CertificateInput {
	return actions.CertificateInput{
		Title:         r.Title,
		Organization:  r.Organization,
		IssueDate:     r.IssueDate,
		CredentialURL: r.CredentialURL,
		Image:         r.Image,
	}
}

func (a *API) ListCertificates(c *gin.Context) {
	ctx, cancel := reqContext()
	defer cancel()

	docs, err := a.Certificates.List(ctx, actions.Filter{Query: c.Query("q")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) CreateCertificate(c *gin.Context) {
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Certificates.Create(ctx, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) UpdateCertificate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	doc, err := a.Certificates.Update(ctx, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) DeleteCertificate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := uploadContext()
	defer cancel()

	if err := a.Certificates.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
