package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio/actions"
	"portfolio/auth"
	"portfolio/database/memstore"
	"portfolio/handlers"
	"portfolio/media"
	"portfolio/models"
	"portfolio/notify"
	"portfolio/routes"
)

type stubStore struct{ seq int }

func (s *stubStore) Upload(_ context.Context, _ string, opts media.UploadOptions) (models.Image, error) {
	s.seq++
	id := fmt.Sprintf("%s/asset-%d", opts.Folder, s.seq)
	return models.Image{URL: "https://cdn.example/" + id, PublicID: id}, nil
}

func (s *stubStore) Destroy(context.Context, string) error { return nil }

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &stubStore{}
	rev := actions.NopRevalidator{}
	projectColl := memstore.New("slug")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	site := actions.NewSite(memstore.New(), memstore.New(), memstore.New(), store, rev)
	api := &handlers.API{
		Projects:     actions.NewProjects(projectColl, store, rev),
		Categories:   actions.NewCategories(memstore.New("name"), projectColl, rev),
		Blogs:        actions.NewBlogs(memstore.New("slug"), store, rev),
		Certificates: actions.NewCertificates(memstore.New(), store, rev),
		Educations:   actions.NewEducations(memstore.New(), rev),
		Experiences:  actions.NewExperiences(memstore.New(), rev),
		FAQs:         actions.NewFAQs(memstore.New(), rev),
		Site:         site,
		Gallery:      actions.NewGallery(memstore.New(), store, rev),
		Messages:     actions.NewMessages(memstore.New(), nil),
		Views:        actions.NewViews(memstore.New()),
		Pusher:       notify.NewPusher(memstore.New(), "", "", ""),
		Sessions:     auth.NewSessions("test-secret", "admin", hash, false),
	}
	return routes.Setup(api, []string{"http://localhost:3000"})
}

func doJSON(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestPublicRoutesOpen(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// Unset singleton reads as null.
	w = doJSON(r, http.MethodGet, "/api/intro", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/projects", gin.H{
		"title": "My App", "description": "d", "image": "p",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The session probe is reachable without a cookie and reports the state
	// instead of rejecting.
	w = doJSON(r, http.MethodGet, "/api/admin/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestSessionProbeWithCookie(t *testing.T) {
	r := newTestServer(t)
	cookie := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/session", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectCrudOverHTTP(t *testing.T) {
	r := newTestServer(t)
	cookie := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/admin/projects", gin.H{
		"title":       "My App",
		"description": "A thing I built",
		"tags":        []string{"go"},
		"image":       "payload",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "my-app", created.Slug)

	// Public detail read by slug.
	w = doJSON(r, http.MethodGet, "/api/projects/my-app", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Slug collision surfaces as a conflict.
	w = doJSON(r, http.MethodPost, "/api/admin/projects", gin.H{
		"title": "My  App", "description": "d", "image": "p",
	}, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Validation failures surface as 400 with the field message.
	w = doJSON(r, http.MethodPost, "/api/admin/projects", gin.H{
		"title": "No Image", "description": "d",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "coverImage")

	w = doJSON(r, http.MethodDelete, "/api/admin/projects/"+created.ID.Hex(), nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/projects/my-app", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactFormFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/contact", gin.H{
		"name": "Visitor", "email": "v@example.com",
		"subject": "Hi", "message": "Nice site",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Incomplete submissions bounce before reaching the store.
	w = doJSON(r, http.MethodPost, "/api/contact", gin.H{"name": "Visitor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The admin sees the message as unread.
	cookie := login(t, r)
	w = doJSON(r, http.MethodGet, "/api/admin/messages?unread=true", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var msgs []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	require.Len(t, msgs, 1)
	assert.Equal(t, "Visitor", msgs[0].Name)
}

func TestCategoryDeleteConflictOverHTTP(t *testing.T) {
	r := newTestServer(t)
	cookie := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/admin/project-categories", gin.H{"name": "Backend"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var cat models.ProjectCategory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	w = doJSON(r, http.MethodPost, "/api/admin/projects", gin.H{
		"title": "My App", "description": "d", "category": "Backend", "image": "p",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/admin/project-categories/"+cat.ID.Hex(), nil, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Backend")
}

func TestStatsOverHTTP(t *testing.T) {
	r := newTestServer(t)

	// Two recorded site visits.
	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/api/views", nil)
		require.Equal(t, http.StatusAccepted, w.Code)
	}

	cookie := login(t, r)
	w := doJSON(r, http.MethodGet, "/api/admin/stats", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Views struct {
			Today int64 `json:"today"`
			Total int64 `json:"total"`
		} `json:"views"`
		Projects int64 `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Views.Today)
	assert.Equal(t, int64(2), stats.Views.Total)
	assert.Zero(t, stats.Projects)
}

func TestPushDisabledAnswers404(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/push/vapid-public-key", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}
