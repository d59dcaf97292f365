package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/delivery/http/routers"
	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
	infra_repo "portfolio/internal/infrastructure/repositories"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/usecases"
	apperrors "portfolio/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) (*fiber.App, *repositories.Registry) {
	t.Helper()
	root := t.TempDir()
	uploads := filepath.Join(root, "uploads")
	repos := infra_repo.NewInMemoryRegistry()
	logger := zaptest.NewLogger(t)
	media := usecases.NewMediaService(repos.Images, repos.Videos,
		storage.NewLocalStorage(uploads, "/api/uploads"), nil,
		usecases.MediaLimits{TempDir: filepath.Join(root, "tmp"), MaxImageSize: 1 << 20, MaxVideoSize: 1 << 20},
		logger)
	app := routers.NewApp(routers.Deps{Repos: repos, Media: media, UploadsDir: uploads, BodyLimit: 4 << 20, Logger: logger})
	return app, repos
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func jsonRequest(method, target string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, target string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeError(t *testing.T, body []byte) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHealthAndBanner(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy","message":"Portfolio API is running"}`, string(body))

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "Portfolio API")
}

func TestCategoriesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Images []struct{ Value, Label string }
		Videos []struct{ Value, Label string }
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Images, 5)
	assert.Len(t, resp.Videos, 6)
}

func TestSkillsCRUD(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/skills", map[string]any{"name": "Lighting", "level": 90, "order": 1}))
	require.Equal(t, http.StatusCreated, status, string(body))
	var skill entities.Skill
	require.NoError(t, json.Unmarshal(body, &skill))
	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, entities.DefaultSkillCategory, skill.Category)

	status, body = do(t, app, jsonRequest(http.MethodPut, "/api/skills/"+skill.ID, map[string]any{"level": 95}))
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &skill))
	assert.Equal(t, 95, skill.Level)
	assert.Equal(t, "Lighting", skill.Name)

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	require.Equal(t, http.StatusOK, status)
	var list []entities.Skill
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)

	status, body = do(t, app, httptest.NewRequest(http.MethodDelete, "/api/skills/"+skill.ID, nil))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Skill deleted successfully"}`, string(body))

	status, body = do(t, app, httptest.NewRequest(http.MethodDelete, "/api/skills/"+skill.ID, nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperrors.ErrorResponse{Detail: "Skill not found", Error: apperrors.CodeNotFound}, decodeError(t, body))
}

func TestInvalidIDAndValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, jsonRequest(http.MethodPut, "/api/awards/42", map[string]any{"title": "x"}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid Award ID", decodeError(t, body).Detail)

	status, body = do(t, app, jsonRequest(http.MethodPost, "/api/experience", map[string]any{"title": "Photographer"}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.CodeValidation, decodeError(t, body).Error)

	status, _ = do(t, app, jsonRequest(http.MethodPut, "/api/projects/"+uuid.NewString(), map[string]any{"title": "x"}))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSingletons(t *testing.T) {
	app, repos := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/personal", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Personal information not found", decodeError(t, body).Detail)

	require.NoError(t, repos.Social.Save(t.Context(), &entities.SocialLinks{Instagram: "https://instagram.com/old"}))
	status, body = do(t, app, jsonRequest(http.MethodPut, "/api/social", map[string]any{"website": "https://example.com"}))
	require.Equal(t, http.StatusOK, status, string(body))

	var social entities.SocialLinks
	require.NoError(t, json.Unmarshal(body, &social))
	assert.Equal(t, "https://example.com", social.Website)
	assert.Equal(t, "https://instagram.com/old", social.Instagram)
}

func TestImageUploadRoundTripByCategory(t *testing.T) {
	app, _ := newTestApp(t)

	for _, tc := range []struct{ title, cat string }{{"Runway", "fashion"}, {"Vogue", "covers"}} {
		req := uploadRequest(t, "/api/images/upload",
			map[string]string{"title": tc.title, "category": tc.cat, "featured": "true"},
			tc.title+".png", []byte("not really a png"))
		status, body := do(t, app, req)
		require.Equal(t, http.StatusOK, status, string(body))
	}

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/images?category=fashion", nil))
	require.Equal(t, http.StatusOK, status)
	var images []entities.Image
	require.NoError(t, json.Unmarshal(body, &images))
	require.Len(t, images, 1)
	assert.Equal(t, "Runway", images[0].Title)
	assert.True(t, images[0].Featured)
	assert.True(t, strings.HasPrefix(images[0].ImageURL, "/api/uploads/images/fashion/"))

	// stored file is served back
	status, body = do(t, app, httptest.NewRequest(http.MethodGet, images[0].ImageURL, nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "not really a png", string(body))

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/images?category=tv-show", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.CodeValidation, decodeError(t, body).Error)
}

func TestUploadRejections(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, uploadRequest(t, "/api/images/upload", map[string]string{"title": "x", "category": "fashion"}, "", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "File is required", decodeError(t, body).Detail)

	status, body = do(t, app, uploadRequest(t, "/api/images/upload",
		map[string]string{"title": "x", "category": "fashion"}, "notes.txt", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.CodeUnsupportedType, decodeError(t, body).Error)

	status, body = do(t, app, uploadRequest(t, "/api/videos/upload",
		map[string]string{"title": "x", "category": "fashion"}, "clip.mp4", []byte("mp4")))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.CodeValidation, decodeError(t, body).Error)

	status, body = do(t, app, uploadRequest(t, "/api/videos/upload",
		map[string]string{"title": "x", "category": "interview", "featured": "maybe"}, "clip.mp4", []byte("mp4")))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "featured must be true or false", decodeError(t, body).Detail)
}

func TestVideoUploadAndDelete(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, uploadRequest(t, "/api/videos/upload",
		map[string]string{"title": "Episode", "category": "tv-show"}, "ep.mp4", []byte("mp4 bytes")))
	require.Equal(t, http.StatusOK, status, string(body))
	var video entities.Video
	require.NoError(t, json.Unmarshal(body, &video))
	assert.False(t, video.Featured)

	status, _ = do(t, app, httptest.NewRequest(http.MethodDelete, "/api/videos/"+video.ID, nil))
	require.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, video.VideoURL, nil))
	assert.Equal(t, http.StatusNotFound, status)
}
