package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/models"
	"github.com/mindhaven-org/backend/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminToken = "test-admin-token"

func setupTestRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	currentDB := database.New(db)
	uploader := services.NewCloudinaryUploader(map[string]string{
		"CLOUDINARY_UPLOAD_URL": "http://unused.invalid",
	})
	notifier := services.NewNotifierFromConfig(map[string]string{})

	router := newRouter(currentDB, uploader, notifier, withConfig(map[string]string{
		"ADMIN_TOKEN": testAdminToken,
	}))
	return router, currentDB
}

func adminRequest(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func testArticleBody(title, slug string) database.ArticleInput {
	return database.ArticleInput{
		Title:       title,
		Slug:        slug,
		Description: "A description",
		Content:     "Some content",
		ImageURL:    "https://example.com/image.jpg",
		Category:    "Impact",
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/admin/articles", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", resp.Code)
	}

	req = httptest.NewRequest("GET", "/admin/articles", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with a bad token, got %d", resp.Code)
	}
}

func TestCreateArticleEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := adminRequest(t, router, "POST", "/admin/article", testArticleBody("Peer Support", "peer-support"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var article models.Article
	if err := json.Unmarshal(resp.Body.Bytes(), &article); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if article.Slug != "peer-support" {
		t.Errorf("Expected slug 'peer-support', got %s", article.Slug)
	}
}

func TestCreateArticleDuplicateSlugEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := adminRequest(t, router, "POST", "/admin/article", testArticleBody("First", "dup"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = adminRequest(t, router, "POST", "/admin/article", testArticleBody("Second", "dup"))
	if resp.Code != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate slug, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateArticleInvalidCategoryEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := testArticleBody("Bad", "bad")
	body.Category = "Astrology"
	resp := adminRequest(t, router, "POST", "/admin/article", body)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown category, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestPublicListingHidesUnpublished(t *testing.T) {
	router, _ := setupTestRouter(t)

	draft := testArticleBody("Draft", "draft")
	if resp := adminRequest(t, router, "POST", "/admin/article", draft); resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.Code)
	}

	live := testArticleBody("Live", "live")
	live.IsPublished = true
	if resp := adminRequest(t, router, "POST", "/admin/article", live); resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.Code)
	}

	req := httptest.NewRequest("GET", "/articles", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.Code)
	}

	var collection ArticleCollection
	if err := json.Unmarshal(resp.Body.Bytes(), &collection); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if collection.Total != 1 {
		t.Fatalf("Expected only the published article, got %d", collection.Total)
	}
	if collection.Articles[0].Slug != "live" {
		t.Errorf("Expected 'live', got %s", collection.Articles[0].Slug)
	}

	// The unpublished article is also invisible by slug
	req = httptest.NewRequest("GET", "/articles/draft", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unpublished slug, got %d", resp.Code)
	}
}

func TestTogglePublishedEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := adminRequest(t, router, "POST", "/admin/article", testArticleBody("Toggle", "toggle"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.Code)
	}
	var created models.Article
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	resp = adminRequest(t, router, "PATCH", "/admin/article/1/published", toggleRequest{Value: true})
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var published models.Article
	if err := json.Unmarshal(resp.Body.Bytes(), &published); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !published.IsPublished {
		t.Error("Expected article to be published")
	}
	if published.PublishedAt == nil {
		t.Error("Expected publish timestamp to be stamped")
	}
}

func TestArticleNotFoundEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := adminRequest(t, router, "GET", "/admin/article/42", nil)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.Code)
	}

	resp = adminRequest(t, router, "GET", "/admin/article/not-a-number", nil)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a non-numeric ID, got %d", resp.Code)
	}
}

func TestDeleteArticleEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := adminRequest(t, router, "POST", "/admin/article", testArticleBody("Short Lived", "short-lived"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.Code)
	}

	resp = adminRequest(t, router, "DELETE", "/admin/article/1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = adminRequest(t, router, "GET", "/admin/article/1", nil)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", resp.Code)
	}
}

func TestContactFormEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	resp := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{
		"name":    "Jordan",
		"email":   "jordan@example.com",
		"message": "Do you offer group sessions?",
	})
	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	// The message shows up unread on the admin side
	adminResp := adminRequest(t, router, "GET", "/admin/contact-messages?unread=true", nil)
	if adminResp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", adminResp.Code)
	}
	var collection ContactMessageCollection
	if err := json.Unmarshal(adminResp.Body.Bytes(), &collection); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if collection.Total != 1 {
		t.Errorf("Expected 1 unread message, got %d", collection.Total)
	}
}
