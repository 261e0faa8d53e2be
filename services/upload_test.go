package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mindhaven-org/backend/errs"
)

func TestCloudinaryUploadReturnsSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "mindhaven" {
			t.Errorf("Expected upload_preset 'mindhaven', got %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("Expected a file part: %v", err)
		}
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.example/image/upload/abc.png","public_id":"abc"}`))
	}))
	defer server.Close()

	uploader := NewCloudinaryUploader(map[string]string{
		"CLOUDINARY_UPLOAD_URL":    server.URL,
		"CLOUDINARY_UPLOAD_PRESET": "mindhaven",
	})

	url, err := uploader.Upload(context.Background(), "photo.png", "image/png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if url != "https://res.cloudinary.example/image/upload/abc.png" {
		t.Errorf("Expected secure URL, got %q", url)
	}
}

func TestCloudinaryUploadSurfacesHostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer server.Close()

	uploader := NewCloudinaryUploader(map[string]string{
		"CLOUDINARY_UPLOAD_URL": server.URL,
	})

	_, err := uploader.Upload(context.Background(), "photo.png", "image/png", strings.NewReader("bytes"))
	if !errs.IsUploadError(err) {
		t.Fatalf("Expected upload error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Upload preset not found") {
		t.Errorf("Expected the host's message surfaced, got %q", err.Error())
	}
}

func TestCloudinaryUploadMissingSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"abc"}`))
	}))
	defer server.Close()

	uploader := NewCloudinaryUploader(map[string]string{
		"CLOUDINARY_UPLOAD_URL": server.URL,
	})

	_, err := uploader.Upload(context.Background(), "photo.png", "image/png", strings.NewReader("bytes"))
	if !errs.IsUploadError(err) {
		t.Errorf("Expected upload error for missing secure_url, got %v", err)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	uploader := NewCloudinaryUploader(map[string]string{
		"CLOUDINARY_UPLOAD_URL": "http://unused.invalid",
	})

	_, err := uploader.Upload(context.Background(), "notes.pdf", "application/pdf", strings.NewReader("bytes"))
	if !errs.IsUnsupportedMediaError(err) {
		t.Errorf("Expected unsupported media error, got %v", err)
	}
}
