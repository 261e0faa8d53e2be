package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/mindhaven-org/backend/config"
	"github.com/mindhaven-org/backend/errs"
	"github.com/rs/zerolog/log"
)

// Uploader hands a binary file to an external hosting service and returns
// the permanent URL. No local storage or transformation occurs.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
}

// NewUploaderFromConfig selects the upload backend. UPLOAD_BACKEND=s3
// switches to S3; anything else uses the Cloudinary-style media host.
func NewUploaderFromConfig(cfg map[string]string) (Uploader, error) {
	switch config.GetString(cfg, "UPLOAD_BACKEND", "cloudinary") {
	case "s3":
		return NewS3Uploader(cfg)
	default:
		return NewCloudinaryUploader(cfg), nil
	}
}

// CloudinaryUploader forwards files to the Cloudinary unsigned-upload
// endpoint with a fixed upload preset
type CloudinaryUploader struct {
	uploadURL string
	preset    string
	client    *http.Client
}

// NewCloudinaryUploader builds the uploader from CLOUDINARY_CLOUD_NAME
// and CLOUDINARY_UPLOAD_PRESET. CLOUDINARY_UPLOAD_URL overrides the
// endpoint, which the tests use.
func NewCloudinaryUploader(cfg map[string]string) *CloudinaryUploader {
	cloudName := config.GetString(cfg, "CLOUDINARY_CLOUD_NAME", "")
	uploadURL := config.GetString(cfg, "CLOUDINARY_UPLOAD_URL",
		fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName))

	return &CloudinaryUploader{
		uploadURL: uploadURL,
		preset:    config.GetString(cfg, "CLOUDINARY_UPLOAD_PRESET", ""),
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type cloudinaryError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one multipart POST with the file and the upload preset,
// and returns the hosted secure URL. A single blocking round trip, no
// retry; a failure fails the enclosing operation.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	if err := requireImage(contentType); err != nil {
		return "", err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errs.NewUploadError("failed to build upload request", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return "", errs.NewUploadError("failed to read file", err)
	}
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", errs.NewUploadError("failed to build upload request", err)
	}
	if err := writer.Close(); err != nil {
		return "", errs.NewUploadError("failed to build upload request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", errs.NewUploadError("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", errs.NewUploadError("media host unreachable", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewUploadError("failed to read media host response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var cloudErr cloudinaryError
		if json.Unmarshal(respBody, &cloudErr) == nil && cloudErr.Error.Message != "" {
			return "", errs.NewUploadError(cloudErr.Error.Message, nil)
		}
		return "", errs.NewUploadError(fmt.Sprintf("media host returned status %d", resp.StatusCode), nil)
	}

	var uploaded cloudinaryResponse
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return "", errs.NewUploadError("malformed media host response", err)
	}
	if uploaded.SecureURL == "" {
		return "", errs.NewUploadError("media host response missing secure_url", nil)
	}

	log.Debug().Str("publicId", uploaded.PublicID).Msg("Uploaded image to media host")
	return uploaded.SecureURL, nil
}

func requireImage(contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return errs.NewUnsupportedMediaError(contentType)
	}
	return nil
}
