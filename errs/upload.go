package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upload / external-media-host errors
var (
	ErrUpload           = errors.New("upload failed")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// NewUploadError wraps a failure from the external media host
func NewUploadError(detail string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUpload,
		Details:    detail,
		Cause:      cause,
	}
}

// NewUnsupportedMediaError rejects a file that is not an image
func NewUnsupportedMediaError(contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		err:        ErrUnsupportedMedia,
		Details:    fmt.Sprintf("Unsupported media type: %s, only images are accepted", contentType),
		Field:      "file",
	}
}

func IsUploadError(err error) bool {
	return errors.Is(err, ErrUpload)
}

func IsUnsupportedMediaError(err error) bool {
	return errors.Is(err, ErrUnsupportedMedia)
}
