package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/mindhaven-org/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxUploadSize caps the upload endpoint's multipart body at 20MB
const maxUploadSize = 20 << 20

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	mediaRepo *database.MediaRepo
	uploader  services.Uploader
}

func newMediaHandler(mediaRepo *database.MediaRepo, uploader services.Uploader) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mediaRepo: mediaRepo,
		uploader:  uploader,
	}
}

// MediaCollection represents multiple media items with a total count
type MediaCollection struct {
	Media []*models.Media `json:"media"`
	Total int             `json:"total"`
}

// getAllMedia retrieves media items with optional filters
func (h mediaHandler) getAllMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter database.MediaFilter
		q := r.URL.Query()

		filter.Type = q.Get("type")
		if raw := q.Get("articleId"); raw != "" {
			articleID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("articleId", "must be an integer"))
				return
			}
			id := uint(articleID)
			filter.ArticleID = &id
		}
		if raw := q.Get("eventId"); raw != "" {
			eventID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("eventId", "must be an integer"))
				return
			}
			id := uint(eventID)
			filter.EventID = &id
		}

		media, err := h.mediaRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, MediaCollection{Media: media, Total: len(media)})
	}
}

// createMedia registers a media item pointing at an already-hosted URL
func (h mediaHandler) createMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.MediaInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode media request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("media", err))
			return
		}

		media, err := h.mediaRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, media)
	}
}

// updateMedia updates an existing media item
func (h mediaHandler) updateMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.MediaInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode media request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("media", err))
			return
		}

		media, err := h.mediaRepo.Update(mediaID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, media)
	}
}

// deleteMedia deletes a media item by ID. The hosted file itself is not
// removed.
func (h mediaHandler) deleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.mediaRepo.Delete(mediaID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "media deleted successfully",
		})
	}
}

// uploadImage forwards a multipart image file to the upload backend and
// returns the hosted URL
func (h mediaHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to parse multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		url, err := h.uploader.Upload(r.Context(), header.Filename, contentType, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}
