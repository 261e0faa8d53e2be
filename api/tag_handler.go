package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// TagCollection represents multiple tags with a total count
type TagCollection struct {
	Tags  []*models.Tag `json:"tags"`
	Total int           `json:"total"`
}

// getAllTags retrieves every tag ordered by name
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, TagCollection{Tags: tags, Total: len(tags)})
	}
}

// getTagsForArticle retrieves the tags attached to one article, ordered by name
func (h tagHandler) getTagsForArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tags, err := h.tagRepo.ForArticle(articleID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, TagCollection{Tags: tags, Total: len(tags)})
	}
}

// createTag creates a new tag. Name and slug must both be unique.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.TagInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tag", err))
			return
		}

		tag, err := h.tagRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// updateTag updates an existing tag
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.TagInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tag", err))
			return
		}

		tag, err := h.tagRepo.Update(tagID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag deletes a tag and its article associations
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}
