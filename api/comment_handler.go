package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	articleRepo *database.ArticleRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, articleRepo *database.ArticleRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// CommentCollection represents multiple comments with a total count
type CommentCollection struct {
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total"`
}

// commentRequest is the public comment form payload. The article comes
// from the route, not the body.
type commentRequest struct {
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
}

// getApprovedComments retrieves the approved comments on a published article
func (h commentHandler) getApprovedComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		article, err := h.articleRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.ForArticle(article.ID, true)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

// getAllComments retrieves every comment on an article for moderation,
// including held ones
func (h commentHandler) getAllComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.ForArticle(articleID, false)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

// createComment submits a comment on a published article. Comments are
// held until approved by a moderator.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		article, err := h.articleRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !article.IsPublished {
			h.responder.WriteError(w, errs.NewNotFound("article"))
			return
		}

		var payload commentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment, err := h.commentRepo.Create(database.CommentInput{
			ArticleID:  article.ID,
			AuthorName: payload.AuthorName,
			Content:    payload.Content,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// setApproved approves or holds a comment
func (h commentHandler) setApproved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := parseIDParam(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("toggle", err))
			return
		}

		comment, err := h.commentRepo.SetApproved(commentID, payload.Value)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment deletes a comment by ID
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := parseIDParam(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
