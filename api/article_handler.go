package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type articleHandler struct {
	responder     Responder
	logger        zerolog.Logger
	articleRepo   *database.ArticleRepo
	analyticsRepo *database.AnalyticsRepo
}

func newArticleHandler(articleRepo *database.ArticleRepo, analyticsRepo *database.AnalyticsRepo) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		articleRepo:   articleRepo,
		analyticsRepo: analyticsRepo,
	}
}

// ArticleCollection represents multiple articles with a total count
type ArticleCollection struct {
	Articles []*models.Article `json:"articles"`
	Total    int               `json:"total"`
}

// articleFilterFromQuery builds an ArticleFilter from the request's query
// parameters. Unknown category values are rejected up front.
func articleFilterFromQuery(r *http.Request) (database.ArticleFilter, error) {
	var filter database.ArticleFilter
	q := r.URL.Query()

	if raw := q.Get("category"); raw != "" {
		category, err := models.ParseArticleCategory(raw)
		if err != nil {
			return filter, err
		}
		filter.Category = &category
	}
	if raw := q.Get("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}
	if raw := q.Get("published"); raw != "" {
		published := raw == "true"
		filter.Published = &published
	}
	filter.Search = q.Get("search")

	if raw := q.Get("tags"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			tagID, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				return filter, errs.NewInvalidFieldError("tags", "must be a comma-separated list of tag IDs")
			}
			filter.TagIDs = append(filter.TagIDs, uint(tagID))
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errs.NewInvalidFieldError("limit", "must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, errs.NewInvalidFieldError("offset", "must be a non-negative integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}

// getAllArticles retrieves articles for the dashboard with optional filters
// @Summary Get all articles
// @Description Retrieves articles with their tags, filtered by the query parameters
// @Tags Articles
// @Produce json
// @Param category query string false "Article category"
// @Param featured query bool false "Only featured articles"
// @Param published query bool false "Only published articles"
// @Param search query string false "Case-insensitive title search"
// @Param tags query string false "Comma-separated tag IDs"
// @Success 200 {object} ArticleCollection "List of articles with tags"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /admin/articles [get]
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := articleFilterFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		articles, err := h.articleRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ArticleCollection{Articles: articles, Total: len(articles)})
	}
}

// getPublishedArticles retrieves published articles for the public site
func (h articleHandler) getPublishedArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := articleFilterFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		published := true
		filter.Published = &published

		articles, err := h.articleRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ArticleCollection{Articles: articles, Total: len(articles)})
	}
}

// getArticle retrieves a specific article by ID with its tags
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articleRepo.FindByID(articleID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// getArticleBySlug retrieves a published article by slug for the public site
func (h articleHandler) getArticleBySlug() http.HandlerFunc {
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

		// Unpublished articles are invisible to the public site
		if !article.IsPublished {
			h.responder.WriteError(w, errs.NewNotFound("article"))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// createArticle creates a new article, optionally with an initial tag set
// @Summary Create article
// @Description Creates a new article. The slug must be unique across articles.
// @Tags Articles
// @Accept json
// @Produce json
// @Param article body database.ArticleInput true "Article data"
// @Success 201 {object} models.Article "Created article with tags"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid article data"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /admin/article [post]
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.ArticleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode article request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("article", err))
			return
		}

		article, err := h.articleRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, article)
	}
}

// updateArticle updates an existing article. A tags field in the payload
// replaces the article's tag set wholesale.
func (h articleHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.ArticleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode article request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("article", err))
			return
		}

		article, err := h.articleRepo.Update(articleID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// deleteArticle deletes an article and its tag associations
func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.articleRepo.Delete(articleID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		adminID, _ := ctxGetUserID(r.Context())
		h.logger.Info().Str("adminId", adminID).Uint("articleId", articleID).Msg("Article deleted")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "article deleted successfully",
		})
	}
}

// toggleFeatured sets the article's featured flag
func (h articleHandler) toggleFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("toggle", err))
			return
		}

		article, err := h.articleRepo.SetFeatured(articleID, payload.Value)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// togglePublished sets the article's published flag. Publishing stamps the
// publication timestamp on first publish; unpublishing clears it.
func (h articleHandler) togglePublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseIDParam(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("toggle", err))
			return
		}

		article, err := h.articleRepo.SetPublished(articleID, payload.Value)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		adminID, _ := ctxGetUserID(r.Context())
		h.logger.Info().Str("adminId", adminID).Uint("articleId", articleID).Bool("published", payload.Value).Msg("Article publish state changed")

		h.responder.WriteJSON(w, article)
	}
}

// trackView records one public page view for an article
func (h articleHandler) trackView() http.HandlerFunc {
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

		analytics, err := h.analyticsRepo.ForArticle(article.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.analyticsRepo.Increment(analytics.ID, "views"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
