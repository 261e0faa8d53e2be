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

type jobHandler struct {
	responder Responder
	logger    zerolog.Logger
	jobRepo   *database.JobRepo
}

func newJobHandler(jobRepo *database.JobRepo) jobHandler {
	logger := log.With().Str("handlerName", "jobHandler").Logger()

	return jobHandler{
		responder: NewResponder(logger),
		logger:    logger,
		jobRepo:   jobRepo,
	}
}

// JobCollection represents multiple job postings with a total count
type JobCollection struct {
	Jobs  []*models.Job `json:"jobs"`
	Total int           `json:"total"`
}

// getAllJobs retrieves every job posting for the dashboard, with an
// optional active filter
func (h jobHandler) getAllJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var active *bool
		if raw := r.URL.Query().Get("active"); raw != "" {
			value := raw == "true"
			active = &value
		}

		jobs, err := h.jobRepo.FindAll(active)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, JobCollection{Jobs: jobs, Total: len(jobs)})
	}
}

// getActiveJobs retrieves the active job postings for the public site
func (h jobHandler) getActiveJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := true
		jobs, err := h.jobRepo.FindAll(&active)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, JobCollection{Jobs: jobs, Total: len(jobs)})
	}
}

// getJob retrieves a specific job posting by ID
func (h jobHandler) getJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := parseIDParam(r, "jobID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		job, err := h.jobRepo.FindByID(jobID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, job)
	}
}

// createJob creates a new job posting
func (h jobHandler) createJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.JobInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode job request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("job", err))
			return
		}

		job, err := h.jobRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, job)
	}
}

// updateJob updates an existing job posting
func (h jobHandler) updateJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := parseIDParam(r, "jobID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.JobInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode job request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("job", err))
			return
		}

		job, err := h.jobRepo.Update(jobID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, job)
	}
}

// deleteJob deletes a job posting by ID
func (h jobHandler) deleteJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := parseIDParam(r, "jobID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.jobRepo.Delete(jobID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "job deleted successfully",
		})
	}
}
