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

type teamHandler struct {
	responder Responder
	logger    zerolog.Logger
	teamRepo  *database.TeamRepo
}

func newTeamHandler(teamRepo *database.TeamRepo) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder: NewResponder(logger),
		logger:    logger,
		teamRepo:  teamRepo,
	}
}

// TeamCollection represents multiple team members with a total count
type TeamCollection struct {
	TeamMembers []*models.TeamMember `json:"teamMembers"`
	Total       int                  `json:"total"`
}

// getAllTeamMembers retrieves every team member
func (h teamHandler) getAllTeamMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.teamRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, TeamCollection{TeamMembers: members, Total: len(members)})
	}
}

// createTeamMember creates a new team member
func (h teamHandler) createTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.TeamMemberInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode team member request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("team member", err))
			return
		}

		member, err := h.teamRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, member)
	}
}

// updateTeamMember updates an existing team member
func (h teamHandler) updateTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.TeamMemberInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode team member request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("team member", err))
			return
		}

		member, err := h.teamRepo.Update(memberID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, member)
	}
}

// deleteTeamMember deletes a team member by ID
func (h teamHandler) deleteTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.teamRepo.Delete(memberID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "team member deleted successfully",
		})
	}
}
