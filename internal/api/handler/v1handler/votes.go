package v1handler

import (
	"net/http"
	"tally/pkg/controller"
	"tally/pkg/domain"
	"tally/pkg/serrors"

	"github.com/go-faster/jx"
)

func (h *Handler) voterIdentity(r *http.Request) (domain.VoterIdentity, error) {
	identity, ok := controller.VoterIdentityFromContext(r.Context())
	if !ok {
		return "", serrors.With(serrors.ErrBadRequest, "voter identity could not be determined")
	}

	return identity, nil
}

// CastVote records a community vote for the project and returns the caller's
// updated vote stats.
func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
	identity, err := h.voterIdentity(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Tracker.ReserveVote(r.Context(), identity, domain.ProjectID(projectID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	stats, err := h.deps.Tracker.Stats(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeVoteStats(e, stats) })
}

// MyVotes returns the caller's vote stats.
func (h *Handler) MyVotes(w http.ResponseWriter, r *http.Request) {
	identity, err := h.voterIdentity(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	stats, err := h.deps.Tracker.Stats(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeVoteStats(e, stats) })
}
