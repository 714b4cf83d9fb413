package v1handler

import (
	"net/http"
	"tally/internal/jury"
	"tally/pkg/domain"
	"tally/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func (h *Handler) judgeAndProject(r *http.Request) (domain.JudgeID, domain.ProjectID, error) {
	judgeID, ok := GetJudgeIDFromContext(r.Context())
	if !ok {
		return domain.JudgeID{}, domain.ProjectID{}, serrors.With(serrors.ErrUnauthorized, "judge token required")
	}
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		return domain.JudgeID{}, domain.ProjectID{}, err
	}

	return judgeID, domain.ProjectID(projectID), nil
}

func decodeScoreInput(d *jx.Decoder) (jury.ScoreInput, error) {
	var in jury.ScoreInput
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "criterionId":
			s, err := d.Str()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return err
			}
			in.CriterionID = domain.CriterionID(id)

			return nil
		case "value":
			v, err := d.Int()
			in.Value = v

			return err
		case "comment":
			c, err := d.Str()
			in.Comment = c

			return err
		default:
			return d.Skip()
		}
	})

	return in, err
}

// SubmitScores replaces the calling judge's scores on the project.
func (h *Handler) SubmitScores(w http.ResponseWriter, r *http.Request) {
	judgeID, projectID, err := h.judgeAndProject(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var inputs []jury.ScoreInput
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "scores" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			in, err := decodeScoreInput(d)
			if err != nil {
				return err
			}
			inputs = append(inputs, in)

			return nil
		})
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	scores, err := h.deps.Jury.SubmitScores(r.Context(), judgeID, projectID, inputs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(scores, encodeScore))
}

// ListScores returns the calling judge's scores on the project.
func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	judgeID, projectID, err := h.judgeAndProject(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	scores, err := h.deps.Jury.JudgeScores(r.Context(), judgeID, projectID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(scores, encodeScore))
}
