package v1handler

import (
	"net/http"
	"tally/internal/catalog"
	"tally/pkg/domain"

	"github.com/go-faster/jx"
)

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Catalog.Projects(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(projects, encodeProject))
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	project, err := h.deps.Catalog.Project(r.Context(), domain.ProjectID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeProject(e, *project) })
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project domain.Project
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			project.Name, err = d.Str()
		case "description":
			project.Description, err = d.Str()
		case "teamMembers":
			project.TeamMembers, err = decodeStrings(d)
		default:
			err = d.Skip()
		}

		return err
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	created, err := h.deps.Catalog.CreateProject(r.Context(), project)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeProject(e, *created) })
}

func (h *Handler) ListJudges(w http.ResponseWriter, r *http.Request) {
	judges, err := h.deps.Catalog.Judges(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(judges, encodeJudge))
}

func (h *Handler) CreateJudge(w http.ResponseWriter, r *http.Request) {
	var judge domain.Judge
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			judge.Name, err = d.Str()
		case "email":
			judge.Email, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	created, err := h.deps.Catalog.CreateJudge(r.Context(), judge)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeJudge(e, *created) })
}

func (h *Handler) ListCriteria(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.deps.Catalog.Criteria(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(criteria, encodeCriterion))
}

func (h *Handler) GetWeightReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.Catalog.WeightReport(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeWeightReport(e, report) })
}

func decodeCriterion(r *http.Request) (catalog.CriterionInput, error) {
	var in catalog.CriterionInput
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			in.Name, err = d.Str()
		case "description":
			in.Description, err = d.Str()
		case "weight":
			in.Weight, err = d.Int()
		case "maxScore":
			in.MaxScore, err = d.Int()
		default:
			err = d.Skip()
		}

		return err
	})

	return in, err
}

func (h *Handler) CreateCriterion(w http.ResponseWriter, r *http.Request) {
	in, err := decodeCriterion(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	created, err := h.deps.Catalog.CreateCriterion(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeCriterion(e, *created) })
}

func (h *Handler) UpdateCriterion(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "criterionID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	in, err := decodeCriterion(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	updated, err := h.deps.Catalog.UpdateCriterion(r.Context(), domain.CriterionID(id), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCriterion(e, *updated) })
}

func (h *Handler) DeleteCriterion(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "criterionID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.DeleteCriterion(r.Context(), domain.CriterionID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
