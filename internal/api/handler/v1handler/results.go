package v1handler

import (
	"bytes"
	"net/http"
	"tally/pkg/domain"

	"github.com/go-faster/jx"
)

func (h *Handler) JuryResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Results.JuryResults(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(res, encodeAggregateResult))
}

func (h *Handler) CommunityResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Results.CommunityResults(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeList(res, encodeCommunityResult))
}

func (h *Handler) JuryCSV(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, r, domain.ExportKindJury)
}

func (h *Handler) CommunityCSV(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, r, domain.ExportKindCommunity)
}

// writeCSV renders the whole table before writing so that a failure still
// produces a JSON error response.
func (h *Handler) writeCSV(w http.ResponseWriter, r *http.Request, kind domain.ExportKind) {
	var buf bytes.Buffer
	if err := h.deps.Results.WriteCSV(r.Context(), kind, &buf); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeCSVResponse(w, string(kind)+"-results.csv", buf.Bytes())
}

func writeCSVResponse(w http.ResponseWriter, filename string, content []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
