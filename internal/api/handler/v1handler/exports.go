package v1handler

import (
	"net/http"
	"tally/pkg/domain"
	"tally/pkg/serrors"

	"github.com/go-faster/jx"
)

// CreateExport schedules the asynchronous rendering of a result table.
func (h *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	var kind domain.ExportKind
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "kind" {
			return d.Skip()
		}
		s, err := d.Str()
		kind = domain.ExportKind(s)

		return err
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	export, err := h.deps.Exporter.Enqueue(r.Context(), kind)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) { encodeExport(e, *export) })
}

func (h *Handler) export(r *http.Request) (*domain.Export, error) {
	id, err := uuidParam(r, "exportID")
	if err != nil {
		return nil, err
	}

	return h.deps.Exporter.Export(r.Context(), domain.ExportID(id)) //nolint: wrapcheck
}

func (h *Handler) GetExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.export(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeExport(e, *export) })
}

// DownloadExport returns the rendered CSV of a completed export.
func (h *Handler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.export(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if export.Status != domain.ExportStatusCompleted {
		h.writeError(w, r, serrors.With(serrors.ErrConflict, "export is %s", export.Status))

		return
	}

	writeCSVResponse(w, string(export.Kind)+"-results-"+export.ID.String()+".csv", export.Content)
}
