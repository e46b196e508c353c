package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/sharepath/internal/draft"
)

// CreateDraft handles POST /api/v1/drafts.
func (h *Handlers) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	if !validData(req.Data) {
		writeError(w, http.StatusBadRequest, "data must be a JSON object")
		return
	}

	saved, err := h.drafts.UpsertDraft(r.Context(), draft.New(req.Title, req.Data))
	if err != nil {
		h.log.Error("draft create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to store draft")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// GetDraft handles GET /api/v1/drafts/{id}.
func (h *Handlers) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draft.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.drafts.GetDraft(r.Context(), id)
	if err != nil {
		h.log.Error("draft get failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if d == nil {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// PutDraft handles PUT /api/v1/drafts/{id}. The draft is created when it
// does not exist yet.
func (h *Handlers) PutDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draft.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req draftRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	if !validData(req.Data) {
		writeError(w, http.StatusBadRequest, "data must be a JSON object")
		return
	}

	d := draft.New(req.Title, req.Data)
	d.ID = id

	saved, err := h.drafts.UpsertDraft(r.Context(), d)
	if err != nil {
		h.log.Error("draft upsert failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to store draft")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// validData accepts an absent payload or a JSON object.
func validData(data json.RawMessage) bool {
	if len(data) == 0 {
		return true
	}
	var obj map[string]json.RawMessage
	return json.Unmarshal(data, &obj) == nil && obj != nil
}
