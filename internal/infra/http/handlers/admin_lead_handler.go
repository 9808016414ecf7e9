package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/admitly/lead-capture-api/internal/entity"
	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
	"github.com/admitly/lead-capture-api/internal/usecase"
)

// AdminLeadHandler serves the authenticated lead management surface:
// listing, lookup, status updates, deletion and the reconcile trigger.
type AdminLeadHandler struct {
	Manage   *usecase.ManageLeadsUseCase
	Sync     *usecase.SyncLeadsUseCase
	Notifier usecase.ReconcileNotifier
}

func NewAdminLeadHandler(manage *usecase.ManageLeadsUseCase, sync *usecase.SyncLeadsUseCase, notifier usecase.ReconcileNotifier) *AdminLeadHandler {
	return &AdminLeadHandler{
		Manage:   manage,
		Sync:     sync,
		Notifier: notifier,
	}
}

func (h *AdminLeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	output, err := h.Manage.List(r.Context(), usecase.ListLeadsInput{
		Page:   page,
		Limit:  limit,
		Status: q.Get("status"),
		Course: q.Get("course"),
		Search: q.Get("search"),
	})
	if err != nil {
		log.Printf("[LEADS] list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *AdminLeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	lead, err := h.Manage.Get(r.Context(), id)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminLeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.Manage.UpdateStatus(r.Context(), id, entity.LeadStatus(req.Status))
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Lead status updated",
		"lead":    lead,
	})
}

func (h *AdminLeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	if err := h.Manage.Delete(r.Context(), id); err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}

// HandleReconcile runs the sweep synchronously and returns its summary
// verbatim; this is the only sync entry point that blocks the caller.
func (h *AdminLeadHandler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	batchSize, _ := strconv.Atoi(r.URL.Query().Get("batch_size"))

	summary, err := h.Sync.Reconcile(r.Context(), batchSize)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	middleware.RecordReconcileRun()

	if h.Notifier != nil && summary.Failed > 0 {
		if err := h.Notifier.NotifyReconcileReport(summary); err != nil {
			log.Printf("[LEADS] reconcile report mail failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, summary)
}

func leadID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
