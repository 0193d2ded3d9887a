// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/pramou/campaign-backend/internal/errors"
	"github.com/pramou/campaign-backend/internal/model"
	"github.com/pramou/campaign-backend/internal/schedule"
	"github.com/pramou/campaign-backend/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service *service.CampaignService
	Logger  *zap.Logger
}

// Routes mounts the campaign endpoints the dashboard calls.
func (h *CampaignHandler) Routes(r chi.Router) {
	r.Get("/campaigns", h.ListCampaigns)
	r.Post("/campaigns", h.CreateCampaign)
	r.Get("/campaigns/{id}", h.GetCampaign)
	r.Put("/campaigns/{id}", h.UpdateCampaign)
	r.Delete("/campaigns/{id}", h.DeleteCampaign)
}

func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filter := model.Filter{
		Title:  r.URL.Query().Get("title"),
		Type:   model.CampaignType(r.URL.Query().Get("type")),
		Status: schedule.Status(r.URL.Query().Get("status")),
	}

	campaigns, meta, err := h.Service.ListCampaigns(r.Context(), page, limit, filter)
	if err != nil {
		h.serveError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": campaigns,
		"meta": meta,
	})
}

func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in model.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.CreateCampaign(r.Context(), in)
	if err != nil {
		h.serveError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": campaign})
}

func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	campaign, err := h.Service.GetCampaign(r.Context(), id)
	if err != nil {
		h.serveError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": campaign})
}

func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in model.UpdateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.UpdateCampaign(r.Context(), id, in)
	if err != nil {
		h.serveError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": campaign})
}

func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteCampaign(r.Context(), id); err != nil {
		h.serveError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CampaignHandler) serveError(w http.ResponseWriter, err error) {
	if ve, ok := appErrors.IsValidation(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  ve.Error(),
			"fields": ve.Fields,
		})
		return
	}
	if appErrors.IsNotFound(err) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": err.Error()})
		return
	}

	if h.Logger != nil {
		h.Logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
