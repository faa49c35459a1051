package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gads-manager/internal/core/domain"
)

type templateListResponse struct {
	Success        bool              `json:"success"`
	Templates      []domain.Template `json:"templates"`
	TotalTemplates int               `json:"totalTemplates"`
	Categories     []string          `json:"categories"`
}

type templateResponse struct {
	Success  bool             `json:"success"`
	Template *domain.Template `json:"template"`
}

type saveTemplateResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TemplateID string `json:"templateId"`
	Category   string `json:"category"`
}

// handleListTemplates accepts an optional category query parameter.
func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.ListTemplates(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeUseCaseError(w, "list templates", err)
		return
	}
	if templates == nil {
		templates = []domain.Template{}
	}
	writeJSON(w, http.StatusOK, templateListResponse{
		Success:        true,
		Templates:      templates,
		TotalTemplates: len(templates),
		Categories:     []string{domain.CategoryNL, domain.CategoryUS},
	}, h.logger)
}

func (h *Handler) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.templates.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUseCaseError(w, "get template", err)
		return
	}
	writeJSON(w, http.StatusOK, templateResponse{Success: true, Template: tpl}, h.logger)
}

// handleSaveTemplate creates a template, or replaces it when the body
// carries an _id.
func (h *Handler) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	var tpl domain.Template
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	update := tpl.ID != ""
	if err := h.templates.SaveTemplate(r.Context(), &tpl); err != nil {
		h.writeUseCaseError(w, "save template", err)
		return
	}

	msg := "Template created successfully"
	if update {
		msg = "Template updated successfully"
	}
	writeJSON(w, http.StatusOK, saveTemplateResponse{
		Success:    true,
		Message:    msg,
		TemplateID: tpl.ID,
		Category:   tpl.Category,
	}, h.logger)
}

func (h *Handler) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeUseCaseError(w, "delete template", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true}, h.logger)
}
