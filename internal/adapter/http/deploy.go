package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
)

type deployResponse struct {
	Success bool                  `json:"success"`
	Results []domain.DeployResult `json:"results"`
}

// handleBulkDeploy creates one campaign per item from a stored template.
// Precondition failures and bad JSON produce 400, an unknown template 404.
// Once the batch is accepted the response is always 200 with a result per
// processed item, failed items included. The batch is not cancelled when the
// client goes away.
func (h *Handler) handleBulkDeploy(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshTokenFrom(r.Context())
	if !ok {
		h.writeUseCaseError(w, "bulk deploy", port.ErrUnauthenticated)
		return
	}

	var req domain.DeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// A dropped connection must not abandon campaigns halfway through their
	// dependent mutates, so the batch runs to completion regardless.
	results, err := h.deploy.Deploy(context.WithoutCancel(r.Context()), refreshToken, req)
	if err != nil {
		h.writeUseCaseError(w, "bulk deploy", err)
		return
	}

	writeJSON(w, http.StatusOK, deployResponse{Success: true, Results: results}, h.logger)
}
