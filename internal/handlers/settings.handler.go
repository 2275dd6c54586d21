package handlers

import (
	"context"
	"errors"

	"github.com/fasthttp/router"
	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/repository"
	xhttp "github.com/rashedq/repair-ops/pkg/http"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, req model.SettingsUpdateRequest) (*model.Settings, error)
}

type SettingsHandler struct {
	svc SettingsService
}

func RegisterSettingsRoutes(e *router.Group, h *SettingsHandler) {
	e.GET("/settings", h.GetSettings)
	e.PUT("/settings", h.UpdateSettings)
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

func (h *SettingsHandler) GetSettings(ctx *xhttp.RequestCtx) {
	settings, err := h.svc.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			writeError(ctx, xhttp.StatusNotFound, err.Error())
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(ctx *xhttp.RequestCtx) {
	// settings changes are admin-only; the upstream session layer vouches for
	// the role it forwards
	if actorFrom(ctx).Role != model.RoleAdmin {
		writeError(ctx, xhttp.StatusForbidden, "admin role required")
		return
	}

	var req model.SettingsUpdateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	settings, err := h.svc.Update(ctx, req)
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, settings)
}
