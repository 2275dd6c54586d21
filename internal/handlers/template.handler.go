package handlers

import (
	"context"
	"errors"

	"github.com/fasthttp/router"
	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/services"
	xhttp "github.com/rashedq/repair-ops/pkg/http"
)

type TemplateService interface {
	List(ctx context.Context) ([]*model.MessageTemplate, error)
	Upsert(ctx context.Context, req model.TemplateUpsertRequest) (*model.MessageTemplate, error)
}

type TemplateHandler struct {
	svc TemplateService
}

func RegisterTemplateRoutes(e *router.Group, h *TemplateHandler) {
	e.GET("/templates", h.ListTemplates)
	e.PUT("/templates", h.UpsertTemplate)
}

func NewTemplateHandler(svc TemplateService) *TemplateHandler {
	return &TemplateHandler{
		svc: svc,
	}
}

type templateListResponse struct {
	Items []*model.MessageTemplate `json:"items"`
}

func (h *TemplateHandler) ListTemplates(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, templateListResponse{Items: items})
}

func (h *TemplateHandler) UpsertTemplate(ctx *xhttp.RequestCtx) {
	// template changes are admin-only, same as settings
	if actorFrom(ctx).Role != model.RoleAdmin {
		writeError(ctx, xhttp.StatusForbidden, "admin role required")
		return
	}

	var req model.TemplateUpsertRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	tpl, err := h.svc.Upsert(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrTemplateInvalid) {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, tpl)
}
