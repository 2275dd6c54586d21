package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/fasthttp/router"
	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/services"
	xhttp "github.com/rashedq/repair-ops/pkg/http"
)

type InvoiceService interface {
	Create(ctx context.Context, actor model.Actor, p model.InvoiceCreateRequest) (*model.Invoice, error)
	Update(ctx context.Context, id string, p model.InvoicePatch) (*model.Invoice, error)
	Get(ctx context.Context, id string) (*model.Invoice, error)
	List(ctx context.Context, f model.InvoiceFilter) ([]*model.Invoice, int64, error)
}

type InvoiceHandler struct {
	svc InvoiceService
}

func RegisterInvoiceRoutes(e *router.Group, h *InvoiceHandler) {
	e.POST("/invoices", h.CreateInvoice)
	e.GET("/invoices", h.ListInvoices)
	e.GET("/invoices/{id}", h.GetInvoice)
	e.PATCH("/invoices/{id}", h.UpdateInvoice)
}

func NewInvoiceHandler(svc InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		svc: svc,
	}
}

type createInvoiceRequest struct {
	CustomerName  string         `json:"customer_name"`
	Mobile        string         `json:"mobile"`
	DeviceType    string         `json:"device_type"`
	Problem       string         `json:"problem"`
	StaffReceiver string         `json:"staff_receiver"`
	Notes         string         `json:"notes"`
	AgreedPrice   model.OptFloat `json:"agreed_price"`
}

type invoiceListResponse struct {
	Items []*model.Invoice `json:"items"`
	Total int64            `json:"total"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *InvoiceHandler) CreateInvoice(ctx *xhttp.RequestCtx) {
	var req createInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	p := model.InvoiceCreateRequest{
		CustomerName:  req.CustomerName,
		Mobile:        req.Mobile,
		DeviceType:    req.DeviceType,
		Problem:       req.Problem,
		StaffReceiver: req.StaffReceiver,
		Notes:         req.Notes,
		AgreedPrice:   req.AgreedPrice.Ptr(),
	}

	inv, err := h.svc.Create(ctx, actorFrom(ctx), p)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMinimalInfo):
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrAllocationExhausted):
			writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		default:
			writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, inv)
}

func (h *InvoiceHandler) GetInvoice(ctx *xhttp.RequestCtx) {
	id := pathParam(ctx, "id")
	inv, err := h.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(ctx, xhttp.StatusNotFound, err.Error())
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, inv)
}

func (h *InvoiceHandler) UpdateInvoice(ctx *xhttp.RequestCtx) {
	id := pathParam(ctx, "id")

	var patch model.InvoicePatch
	if err := readJSON(ctx, &patch); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if patch.DeviceStatus != nil && !patch.DeviceStatus.Known() {
		writeError(ctx, xhttp.StatusBadRequest, "unknown device status: "+string(*patch.DeviceStatus))
		return
	}

	inv, err := h.svc.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(ctx, xhttp.StatusNotFound, err.Error())
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, inv)
}

func (h *InvoiceHandler) ListInvoices(ctx *xhttp.RequestCtx) {
	var f model.InvoiceFilter

	if v := query(ctx, "status"); v != "" {
		st := model.DeviceStatus(strings.TrimSpace(v))
		if !st.Known() {
			writeError(ctx, xhttp.StatusBadRequest, "unknown device status: "+string(st))
			return
		}
		f.Status = &st
	}
	if v := query(ctx, "delivered"); v != "" {
		if b, e := strconv.ParseBool(v); e == nil {
			f.IsDelivered = &b
		}
	}
	if v := query(ctx, "search"); v != "" {
		f.Search = &v
	}
	if v := query(ctx, "limit"); v != "" {
		if n, e := strconv.Atoi(v); e == nil {
			f.Limit = n
		}
	}
	if v := query(ctx, "offset"); v != "" {
		if n, e := strconv.Atoi(v); e == nil {
			f.Offset = n
		}
	}
	if strings.EqualFold(query(ctx, "order"), "desc") {
		f.Desc = true
	}

	items, total, err := h.svc.List(ctx, f)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, xhttp.StatusOK, invoiceListResponse{Items: items, Total: total})
}
