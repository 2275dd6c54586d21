package handlers

import (
	"context"
	"errors"

	"github.com/fasthttp/router"
	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/services"
	xhttp "github.com/rashedq/repair-ops/pkg/http"
)

type MessageService interface {
	Compose(ctx context.Context, actor model.Actor, req model.ComposeRequest) (*model.ComposeResult, error)
	History(ctx context.Context, invoiceID string) ([]*model.MessageLog, error)
}

type MessageHandler struct {
	svc MessageService
}

func RegisterMessageRoutes(e *router.Group, h *MessageHandler) {
	e.POST("/messages/send", h.SendMessage)
	e.GET("/invoices/{id}/messages", h.ListInvoiceMessages)
}

func NewMessageHandler(svc MessageService) *MessageHandler {
	return &MessageHandler{
		svc: svc,
	}
}

type sendMessageRequest struct {
	InvoiceID  string `json:"invoice_id"`
	Channel    string `json:"channel"`
	TemplateID *int64 `json:"template_id"`
	CustomBody string `json:"custom_body"`
}

type messageListResponse struct {
	Items []*model.MessageLog `json:"items"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *MessageHandler) SendMessage(ctx *xhttp.RequestCtx) {
	var req sendMessageRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	channel := model.Channel(req.Channel)
	if channel != model.ChannelWhatsApp && channel != model.ChannelSMS {
		writeError(ctx, xhttp.StatusBadRequest, "unknown channel: "+req.Channel)
		return
	}

	result, err := h.svc.Compose(ctx, actorFrom(ctx), model.ComposeRequest{
		InvoiceID:  req.InvoiceID,
		Channel:    channel,
		TemplateID: req.TemplateID,
		CustomBody: req.CustomBody,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrTemplateNotFound):
			writeError(ctx, xhttp.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrSettingsMissing),
			errors.Is(err, services.ErrNoMobile),
			errors.Is(err, services.ErrStatusInternalOnly):
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
		default:
			writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(ctx, xhttp.StatusOK, result)
}

func (h *MessageHandler) ListInvoiceMessages(ctx *xhttp.RequestCtx) {
	id := pathParam(ctx, "id")
	items, err := h.svc.History(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(ctx, xhttp.StatusNotFound, err.Error())
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageListResponse{Items: items})
}
