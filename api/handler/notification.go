package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/synergysphere/backend/pkg/httpcontext"
	"github.com/synergysphere/backend/repository"
	workspaceUC "github.com/synergysphere/backend/usecase/workspace"
)

type NotificationHandler struct {
	baseHandler
	uc *workspaceUC.UseCase
}

func NewNotificationHandler(uc *workspaceUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List notifications
// @Tags notifications
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.NotificationFilter{
		UnreadOnly: ctx.QueryArgs().GetBool("unread"),
		ProjectID:  string(ctx.QueryArgs().Peek("project_id")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	notifications, err := h.uc.Notifications(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, notifications)
}

// @Summary Mark a notification as read
// @Tags notifications
// @Router /api/v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing notification id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	notification, err := h.uc.MarkNotificationRead(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, notification)
}
