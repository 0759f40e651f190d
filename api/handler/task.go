package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/synergysphere/backend/api/transport"
	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/pkg/httpcontext"
	"github.com/synergysphere/backend/repository"
	workspaceUC "github.com/synergysphere/backend/usecase/workspace"
)

type TaskHandler struct {
	baseHandler
	uc *workspaceUC.UseCase
}

func NewTaskHandler(uc *workspaceUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.TaskFilter{
		ProjectID:  string(ctx.QueryArgs().Peek("project_id")),
		AssigneeID: string(ctx.QueryArgs().Peek("assignee_id")),
		Status:     domain.TaskStatus(ctx.QueryArgs().Peek("status")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Task(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.CreateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	creator, err := h.uc.Identity(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	assignee := *creator
	if req.AssigneeID != "" && req.AssigneeID != userID {
		resolved, err := h.uc.Identity(stdCtx, req.AssigneeID)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		assignee = *resolved
	}

	var due time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			h.respondInvalid(ctx, "invalid due date")
			return
		}
		due = parsed
	}

	task, err := h.uc.CreateTask(stdCtx, workspaceUC.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Assignee:    assignee,
		Creator:     *creator,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     due,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, task)
}

// @Summary Partially update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [patch]
func (h *TaskHandler) Update(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	var req transport.UpdateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patch, ok := h.buildPatch(ctx, stdCtx, req)
	if !ok {
		return
	}

	task, err := h.uc.UpdateTask(stdCtx, id, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

func (h *TaskHandler) buildPatch(ctx *fasthttp.RequestCtx, stdCtx context.Context, req transport.UpdateTaskRequest) (repository.TaskPatch, bool) {
	var patch repository.TaskPatch

	patch.Title = req.Title
	patch.Description = req.Description

	if req.AssigneeID != nil {
		assignee, err := h.uc.Identity(stdCtx, *req.AssigneeID)
		if err != nil {
			h.respondError(ctx, err)
			return patch, false
		}
		patch.Assignee = assignee
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.DueDate != nil {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			h.respondInvalid(ctx, "invalid due date")
			return patch, false
		}
		patch.DueDate = &due
	}
	return patch, true
}
