package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/synergysphere/backend/api/transport"
	"github.com/synergysphere/backend/pkg/httpcontext"
	workspaceUC "github.com/synergysphere/backend/usecase/workspace"
)

type ProjectHandler struct {
	baseHandler
	uc *workspaceUC.UseCase
}

func NewProjectHandler(uc *workspaceUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List projects
// @Tags projects
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	projects, err := h.uc.Projects(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, projects)
}

// @Summary Create project
// @Tags projects
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.CreateProjectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	owner, err := h.uc.Identity(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	members, err := h.uc.Identities(stdCtx, req.MemberIDs)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	project, err := h.uc.CreateProject(stdCtx, workspaceUC.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     members,
		Owner:       *owner,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, project)
}

// @Summary Get project
// @Tags projects
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.Project(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, project)
}

// @Summary Select the currently viewed project
// @Tags projects
// @Router /api/v1/projects/{id}/select [post]
func (h *ProjectHandler) Select(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.SelectProject(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, project)
}

// @Summary Add a member to the project
// @Tags projects
// @Router /api/v1/projects/{id}/members [post]
func (h *ProjectHandler) AddMember(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	var req transport.AddMemberRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.UserID == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	member, err := h.uc.Identity(stdCtx, req.UserID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	project, err := h.uc.AddProjectMember(stdCtx, id, *member)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, project)
}

// @Summary List the project's tasks in creation order
// @Tags projects
// @Router /api/v1/projects/{id}/tasks [get]
func (h *ProjectHandler) Tasks(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ProjectTasks(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}
