package usecase

import (
	"context"

	"github.com/synergysphere/backend/domain"
)

// Mutation actions recorded to the activity journal.
const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionSelect    = "select"
	ActionMemberAdd = "member_add"
	ActionMarkRead  = "mark_read"
	ActionLogin     = "login"
	ActionRegister  = "register"
	ActionLogout    = "logout"
)

// ActivityRecorder abstracts the activity journal so use cases stay
// storage-agnostic. Implementations must tolerate being nil-checked by
// callers; recording failures never fail the underlying operation.
type ActivityRecorder interface {
	RecordSession(ctx context.Context, action string, user *domain.User) error
	RecordProject(ctx context.Context, action string, project *domain.Project) error
	RecordTask(ctx context.Context, action string, task *domain.Task) error
	RecordNotification(ctx context.Context, action string, notification *domain.Notification) error
}
