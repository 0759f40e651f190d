package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/synergysphere/backend/domain"
	"github.com/synergysphere/backend/internal/journal"
	"github.com/synergysphere/backend/pkg/httpcontext"
	"github.com/synergysphere/backend/usecase"
)

// ActivityLog bridges the use-case recorder port to the BoltDB journal.
type ActivityLog struct {
	journal *journal.Journal
	logger  *zap.Logger
}

func NewActivityLog(j *journal.Journal, logger *zap.Logger) *ActivityLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityLog{journal: j, logger: logger}
}

func (a *ActivityLog) RecordSession(ctx context.Context, action string, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}
	// Session snapshots carry only the identity basics, never the hash.
	return a.append(ctx, journal.EntitySession, action, struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}{ID: user.ID, Email: user.Email})
}

func (a *ActivityLog) RecordProject(ctx context.Context, action string, project *domain.Project) error {
	if project == nil {
		return domain.ErrInvalidPayload
	}
	return a.append(ctx, journal.EntityProject, action, project)
}

func (a *ActivityLog) RecordTask(ctx context.Context, action string, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	return a.append(ctx, journal.EntityTask, action, task)
}

func (a *ActivityLog) RecordNotification(ctx context.Context, action string, notification *domain.Notification) error {
	if notification == nil {
		return domain.ErrInvalidPayload
	}
	return a.append(ctx, journal.EntityNotification, action, notification)
}

func (a *ActivityLog) append(ctx context.Context, entity, action string, snapshot interface{}) error {
	if a == nil || a.journal == nil {
		return nil
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return a.journal.Append(journal.Entry{
		ActorID:  httpcontext.UserID(ctx),
		Entity:   entity,
		Action:   action,
		Snapshot: payload,
	})
}

var _ usecase.ActivityRecorder = (*ActivityLog)(nil)
